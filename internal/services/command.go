package services

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"context"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onOutput func(string)) error
}

// CommandExecutor runs the binary synchronously, forwarding every output
// line. It is the production Executor behind the tool clients.
type CommandExecutor struct{}

// Run starts the binary and blocks until it exits. A spawn-level failure and
// a nonzero exit both come back as errors tagged with ErrProcess; callers
// treat them identically.
func (CommandExecutor) Run(ctx context.Context, binary string, args []string, onOutput func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return Wrap(ErrProcess, "", "spawn", binary, err)
	}

	var wg sync.WaitGroup
	forward := func(line string) {
		if onOutput != nil {
			onOutput(line)
			return
		}
		fmt.Fprintln(os.Stderr, line)
	}
	scan := func(r io.Reader) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			forward(scanner.Text())
		}
	}

	wg.Add(2)
	go scan(stdout)
	go scan(stderr)
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Wrap(ErrProcess, "", "exit", fmt.Sprintf("%s exited with code %d", binary, exitErr.ExitCode()), err)
		}
		return Wrap(ErrProcess, "", "wait", binary, err)
	}
	return nil
}
