package chdman

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"reshelf/internal/logging"
	"reshelf/internal/services"
)

// Converter defines the behaviour required by the conversion workflow.
type Converter interface {
	CreateDVD(ctx context.Context, input, output string) error
	CreateCD(ctx context.Context, input, output string) error
	Verify(ctx context.Context, path string) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec services.Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithDryRun makes every call log its invocation line and return without
// spawning anything.
func WithDryRun(dryRun bool) Option {
	return func(c *Client) {
		c.dryRun = dryRun
	}
}

// WithLogger routes invocation logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logging.NewComponentLogger(logger, "chdman")
		}
	}
}

// Client wraps chdman CLI interactions.
type Client struct {
	binary string
	dryRun bool
	exec   services.Executor
	logger *slog.Logger
}

// New constructs a chdman client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("chdman binary required")
	}
	client := &Client{
		binary: binary,
		exec:   services.CommandExecutor{},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// CreateDVD compresses a DVD image into a CHD.
func (c *Client) CreateDVD(ctx context.Context, input, output string) error {
	return c.run(ctx, "createdvd", "-i", input, "-o", output)
}

// CreateCD compresses a CD image (cue or gdi) into a CHD.
func (c *Client) CreateCD(ctx context.Context, input, output string) error {
	return c.run(ctx, "createcd", "-i", input, "-o", output)
}

// Verify checks the integrity of a produced CHD.
func (c *Client) Verify(ctx context.Context, path string) error {
	return c.run(ctx, "verify", "-i", path)
}

func (c *Client) run(ctx context.Context, verb string, args ...string) error {
	full := append([]string{verb}, args...)
	c.logger.Info("invoking "+c.binary+" "+strings.Join(full, " "), logging.Bool("dry_run", c.dryRun))
	if c.dryRun {
		return nil
	}
	if err := c.exec.Run(ctx, c.binary, full, func(line string) {
		c.logger.Debug(line)
	}); err != nil {
		if errors.Is(err, services.ErrProcess) {
			return err
		}
		return services.Wrap(services.ErrProcess, "", verb, c.binary, err)
	}
	return nil
}
