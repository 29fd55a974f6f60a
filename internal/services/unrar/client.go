package unrar

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"reshelf/internal/logging"
	"reshelf/internal/services"
)

// Extractor defines the behaviour required by the extract workflow.
type Extractor interface {
	Extract(ctx context.Context, archive, destDir string) error
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

// WithLogger routes invocation logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logging.NewComponentLogger(logger, "unrar")
		}
	}
}

// Client wraps unrar CLI interactions.
type Client struct {
	binary string
	exec   services.Executor
	logger *slog.Logger
}

// New constructs an unrar client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("unrar binary required")
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

// Extract unpacks archive into destDir, overwriting without prompting and
// suppressing percentage spam.
func (c *Client) Extract(ctx context.Context, archive, destDir string) error {
	args := []string{"x", "-y", "-idp", archive, destDir}
	c.logger.Info("invoking " + c.binary + " " + strings.Join(args, " "))
	if err := c.exec.Run(ctx, c.binary, args, func(line string) {
		c.logger.Debug(line)
	}); err != nil {
		if errors.Is(err, services.ErrProcess) {
			return err
		}
		return services.Wrap(services.ErrProcess, "", "extract", archive, err)
	}
	return nil
}
