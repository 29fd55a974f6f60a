package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"reshelf/internal/config"
	"reshelf/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	logFile *os.File
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// loggingOptions returns the console logging options derived from config,
// sans any per-run mirror.
func (c *commandContext) loggingOptions() (logging.Options, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return logging.Options{}, err
	}
	return logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: os.Stdout,
	}, nil
}

// buildLogger constructs the run logger, mirroring console output into the
// session log under the configured log directory.
func (c *commandContext) buildLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	opts, err := c.loggingOptions()
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Paths.LogDir) != "" && c.logFile == nil {
		path := filepath.Join(cfg.Paths.LogDir, "reshelf.log")
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open session log %s: %w", path, err)
		}
		c.logFile = file
	}
	if c.logFile != nil {
		opts.Mirror = io.Writer(c.logFile)
	}
	return logging.New(opts)
}

// close releases run-scoped resources; called from RunE defer paths.
func (c *commandContext) close() {
	if c.logFile != nil {
		_ = c.logFile.Close()
		c.logFile = nil
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
