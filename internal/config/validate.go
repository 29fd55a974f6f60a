package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateExtract(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTools() error {
	if strings.TrimSpace(c.Tools.Chdman) == "" {
		return fmt.Errorf("tools.chdman must not be empty")
	}
	if strings.TrimSpace(c.Tools.Unrar) == "" {
		return fmt.Errorf("tools.unrar must not be empty")
	}
	return nil
}

func (c *Config) validateExtract() error {
	for _, ext := range c.Extract.CopyExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extract.copy_extensions: %q must begin with a dot", ext)
		}
	}
	for _, ext := range c.Extract.ArchiveExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extract.archive_extensions: %q must begin with a dot", ext)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
