package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTools()
	c.normalizeExtract()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTools() {
	c.Tools.Chdman = strings.TrimSpace(c.Tools.Chdman)
	c.Tools.Unrar = strings.TrimSpace(c.Tools.Unrar)
	if c.Tools.Chdman == "" {
		c.Tools.Chdman = defaultChdmanBinary
	}
	if c.Tools.Unrar == "" {
		c.Tools.Unrar = defaultUnrarBinary
	}
}

func (c *Config) normalizeExtract() {
	c.Extract.CopyExtensions = normalizeExtensions(c.Extract.CopyExtensions, defaultCopyExtensions())
	c.Extract.ArchiveExtensions = normalizeExtensions(c.Extract.ArchiveExtensions, defaultArchiveExtensions())
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func normalizeExtensions(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		ext := strings.ToLower(strings.TrimSpace(value))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
