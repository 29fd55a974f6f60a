package testsupport

import (
	"path/filepath"
	"testing"

	"reshelf/internal/config"
)

// NewConfig produces a config seeded with a unique temp log directory per
// test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}
