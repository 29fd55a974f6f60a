package workflow

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"reshelf/internal/logging"
	"reshelf/internal/services"
	"reshelf/internal/walk"
)

// Options is the immutable snapshot of resolved flags for one run. It is
// created once at startup and read-only for the run's lifetime.
type Options struct {
	// Source is the root the run enumerates.
	Source string
	// Dest receives renamed or converted files; empty means Source.
	Dest string

	Prefix      string
	Replacement string
	Suffix      string

	// Season selects TV-style numbering for the ordered rename when > 0.
	Season int
	// Offset is the first index assigned by the ordered rename.
	Offset int

	Copy            bool
	DryRun          bool
	IncludeDotFiles bool
	Recurse         bool

	// OnError decides whether a per-item failure halts the run.
	OnError services.ErrorPolicy
}

// DestDir returns the effective destination directory.
func (o Options) DestDir() string {
	if o.Dest != "" {
		return o.Dest
	}
	return o.Source
}

func (o Options) walkOptions(logger *slog.Logger) walk.Options {
	return walk.Options{
		SkipDotFiles: !o.IncludeDotFiles,
		Recurse:      o.Recurse,
		OnError:      o.OnError,
		Logger:       logger,
	}
}

// RunLogger scopes the base logger to one workflow run with a unique run ID.
func RunLogger(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		logger = logging.NewNop()
	}
	return logger.With(
		logging.String(logging.FieldWorkflow, name),
		logging.String(logging.FieldRunID, uuid.NewString()),
	)
}

// handleItemFailure logs a per-item failure and applies the error policy:
// nil means the run continues with the next item. Failures that are not
// per-item (bad configuration) always propagate.
func handleItemFailure(policy services.ErrorPolicy, logger *slog.Logger, path string, err error) error {
	logger.Error("item failed", logging.String("path", path), logging.Error(err))
	if policy.Continues() && services.IsPerItem(err) {
		return nil
	}
	return err
}

func lowerExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
