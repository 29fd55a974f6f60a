package walk

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"reshelf/internal/logging"
	"reshelf/internal/services"
)

// Options controls a single traversal.
type Options struct {
	// SkipDotFiles drops entries whose basename begins with a dot.
	SkipDotFiles bool
	// Recurse descends into subdirectories and merges their results.
	Recurse bool
	// OnError decides whether a per-entry classification failure skips the
	// entry or unwinds the walk.
	OnError services.ErrorPolicy
	Logger  *slog.Logger
}

// Result holds the ordered paths discovered under a root. When recursion is
// enabled, a parent's lists include its descendants': the parent's own
// entries first, then each child subtree in the order the children were
// visited. The underlying listing order is platform-defined; callers that
// need a specific sequence must sort.
type Result struct {
	Files []string
	Dirs  []string
}

// Walk lists root according to opts. A root that cannot be listed is a fatal
// traversal error regardless of policy.
func Walk(root string, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	var result Result
	entries, err := os.ReadDir(root)
	if err != nil {
		return result, services.Wrap(services.ErrTraversal, "", "list directory", root, err)
	}

	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		if opts.SkipDotFiles && strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(root, name)

		info, err := entry.Info()
		if err != nil {
			wrapped := services.Wrap(services.ErrTraversal, "", "classify entry", path, err)
			logger.Warn("skipping unclassifiable entry", logging.String("path", path), logging.Error(err))
			if !opts.OnError.Continues() {
				return result, wrapped
			}
			continue
		}

		if info.IsDir() {
			result.Dirs = append(result.Dirs, path)
			subdirs = append(subdirs, path)
			continue
		}
		result.Files = append(result.Files, path)
	}

	if opts.Recurse {
		for _, dir := range subdirs {
			child, err := Walk(dir, opts)
			if err != nil {
				logger.Warn("descending failed", logging.String("path", dir), logging.Error(err))
				if !opts.OnError.Continues() {
					return result, err
				}
				continue
			}
			result.Files = append(result.Files, child.Files...)
			result.Dirs = append(result.Dirs, child.Dirs...)
		}
	}

	return result, nil
}

// CountFiles returns the number of plain files beneath root, descendants
// included. Reconciliation uses this for both sides of the comparison.
func CountFiles(root string, opts Options) (int, error) {
	recursive := opts
	recursive.Recurse = true
	result, err := Walk(root, recursive)
	if err != nil {
		return 0, err
	}
	return len(result.Files), nil
}
