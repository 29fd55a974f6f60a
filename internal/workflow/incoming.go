package workflow

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"reshelf/internal/config"
	"reshelf/internal/logging"
	"reshelf/internal/services"
	"reshelf/internal/walk"
)

// CountMismatch records an incoming entry whose extract-area file count does
// not line up with its source count.
type CountMismatch struct {
	Name         string
	SourceCount  int
	ExtractCount int
}

// Report is the outcome of one reconciliation run: incoming entries with no
// extract-area counterpart, and entries whose counterparts hold the wrong
// number of files.
type Report struct {
	Missing    []string
	Mismatched []CountMismatch
}

// Empty reports whether the incoming area fully reconciles.
func (r Report) Empty() bool {
	return len(r.Missing) == 0 && len(r.Mismatched) == 0
}

// ReconcileIncoming checks every entry of the incoming root against the
// sibling extract area. A directory entry's source count is the number of
// files beneath it; a plain file counts as one. The extract side is expected
// to hold source count plus one, the extra slot being the marker log written
// by extraction.
func ReconcileIncoming(ctx context.Context, opts Options, logger *slog.Logger) (Report, error) {
	logger = logging.NewComponentLogger(logger, "incoming")

	result, err := walk.Walk(opts.Source, opts.walkOptions(logger))
	if err != nil {
		return Report{}, err
	}
	extractRoot := filepath.Join(opts.DestDir(), config.ExtractDirName)
	logger.Info("reconciling incoming area",
		logging.Int("files", len(result.Files)),
		logging.Int("dirs", len(result.Dirs)),
		logging.String("extract_root", extractRoot),
	)

	var report Report
	countOpts := opts.walkOptions(logger)

	check := func(path string, sourceCount int) error {
		name := filepath.Base(path)
		target := filepath.Join(extractRoot, name)
		if _, err := os.Stat(target); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				report.Missing = append(report.Missing, name)
				return nil
			}
			return services.Wrap(services.ErrTraversal, "incoming", "stat extract entry", target, err)
		}
		extractCount, err := walk.CountFiles(target, countOpts)
		if err != nil {
			return err
		}
		// One extra file is always expected: the extract log marker.
		if extractCount != sourceCount+1 {
			report.Mismatched = append(report.Mismatched, CountMismatch{
				Name:         name,
				SourceCount:  sourceCount,
				ExtractCount: extractCount,
			})
		}
		return nil
	}

	for _, dir := range result.Dirs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if filepath.Base(dir) == config.ExtractDirName {
			// The archive area may live inside the incoming root; it is
			// never reconciled against itself.
			continue
		}
		sourceCount, err := walk.CountFiles(dir, countOpts)
		if err != nil {
			if err := handleItemFailure(opts.OnError, logger, dir, err); err != nil {
				return report, err
			}
			continue
		}
		if err := check(dir, sourceCount); err != nil {
			if err := handleItemFailure(opts.OnError, logger, dir, err); err != nil {
				return report, err
			}
		}
	}
	for _, file := range result.Files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := check(file, 1); err != nil {
			if err := handleItemFailure(opts.OnError, logger, file, err); err != nil {
				return report, err
			}
		}
	}

	logger.Info("reconciliation finished",
		logging.Int("missing", len(report.Missing)),
		logging.Int("mismatched", len(report.Mismatched)),
	)
	return report, nil
}
