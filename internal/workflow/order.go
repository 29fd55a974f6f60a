package workflow

import (
	"context"
	"log/slog"
	"path/filepath"

	"reshelf/internal/fileops"
	"reshelf/internal/logging"
	"reshelf/internal/naming"
	"reshelf/internal/walk"
)

// Order renames every file under the source root to a positional name. In
// TV mode (Season > 0) names follow S{season}E{index}; otherwise
// {prefix}{index}. Indices start at Offset and advance by one per file in
// natural basename order, so "ep2" is numbered before "ep10" regardless of
// how the platform listed the directory.
func Order(ctx context.Context, opts Options, logger *slog.Logger) error {
	logger = logging.NewComponentLogger(logger, "order")
	result, err := walk.Walk(opts.Source, opts.walkOptions(logger))
	if err != nil {
		return err
	}
	naming.SortNatural(result.Files)

	tv := opts.Season > 0
	logger.Info("enumerated files",
		logging.Int("count", len(result.Files)),
		logging.Bool("tv_mode", tv),
		logging.Int("offset", opts.Offset),
	)

	if !opts.DryRun {
		if err := fileops.EnsureDir(opts.DestDir()); err != nil {
			return err
		}
	}

	index := opts.Offset
	for _, src := range result.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		ext := filepath.Ext(src)
		dst := filepath.Join(opts.DestDir(), naming.OrderedName(index, opts.Season, opts.Prefix, tv, ext))
		if err := fileops.MoveOrCopy(src, dst, opts.Copy, opts.DryRun, logger); err != nil {
			if err := handleItemFailure(opts.OnError, logger, src, err); err != nil {
				return err
			}
			// The index is consumed either way so reruns after a partial
			// failure stay aligned.
		}
		index++
	}

	logger.Info("order run finished", logging.Int("files", len(result.Files)))
	return nil
}
