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

// Rename applies the prefix/suffix substitution policy to every file under
// the source root. Files whose computed name equals the current name are
// left alone; running the workflow twice performs zero renames the second
// time.
func Rename(ctx context.Context, opts Options, logger *slog.Logger) error {
	logger = logging.NewComponentLogger(logger, "rename")
	result, err := walk.Walk(opts.Source, opts.walkOptions(logger))
	if err != nil {
		return err
	}
	logger.Info("enumerated files", logging.Int("count", len(result.Files)))

	renamed := 0
	for _, src := range result.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		base := filepath.Base(src)
		name := naming.SubstitutedName(base, opts.Prefix, opts.Replacement, opts.Suffix)
		if name == base {
			continue
		}
		dstDir := opts.Dest
		if dstDir == "" {
			dstDir = filepath.Dir(src)
		}
		dst := filepath.Join(dstDir, name)
		if err := fileops.MoveOrCopy(src, dst, opts.Copy, opts.DryRun, logger); err != nil {
			if err := handleItemFailure(opts.OnError, logger, src, err); err != nil {
				return err
			}
			continue
		}
		renamed++
	}

	logger.Info("rename run finished", logging.Int("renamed", renamed))
	return nil
}
