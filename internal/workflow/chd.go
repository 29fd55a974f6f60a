package workflow

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"reshelf/internal/fileops"
	"reshelf/internal/logging"
	"reshelf/internal/preflight"
	"reshelf/internal/services"
	"reshelf/internal/services/chdman"
	"reshelf/internal/walk"
)

// ConvertCHD turns every disc image under the source root into a CHD in the
// destination directory, then verifies each produced file. Enumeration is
// always recursive. Files with extensions outside the verb mapping are
// silently skipped.
func ConvertCHD(ctx context.Context, opts Options, converter chdman.Converter, logger *slog.Logger) error {
	logger = logging.NewComponentLogger(logger, "chd")
	if converter == nil {
		return services.Wrap(services.ErrConfiguration, "chd", "resolve converter", "no chdman client", nil)
	}

	walkOpts := opts.walkOptions(logger)
	walkOpts.Recurse = true
	result, err := walk.Walk(opts.Source, walkOpts)
	if err != nil {
		return err
	}

	if !opts.DryRun {
		checks := []preflight.Result{
			preflight.CheckDirectoryAccess("source", opts.Source),
		}
		if opts.Dest != "" {
			checks = append(checks, preflight.CheckDirectoryAccess("destination parent", filepath.Dir(opts.DestDir())))
		}
		if failed, ok := preflight.FirstFailure(checks); ok {
			return services.Wrap(services.ErrConfiguration, "chd", "preflight", failed.Detail, nil)
		}
		if err := fileops.EnsureDir(opts.DestDir()); err != nil {
			return err
		}
	}

	converted := 0
	for _, src := range result.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		ext := lowerExt(src)
		var convert func(context.Context, string, string) error
		switch ext {
		case ".iso":
			convert = converter.CreateDVD
		case ".gdi", ".cue":
			convert = converter.CreateCD
		default:
			continue
		}

		out := filepath.Join(opts.DestDir(), chdName(src))
		if err := convertOne(ctx, convert, converter, src, out, opts.DryRun, logger); err != nil {
			if err := handleItemFailure(opts.OnError, logger, src, err); err != nil {
				return err
			}
			continue
		}
		converted++
	}

	logger.Info("chd run finished", logging.Int("converted", converted))
	return nil
}

func convertOne(ctx context.Context, convert func(context.Context, string, string) error, converter chdman.Converter, src, out string, dryRun bool, logger *slog.Logger) error {
	info, err := os.Stat(src)
	if err != nil {
		return services.Wrap(services.ErrIO, "chd", "stat image", src, err)
	}
	if !dryRun {
		if check := preflight.CheckFreeSpace("destination space", filepath.Dir(out), uint64(info.Size())); !check.Passed {
			return services.Wrap(services.ErrIO, "chd", "check free space", check.Detail, nil)
		}
	}

	if err := convert(ctx, src, out); err != nil {
		return err
	}
	return converter.Verify(ctx, out)
}

func chdName(src string) string {
	base := filepath.Base(src)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".chd"
}
