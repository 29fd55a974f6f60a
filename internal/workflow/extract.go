package workflow

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"reshelf/internal/config"
	"reshelf/internal/fileops"
	"reshelf/internal/logging"
	"reshelf/internal/services"
	"reshelf/internal/services/unrar"
)

// Extractor mirrors one incoming entry into the extract area. Unlike the
// other workflows it never honors dry-run: archive extraction has no
// meaningful simulation, and the asymmetry is deliberate.
type Extractor struct {
	cfg     *config.Config
	unrar   unrar.Extractor
	logOpts logging.Options
}

// NewExtractor builds an extractor. logOpts describes the console logger the
// run should mirror into its per-run extract log.
func NewExtractor(cfg *config.Config, client unrar.Extractor, logOpts logging.Options) *Extractor {
	return &Extractor{cfg: cfg, unrar: client, logOpts: logOpts}
}

type queuedArchive struct {
	archive string
	destDir string
}

// ExtractOne mirrors content (a file or directory) into
// {root}/!extract/{basename}. Whitelisted files are copied, archives are
// unpacked into the mirrored location, and everything else is skipped with a
// logged notice. Every log line also lands in {dest}/!extract.log, flushed
// as it is written.
func (e *Extractor) ExtractOne(ctx context.Context, content, root string) error {
	if e.cfg == nil || e.unrar == nil {
		return services.Wrap(services.ErrConfiguration, "extract", "resolve dependencies", "extractor not fully wired", nil)
	}

	base := filepath.Base(content)
	dest := filepath.Join(root, config.ExtractDirName, base)
	if err := fileops.EnsureDir(dest); err != nil {
		return err
	}

	sink, err := logging.NewFileSink(filepath.Join(dest, config.ExtractLogName))
	if err != nil {
		return services.Wrap(services.ErrIO, "extract", "open run log", dest, err)
	}
	defer sink.Close()

	opts := e.logOpts
	opts.Mirror = sink
	logger, err := logging.New(opts)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "extract", "build run logger", "", err)
	}
	logger = logging.NewComponentLogger(RunLogger(logger, "extract"), "extract")
	logger.Info("extracting", logging.String("content", content), logging.String("dest", dest))

	info, err := os.Stat(content)
	if err != nil {
		return services.Wrap(services.ErrIO, "extract", "stat content", content, err)
	}

	if !info.IsDir() {
		if !e.cfg.CopyWhitelisted(lowerExt(content)) {
			logger.Info("skipping non-whitelisted file", logging.String("path", content))
			return nil
		}
		if err := fileops.CopyFile(content, filepath.Join(dest, base)); err != nil {
			return services.Wrap(services.ErrIO, "extract", "copy file", content, err)
		}
		logger.Info("copied", logging.String("path", content))
		return nil
	}

	queue, err := e.copyTree(ctx, content, dest, logger)
	if err != nil {
		return err
	}

	for _, item := range queue {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.unrar.Extract(ctx, item.archive, item.destDir); err != nil {
			return err
		}
		logger.Info("extracted archive", logging.String("archive", item.archive))
	}

	logger.Info("extract run finished",
		logging.String("dest", dest),
		logging.Int("archives", len(queue)),
	)
	return nil
}

// copyTree mirrors src into dst, copying whitelisted files and collecting
// archives for the extraction pass that follows.
func (e *Extractor) copyTree(ctx context.Context, src, dst string, logger *slog.Logger) ([]queuedArchive, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return nil, services.Wrap(services.ErrTraversal, "extract", "list directory", src, err)
	}

	var queue []queuedArchive
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := fileops.EnsureDir(dstPath); err != nil {
				return queue, err
			}
			sub, err := e.copyTree(ctx, srcPath, dstPath, logger)
			if err != nil {
				return queue, err
			}
			queue = append(queue, sub...)
			continue
		}

		ext := lowerExt(srcPath)
		switch {
		case e.cfg.CopyWhitelisted(ext):
			if err := fileops.CopyFile(srcPath, dstPath); err != nil {
				return queue, services.Wrap(services.ErrIO, "extract", "copy file", srcPath, err)
			}
			logger.Info("copied", logging.String("path", srcPath))
		case e.cfg.ArchiveWhitelisted(ext):
			queue = append(queue, queuedArchive{archive: srcPath, destDir: dst})
			logger.Info("queued archive", logging.String("path", srcPath))
		default:
			logger.Info("skipping non-whitelisted file", logging.String("path", srcPath))
		}
	}
	return queue, nil
}
