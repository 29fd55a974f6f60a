package workflow

import (
	"context"
	"log/slog"
	"time"

	"reshelf/internal/fileops"
	"reshelf/internal/logging"
	"reshelf/internal/walk"
)

// Touch sets access and modification times of every file under the source
// root to one year before now. The timestamp is computed once per run and
// shared by all files.
func Touch(ctx context.Context, opts Options, logger *slog.Logger) error {
	logger = logging.NewComponentLogger(logger, "touch")
	result, err := walk.Walk(opts.Source, opts.walkOptions(logger))
	if err != nil {
		return err
	}

	ts := time.Now().AddDate(-1, 0, 0)
	logger.Info("enumerated files",
		logging.Int("count", len(result.Files)),
		logging.String("timestamp", ts.UTC().Format(time.RFC3339)),
	)

	for _, path := range result.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fileops.Touch(path, ts, opts.DryRun, logger); err != nil {
			if err := handleItemFailure(opts.OnError, logger, path, err); err != nil {
				return err
			}
		}
	}

	logger.Info("touch run finished", logging.Int("files", len(result.Files)))
	return nil
}
