package fileops

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"syscall"
	"time"

	"reshelf/internal/logging"
	"reshelf/internal/services"
)

// MoveOrCopy relocates src to dst. The source/destination pair is logged
// unconditionally; the filesystem is only touched when dryRun is false.
// copyMode leaves the source in place. A rename across filesystems falls
// back to copy-and-remove.
func MoveOrCopy(src, dst string, copyMode, dryRun bool, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger.Info(fmt.Sprintf("%s => %s", src, dst),
		logging.Bool("copy", copyMode),
		logging.Bool("dry_run", dryRun),
	)
	if dryRun {
		return nil
	}

	if copyMode {
		if err := CopyFile(src, dst); err != nil {
			return services.Wrap(services.ErrIO, "", "copy file", src, err)
		}
		return nil
	}

	if err := os.Rename(src, dst); err != nil {
		if !isCrossDevice(err) {
			return services.Wrap(services.ErrIO, "", "move file", src, err)
		}
		if err := CopyFile(src, dst); err != nil {
			return services.Wrap(services.ErrIO, "", "copy across filesystems", src, err)
		}
		if err := os.Remove(src); err != nil {
			return services.Wrap(services.ErrIO, "", "remove source after copy", src, err)
		}
	}
	return nil
}

// Touch sets both access and modification time of path to ts. Under dry-run
// the intent is logged and the syscall skipped.
func Touch(path string, ts time.Time, dryRun bool, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger.Info("touch", logging.String("path", path),
		logging.String("timestamp", ts.UTC().Format(time.RFC3339)),
		logging.Bool("dry_run", dryRun),
	)
	if dryRun {
		return nil
	}
	if err := os.Chtimes(path, ts, ts); err != nil {
		return services.Wrap(services.ErrIO, "", "touch file", path, err)
	}
	return nil
}

// EnsureDir creates path and any missing parents. Already existing is fine;
// any other failure propagates.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return services.Wrap(services.ErrIO, "", "create directory", path, err)
	}
	return nil
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return errors.Is(linkErr.Err, syscall.EXDEV)
	}
	return errors.Is(err, syscall.EXDEV)
}
