package main

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"reshelf/internal/services/unrar"
	"reshelf/internal/workflow"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <content> [root]",
		Short: "Mirror an incoming entry into the extract area",
		Long: `Copy whitelisted files from <content> into the extract area under [root]
(default: the content's parent directory), unpacking archives along the
way. Every run writes its own log next to the mirrored files.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()
			content, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve content: %w", err)
			}
			root := filepath.Dir(content)
			if len(args) > 1 {
				if root, err = filepath.Abs(args[1]); err != nil {
					return fmt.Errorf("resolve root: %w", err)
				}
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}
			logOpts, err := ctx.loggingOptions()
			if err != nil {
				return err
			}

			// One extraction at a time; concurrent runs would interleave
			// writes into the same extract area.
			lock := flock.New(filepath.Join(cfg.Paths.LogDir, "reshelf.lock"))
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire extract lock: %w", err)
			}
			if !ok {
				return fmt.Errorf("another extract run is already in progress")
			}
			defer func() {
				_ = lock.Unlock()
			}()

			client, err := unrar.New(cfg.Tools.Unrar, unrar.WithLogger(logger))
			if err != nil {
				return err
			}
			extractor := workflow.NewExtractor(cfg, client, logOpts)
			return extractor.ExtractOne(cmd.Context(), content, root)
		},
	}
	return cmd
}
