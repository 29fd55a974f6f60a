package main

import (
	"github.com/spf13/cobra"

	"reshelf/internal/services/chdman"
	"reshelf/internal/workflow"
)

func newCHDCommand(ctx *commandContext) *cobra.Command {
	var flags batchFlags

	cmd := &cobra.Command{
		Use:   "chd <source>",
		Short: "Convert disc images to CHD and verify the results",
		Long: `Convert every .iso, .gdi, and .cue under <source> into a CHD using chdman,
then verify each produced file. DVD images use createdvd; CD images use
createcd. Other files are left alone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()
			opts, err := flags.options(args[0])
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}
			converter, err := chdman.New(cfg.Tools.Chdman,
				chdman.WithDryRun(opts.DryRun),
				chdman.WithLogger(logger),
			)
			if err != nil {
				return err
			}
			return workflow.ConvertCHD(cmd.Context(), opts, converter, workflow.RunLogger(logger, "chd"))
		},
	}

	addBatchFlags(cmd, &flags)
	return cmd
}
