package main

import (
	"github.com/spf13/cobra"

	"reshelf/internal/workflow"
)

func newOrderCommand(ctx *commandContext) *cobra.Command {
	var flags batchFlags
	var prefix string
	var season, offset int

	cmd := &cobra.Command{
		Use:   "order <source>",
		Short: "Rename files to positional names in natural order",
		Long: `Renames every file under the source to a positional name.
With --season the names follow the S##E## episode convention; otherwise
files become the simple numeric sequence {prefix}0001, {prefix}0002, ...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()
			opts, err := flags.options(args[0])
			if err != nil {
				return err
			}
			opts.Prefix = prefix
			opts.Season = season
			opts.Offset = offset

			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}
			return workflow.Order(cmd.Context(), opts, workflow.RunLogger(logger, "order"))
		},
	}

	addBatchFlags(cmd, &flags)
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Name prefix for non-episode numbering")
	cmd.Flags().IntVar(&season, "season", 0, "Season number; enables S##E## naming when > 0")
	cmd.Flags().IntVar(&offset, "offset", 1, "First index to assign")

	return cmd
}
