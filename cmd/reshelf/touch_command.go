package main

import (
	"github.com/spf13/cobra"

	"reshelf/internal/workflow"
)

func newTouchCommand(ctx *commandContext) *cobra.Command {
	var flags batchFlags

	cmd := &cobra.Command{
		Use:   "touch <source>",
		Short: "Backdate file timestamps to one year before now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()
			opts, err := flags.options(args[0])
			if err != nil {
				return err
			}
			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}
			return workflow.Touch(cmd.Context(), opts, workflow.RunLogger(logger, "touch"))
		},
	}

	addBatchFlags(cmd, &flags)
	return cmd
}
