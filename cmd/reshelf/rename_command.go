package main

import (
	"github.com/spf13/cobra"

	"reshelf/internal/workflow"
)

func newRenameCommand(ctx *commandContext) *cobra.Command {
	var flags batchFlags
	var prefix, replacement, suffix string

	cmd := &cobra.Command{
		Use:   "rename <source>",
		Short: "Rename files by prefix replacement and suffix removal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()
			opts, err := flags.options(args[0])
			if err != nil {
				return err
			}
			opts.Prefix = prefix
			opts.Replacement = replacement
			opts.Suffix = suffix

			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}
			return workflow.Rename(cmd.Context(), opts, workflow.RunLogger(logger, "rename"))
		},
	}

	addBatchFlags(cmd, &flags)
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Leading pattern to replace")
	cmd.Flags().StringVar(&replacement, "replacement", "", "Replacement for the matched prefix")
	cmd.Flags().StringVarP(&suffix, "suffix", "s", "", "Substring to remove")

	return cmd
}
