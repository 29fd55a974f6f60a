package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"reshelf/internal/workflow"
)

func newIncomingCommand(ctx *commandContext) *cobra.Command {
	var flags batchFlags

	cmd := &cobra.Command{
		Use:   "incoming <source>",
		Short: "Reconcile incoming entries against the extract area",
		Long: `Check every entry under <source> against the sibling extract area. An
entry is reported when its extract counterpart is missing, or when the
counterpart's file count does not match the source count plus the run log.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()
			stdout := cmd.OutOrStdout()
			opts, err := flags.options(args[0])
			if err != nil {
				return err
			}
			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}
			report, err := workflow.ReconcileIncoming(cmd.Context(), opts, workflow.RunLogger(logger, "incoming"))
			if err != nil {
				return err
			}
			if report.Empty() {
				fmt.Fprintln(stdout, "All incoming entries reconcile")
				return nil
			}
			if len(report.Missing) > 0 {
				rows := make([][]string, 0, len(report.Missing))
				for _, name := range report.Missing {
					rows = append(rows, []string{name})
				}
				fmt.Fprintln(stdout, renderTable([]string{"Missing"}, rows, []columnAlignment{alignLeft}))
			}
			if len(report.Mismatched) > 0 {
				rows := make([][]string, 0, len(report.Mismatched))
				for _, m := range report.Mismatched {
					rows = append(rows, []string{
						m.Name,
						strconv.Itoa(m.SourceCount),
						strconv.Itoa(m.ExtractCount),
					})
				}
				fmt.Fprintln(stdout, renderTable(
					[]string{"Mismatched", "Source", "Extract"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight},
				))
			}
			return nil
		},
	}

	addBatchFlags(cmd, &flags)
	return cmd
}
