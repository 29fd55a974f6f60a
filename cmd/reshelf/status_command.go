package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reshelf/internal/deps"
	"reshelf/internal/preflight"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show external tool availability and directory health",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()
			stdout := cmd.OutOrStdout()
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			colorize := isTerminalWriter(stdout)

			statuses := deps.CheckBinaries(deps.For(cfg))
			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "available"
				if !status.Available {
					state = "missing"
					if status.Detail != "" {
						state = status.Detail
					}
				}
				rows = append(rows, []string{status.Name, status.Command, paint(state, status.Available, colorize)})
			}
			fmt.Fprintln(stdout, renderTable(
				[]string{"Tool", "Command", "Status"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))

			check := preflight.CheckDirectoryAccess("log directory", cfg.Paths.LogDir)
			detail := check.Detail
			if detail == "" {
				detail = "read/write"
			}
			fmt.Fprintln(stdout, renderTable(
				[]string{"Directory", "Path", "Status"},
				[][]string{{check.Name, cfg.Paths.LogDir, paint(detail, check.Passed, colorize)}},
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func paint(label string, ok, colorize bool) string {
	if !colorize {
		return label
	}
	if ok {
		return ansiGreen + label + ansiReset
	}
	return ansiRed + label + ansiReset
}
