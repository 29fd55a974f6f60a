package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"reshelf/internal/services"
	"reshelf/internal/workflow"
)

// batchFlags carries the switches shared by every batch workflow command.
type batchFlags struct {
	dest    string
	copy    bool
	dryRun  bool
	force   bool
	dot     bool
	recurse bool
}

func addBatchFlags(cmd *cobra.Command, f *batchFlags) {
	cmd.Flags().StringVarP(&f.dest, "dest", "d", "", "Destination directory (defaults to source)")
	cmd.Flags().BoolVar(&f.copy, "copy", false, "Copy files instead of moving them")
	cmd.Flags().BoolVarP(&f.dryRun, "dry-run", "n", false, "Log planned operations without touching the filesystem")
	cmd.Flags().BoolVarP(&f.force, "force", "f", false, "Continue past per-item failures instead of halting")
	cmd.Flags().BoolVar(&f.dot, "dot", false, "Include dot files")
	cmd.Flags().BoolVarP(&f.recurse, "recurse", "r", false, "Recurse into subdirectories")
}

// options resolves the flags plus the source argument into the immutable
// run snapshot.
func (f *batchFlags) options(source string) (workflow.Options, error) {
	absSource, err := filepath.Abs(source)
	if err != nil {
		return workflow.Options{}, fmt.Errorf("resolve source: %w", err)
	}
	dest := f.dest
	if dest != "" {
		if dest, err = filepath.Abs(dest); err != nil {
			return workflow.Options{}, fmt.Errorf("resolve dest: %w", err)
		}
	}
	policy := services.Halt
	if f.force {
		policy = services.ContinueAndRecord
	}
	return workflow.Options{
		Source:          absSource,
		Dest:            dest,
		Copy:            f.copy,
		DryRun:          f.dryRun,
		IncludeDotFiles: f.dot,
		Recurse:         f.recurse,
		OnError:         policy,
	}, nil
}
