// Package cmd implements the fixer CLI commands.
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the fixer CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fixer",
		Short: "Sticky-element scenario runner",
		Long: `Fixer replays scroll scenarios against a synthetic page and reports
how sticky elements transition between fixed and unfixed states.

Scenarios are yaml files describing the page, its elements, and a
scroll script. Use "fixer <command> --help" for details.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewSimulateCommand(opts))
	cmd.AddCommand(NewSnapshotCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// newLogger builds the command logger honoring the verbose flag.
func newLogger(w io.Writer, opts *RootOptions) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
