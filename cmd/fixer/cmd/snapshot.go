package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexspark86/Fixer/pkg/sim"
)

// SnapshotOptions holds flags for the snapshot command.
type SnapshotOptions struct {
	*RootOptions
	Scroll float64
	Output string
}

// NewSnapshotCommand creates the snapshot command.
func NewSnapshotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SnapshotOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "snapshot <scenario.yaml>",
		Short: "Render one frame of a scenario to a PNG",
		Long: `Render the scenario's viewport at a scroll position and write the
frame as a PNG. Fixed elements are drawn at their viewport edge
offsets; everything else scrolls with the document.

Example:
  fixer snapshot scenarios/stacked.yaml --scroll 500 -o frame.png`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, opts, args[0])
		},
	}

	cmd.Flags().Float64Var(&opts.Scroll, "scroll", 0, "scroll position to render at")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output PNG path (required)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runSnapshot(cmd *cobra.Command, opts *SnapshotOptions, path string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.RootOptions)

	scenario, err := sim.Load(path)
	if err != nil {
		return err
	}
	if err := sim.SavePNG(opts.Output, scenario, opts.Scroll); err != nil {
		return err
	}

	logger.Info("snapshot written", "scenario", scenario.Name, "scroll", opts.Scroll, "path", opts.Output)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.Output)
	return nil
}
