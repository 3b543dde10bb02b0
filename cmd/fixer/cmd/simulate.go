package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexspark86/Fixer/pkg/sim"
)

// SimulateOptions holds flags for the simulate command.
type SimulateOptions struct {
	*RootOptions
	Output string
}

// NewSimulateCommand creates the simulate command.
func NewSimulateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SimulateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "simulate <scenario.yaml>",
		Short: "Replay a scenario and print its transition trace",
		Long: `Replay a scenario's scroll script against its synthetic page and
print one line per element state transition.

Example:
  fixer simulate scenarios/stacked.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "also write the trace to a file")

	return cmd
}

func runSimulate(cmd *cobra.Command, opts *SimulateOptions, path string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.RootOptions)

	scenario, err := sim.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("scenario loaded", "name", scenario.Name, "path", path)

	result, err := sim.NewRunner(logger).Run(scenario)
	if err != nil {
		return err
	}

	trace := result.TraceText()
	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(trace), 0o644); err != nil {
			return fmt.Errorf("failed to write trace: %w", err)
		}
		logger.Info("trace written", "path", opts.Output, "events", len(result.Events))
	}

	fmt.Fprint(cmd.OutOrStdout(), trace)
	return nil
}
