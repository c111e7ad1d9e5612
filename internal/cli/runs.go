package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"neuromorph/pkg/neuromorph"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	Limit int
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List persisted processing runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listRuns(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum runs to list")

	return cmd
}

func listRuns(cmd *cobra.Command, opts *RunsOptions) error {
	cfg, err := LoadFileConfig(opts.Config)
	if err != nil {
		return err
	}

	client, err := neuromorph.New(clientOptions(opts.RootOptions, cfg))
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := cmd.Context()
	if err := client.Initialize(ctx); err != nil {
		return err
	}

	runs, err := client.Runs(ctx, neuromorph.RunsRequest{Limit: opts.Limit})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs recorded")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(out, "%s  %s  in=%d out=%d spikes=%s eff=%.4f energy=%.2f lat=%dµs\n",
			r.RunID, r.CreatedAtUTC, r.InputSize, r.OutputSize,
			humanize.Comma(int64(r.SpikeCount)), r.EfficiencyScore,
			r.EnergyConsumed, r.LatencyMicros)
	}
	return nil
}
