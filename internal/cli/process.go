package cli

import (
	"fmt"
	"math/rand"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"neuromorph/pkg/neuromorph"
)

// ProcessOptions holds flags for the process command.
type ProcessOptions struct {
	*RootOptions
	PatternSize int
	Intensity   float64
}

// NewProcessCommand creates the process command.
func NewProcessCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProcessOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Run a spike pattern through the network",
		Long: `Initialize the spiking network and process a generated spike pattern.

The pattern is drawn from the construction seed, so repeated invocations
with the same seed and configuration print identical results.

Example:
  neuromorphctl process --pattern-size 64 --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProcess(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.PatternSize, "pattern-size", 64, "number of pattern samples")
	cmd.Flags().Float64Var(&opts.Intensity, "intensity", 1.5, "peak pattern amplitude")

	return cmd
}

func runProcess(cmd *cobra.Command, opts *ProcessOptions) error {
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

	pattern := generatePattern(opts.PatternSize, opts.Intensity, opts.Seed)
	summary, err := client.Process(ctx, pattern)
	if err != nil {
		return err
	}

	stats, err := client.Stats(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run:        %s\n", summary.RunID)
	fmt.Fprintf(out, "output:     %d samples\n", len(summary.Result.OutputSpikes))
	fmt.Fprintf(out, "spikes:     %s\n", humanize.Comma(int64(stats.TotalSpikes)))
	fmt.Fprintf(out, "efficiency: %.4f\n", summary.Result.EfficiencyScore)
	fmt.Fprintf(out, "energy:     %.2f pJ\n", summary.Result.EnergyConsumed)
	fmt.Fprintf(out, "latency:    %s\n", summary.Result.Latency)
	fmt.Fprintf(out, "bursts:     %d (entropy %.3f, variance %.4f)\n",
		len(summary.Train.Bursts), summary.Train.Entropy, summary.Train.Variance)
	return nil
}

// generatePattern builds a deterministic test pattern: uniform samples in
// [0, intensity) from the given seed.
func generatePattern(size int, intensity float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	pattern := make([]float64, size)
	for i := range pattern {
		pattern[i] = rng.Float64() * intensity
	}
	return pattern
}
