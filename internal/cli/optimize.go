package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"neuromorph/internal/model"
	"neuromorph/pkg/neuromorph"
)

// OptimizeOptions holds flags for the optimize command.
type OptimizeOptions struct {
	*RootOptions
	Budget float64
}

// NewOptimizeCommand creates the optimize command.
func NewOptimizeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OptimizeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Measure network power and apply energy savings",
		Long: `Measure the network's power draw and apply the optimization
strategies whose expected savings clear the payoff threshold.

Example:
  neuromorphctl optimize --budget 0.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOptimize(cmd, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.Budget, "budget", 0, "energy budget in watts (0 uses config file)")

	return cmd
}

func runOptimize(cmd *cobra.Command, opts *OptimizeOptions) error {
	cfg, err := LoadFileConfig(opts.Config)
	if err != nil {
		return err
	}
	budget := opts.Budget
	if budget <= 0 {
		budget = cfg.EnergyBudget
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

	summary, err := client.OptimizeEnergy(ctx, neuromorph.OptimizeRequest{
		Config: model.OptimizationConfig{EnergyBudget: budget},
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run:       %s\n", summary.RunID)
	fmt.Fprintf(out, "power:     %.4f W\n", summary.Measurement.TotalPower)
	for _, name := range []string{"neurons", "synapses", "memory"} {
		if v, ok := summary.Measurement.Breakdown[name]; ok {
			fmt.Fprintf(out, "  %-9s %.4f W\n", name+":", v)
		}
	}
	if len(summary.Result.Strategies) == 0 {
		fmt.Fprintln(out, "applied:   none (within budget)")
	} else {
		fmt.Fprintf(out, "applied:   %s\n", strings.Join(summary.Result.Strategies, ", "))
	}
	fmt.Fprintf(out, "savings:   %.1f%%\n", summary.Result.EnergySavings*100)
	fmt.Fprintf(out, "consumed:  %.4f W\n", summary.Result.TotalEnergyConsumed)
	return nil
}
