package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds the global flags shared by all commands.
type RootOptions struct {
	Store  string
	DBPath string
	Seed   int64
	Config string
}

// NewRootCommand creates the neuromorphctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "neuromorphctl",
		Short: "Neuromorphic co-processor control",
		Long: `neuromorphctl drives the simulated neuromorphic co-processor:
spike pattern processing, real-time task scheduling and energy optimization.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Store, "store", "memory", "store backend (memory|sqlite)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db-path", "", "sqlite database path")
	cmd.PersistentFlags().Int64Var(&opts.Seed, "seed", 0, "network construction seed")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "YAML config file")

	cmd.AddCommand(NewProcessCommand(opts))
	cmd.AddCommand(NewScheduleCommand(opts))
	cmd.AddCommand(NewOptimizeCommand(opts))
	cmd.AddCommand(NewRunsCommand(opts))

	return cmd
}
