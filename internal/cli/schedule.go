package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"neuromorph/internal/model"
	"neuromorph/internal/sched"
	"neuromorph/pkg/neuromorph"
)

// ScheduleOptions holds flags for the schedule command.
type ScheduleOptions struct {
	*RootOptions
	Workloads []string
	Policy    string
}

// NewScheduleCommand creates the schedule command.
func NewScheduleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScheduleOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Plan real-time tasks for the requested workloads",
		Long: fmt.Sprintf(`Generate, analyze and schedule real-time tasks.

Known workloads: %s.

Example:
  neuromorphctl schedule --workload "consciousness computation" --workload "emotional processing"`,
			strings.Join(sched.Workloads(), ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSchedule(cmd, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Workloads, "workload", nil, "workload name (repeatable)")
	cmd.Flags().StringVar(&opts.Policy, "policy", "", "scheduling policy name")

	return cmd
}

func runSchedule(cmd *cobra.Command, opts *ScheduleOptions) error {
	cfg, err := LoadFileConfig(opts.Config)
	if err != nil {
		return err
	}

	workloads := opts.Workloads
	if len(workloads) == 0 {
		workloads = cfg.Workloads
	}
	policy := opts.Policy
	if policy == "" {
		policy = cfg.Policy
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

	summary, err := client.Schedule(ctx, neuromorph.ScheduleRequest{
		Workloads: workloads,
		Policy:    policy,
		Config: model.OptimizationConfig{
			RealTime: model.RealTimeConstraints{
				MaxLatency: time.Duration(cfg.MaxLatencyUS) * time.Microsecond,
			},
			EnergyBudget: cfg.EnergyBudget,
		},
	})
	if err != nil {
		return err
	}

	result := summary.Result
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run:         %s\n", summary.RunID)
	fmt.Fprintf(out, "policy:      %s\n", result.Policy)
	fmt.Fprintf(out, "schedulable: %t (utilization %.3f)\n",
		result.Analysis.Schedulable, result.Analysis.Utilization)
	fmt.Fprintf(out, "guarantees:  hard=%t soft=%.2f max=%s avg=%s\n",
		result.Guarantees.HardRealTime, result.Guarantees.SoftRealTimeProbability,
		result.Guarantees.MaxResponse, result.Guarantees.AvgResponse)
	fmt.Fprintln(out, "tasks:")
	for _, t := range result.Tasks {
		fmt.Fprintf(out, "  %-28s start=%-10s wcet=%-10s cores=%v\n",
			t.TaskID, t.Start, t.Duration, t.Assigned.CPUCores)
	}
	if len(result.Allocation.Conflicts) > 0 {
		fmt.Fprintln(out, "conflicts:")
		for _, c := range result.Allocation.Conflicts {
			fmt.Fprintf(out, "  %s\n", c)
		}
	}
	return nil
}
