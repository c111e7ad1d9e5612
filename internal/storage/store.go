package storage

import (
	"context"

	"neuromorph/internal/model"
)

// Store defines persistence operations for processing, scheduling and
// energy run records.
type Store interface {
	Init(ctx context.Context) error
	SaveProcessingRun(ctx context.Context, run model.ProcessingRun) error
	GetProcessingRun(ctx context.Context, id string) (model.ProcessingRun, bool, error)
	ListProcessingRuns(ctx context.Context, limit int) ([]model.ProcessingRun, error)
	SaveSchedulingRun(ctx context.Context, run model.SchedulingRun) error
	GetSchedulingRun(ctx context.Context, id string) (model.SchedulingRun, bool, error)
	SaveEnergyReport(ctx context.Context, report model.EnergyReport) error
	GetEnergyReport(ctx context.Context, id string) (model.EnergyReport, bool, error)
}
