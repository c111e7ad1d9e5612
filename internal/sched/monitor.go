package sched

import (
	"time"

	"neuromorph/internal/model"
)

// DeadlineMonitor inspects in-flight tasks and recommends corrective
// actions before deadlines are actually missed.
type DeadlineMonitor interface {
	Name() string
	Monitor(executing []model.ExecutingTask) model.DeadlineMonitoringResult
}

// PredictiveDeadlineMonitor flags tasks whose estimated completion already
// exceeds their deadline and scales the miss probability by how far the
// estimate overruns the task's execution window. Corrective actions are
// priority-aware: an at-risk critical task preempts lower-priority work
// instead of waiting for a reschedule.
type PredictiveDeadlineMonitor struct{}

func (PredictiveDeadlineMonitor) Name() string { return "predictive" }

func (PredictiveDeadlineMonitor) Monitor(executing []model.ExecutingTask) model.DeadlineMonitoringResult {
	var result model.DeadlineMonitoringResult
	for _, t := range executing {
		if t.EstimatedCompletion <= t.Deadline {
			continue
		}
		overrun := t.EstimatedCompletion - t.Deadline
		window := t.Deadline - t.Start
		if window <= 0 {
			window = time.Microsecond
		}
		prob := float64(overrun) / float64(window)
		if prob > 0.99 {
			prob = 0.99
		}

		result.TasksAtRisk = append(result.TasksAtRisk, t.TaskID)
		result.Predictions = append(result.Predictions, model.DeadlineMissPrediction{
			TaskID:          t.TaskID,
			MissProbability: prob,
			ExpectedDelay:   overrun,
			Impact:          1.0 - t.Progress,
		})

		switch {
		case t.Priority == model.PriorityCritical:
			result.Actions = append(result.Actions, model.SchedulingAction{
				Kind:   model.ActionPreemptLower,
				TaskID: t.TaskID,
			})
		case overrun >= window:
			result.Actions = append(result.Actions, model.SchedulingAction{
				Kind:   model.ActionReschedule,
				TaskID: t.TaskID,
			})
		case t.Progress < 0.5:
			result.Actions = append(result.Actions, model.SchedulingAction{
				Kind:   model.ActionAddResources,
				TaskID: t.TaskID,
			})
		default:
			result.Actions = append(result.Actions, model.SchedulingAction{
				Kind:   model.ActionRaisePriority,
				TaskID: t.TaskID,
			})
		}
		if prob > 0.9 {
			result.Actions = append(result.Actions, model.SchedulingAction{
				Kind:   model.ActionNotify,
				TaskID: t.TaskID,
			})
		}
	}
	return result
}

// RealTimeDeadlineMonitor only reacts to overruns that are already certain;
// it never predicts.
type RealTimeDeadlineMonitor struct{}

func (RealTimeDeadlineMonitor) Name() string { return "realtime" }

func (RealTimeDeadlineMonitor) Monitor(executing []model.ExecutingTask) model.DeadlineMonitoringResult {
	var result model.DeadlineMonitoringResult
	for _, t := range executing {
		if t.EstimatedCompletion <= t.Deadline {
			continue
		}
		result.TasksAtRisk = append(result.TasksAtRisk, t.TaskID)
		result.Predictions = append(result.Predictions, model.DeadlineMissPrediction{
			TaskID:          t.TaskID,
			MissProbability: 1.0,
			ExpectedDelay:   t.EstimatedCompletion - t.Deadline,
			Impact:          1.0 - t.Progress,
		})
		result.Actions = append(result.Actions, model.SchedulingAction{
			Kind:   model.ActionNotify,
			TaskID: t.TaskID,
		})
	}
	return result
}
