package sched

import (
	"fmt"
	"time"

	"neuromorph/internal/model"
)

// TimingAnalyzer decides schedulability of a task set under real-time
// constraints before any schedule is laid out.
type TimingAnalyzer interface {
	Name() string
	Analyze(tasks []model.SchedulableTask, constraints model.RealTimeConstraints) model.TimingAnalysis
}

// analysisHorizon is the window schedulability is judged over: the caller's
// horizon when set, otherwise the latest task deadline.
func analysisHorizon(tasks []model.SchedulableTask, constraints model.RealTimeConstraints) time.Duration {
	if constraints.Horizon > 0 {
		return constraints.Horizon
	}
	var horizon time.Duration
	for _, t := range tasks {
		if t.Deadline > horizon {
			horizon = t.Deadline
		}
	}
	return horizon
}

// utilization sums WCET/period over the task set. Aperiodic tasks charge
// WCET against the horizon.
func utilization(tasks []model.SchedulableTask, horizon time.Duration) float64 {
	total := 0.0
	for _, t := range tasks {
		switch {
		case t.Period > 0:
			total += float64(t.WCET) / float64(t.Period)
		case horizon > 0:
			total += float64(t.WCET) / float64(horizon)
		}
	}
	return total
}

// exclusiveBottlenecks reports exclusive resource tags contended by more
// than one task.
func exclusiveBottlenecks(tasks []model.SchedulableTask) []string {
	claims := make(map[string]int)
	var order []string
	for _, t := range tasks {
		for _, tag := range t.Resources.ExclusiveResources {
			if claims[tag] == 0 {
				order = append(order, tag)
			}
			claims[tag]++
		}
	}
	var out []string
	for _, tag := range order {
		if claims[tag] > 1 {
			out = append(out, tag)
		}
	}
	return out
}

// ResponseTimeAnalyzer judges the task set by laying it out back-to-back in
// deadline order and comparing completions against deadlines.
type ResponseTimeAnalyzer struct{}

func (ResponseTimeAnalyzer) Name() string { return "response_time" }

func (ResponseTimeAnalyzer) Analyze(tasks []model.SchedulableTask, constraints model.RealTimeConstraints) model.TimingAnalysis {
	horizon := analysisHorizon(tasks, constraints)
	util := utilization(tasks, horizon)

	ordered := append([]model.SchedulableTask(nil), tasks...)
	sortEDF(ordered)

	responses := make(map[string]time.Duration, len(ordered))
	var cursor, totalWCET time.Duration
	missed := 0
	var critical []string
	for _, t := range ordered {
		cursor += t.WCET
		totalWCET += t.WCET
		responses[t.ID] = cursor
		if cursor > t.Deadline {
			missed++
		}
		// A task with less than 10% of its deadline in slack sits on
		// the critical path.
		slack := t.Deadline - cursor
		if slack < t.Deadline/10 {
			critical = append(critical, t.ID)
		}
	}

	schedulable := util <= 1.0 && missed == 0 && totalWCET <= horizon
	missProb := 0.0
	if len(ordered) > 0 && missed > 0 {
		missProb = float64(missed) / float64(len(ordered))
		if missProb > 0.99 {
			missProb = 0.99
		}
	}

	path := model.CriticalPath{
		CriticalTasks:       critical,
		BottleneckResources: exclusiveBottlenecks(tasks),
	}
	if len(critical) > 0 {
		path.Suggestions = append(path.Suggestions,
			fmt.Sprintf("reduce load or extend deadlines for %d critical task(s)", len(critical)))
	}
	if len(path.BottleneckResources) > 0 {
		path.Suggestions = append(path.Suggestions, "serialize access to contended exclusive resources")
	}

	return model.TimingAnalysis{
		Schedulable:       schedulable,
		Utilization:       util,
		WorstCaseResponse: responses,
		MissProbability:   missProb,
		CriticalPath:      path,
	}
}

// UtilizationAnalyzer is the cheap bound-based check: schedulable iff total
// utilization does not exceed the processor.
type UtilizationAnalyzer struct{}

func (UtilizationAnalyzer) Name() string { return "utilization" }

func (UtilizationAnalyzer) Analyze(tasks []model.SchedulableTask, constraints model.RealTimeConstraints) model.TimingAnalysis {
	horizon := analysisHorizon(tasks, constraints)
	util := utilization(tasks, horizon)

	missProb := 0.0
	if util > 1.0 {
		missProb = util - 1.0
		if missProb > 0.99 {
			missProb = 0.99
		}
	}

	return model.TimingAnalysis{
		Schedulable:     util <= 1.0,
		Utilization:     util,
		MissProbability: missProb,
		CriticalPath: model.CriticalPath{
			BottleneckResources: exclusiveBottlenecks(tasks),
		},
	}
}
