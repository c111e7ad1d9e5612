package sched

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"neuromorph/internal/model"
)

var (
	// ErrPolicyNotFound is returned when a requested scheduling policy is
	// not registered.
	ErrPolicyNotFound = errors.New("scheduling policy not found")

	// ErrNoAnalyzer is returned when timing analysis is requested with an
	// empty analyzer registry.
	ErrNoAnalyzer = errors.New("no timing analyzer registered")

	// ErrNoMonitor is returned when deadline monitoring is requested with
	// an empty monitor registry.
	ErrNoMonitor = errors.New("no deadline monitor registered")

	// ErrDependencyCycle marks a task set whose dependencies form a cycle.
	ErrDependencyCycle = errors.New("task dependency cycle")

	// ErrUnknownDependency marks a dependency on a task that was not
	// submitted.
	ErrUnknownDependency = errors.New("unknown task dependency")
)

// Scheduler owns the policy, analyzer and monitor registries plus the
// hardware pool tasks are placed against. Registries may be extended before
// use; mutation and reads are guarded by one RWMutex.
type Scheduler struct {
	mu        sync.RWMutex
	policies  map[string]Policy
	analyzers []TimingAnalyzer
	monitors  []DeadlineMonitor
	pool      model.HardwareConstraints
}

// New builds a scheduler over the given hardware pool. Zero pool fields are
// filled with defaults (4 cores, 1024 MB, 2 neuromorphic units, 1.0 energy).
func New(pool model.HardwareConstraints) *Scheduler {
	if pool.AvailableCores <= 0 {
		pool.AvailableCores = 4
	}
	if pool.MemoryLimitMB <= 0 {
		pool.MemoryLimitMB = 1024
	}
	if pool.NeuromorphicUnits <= 0 {
		pool.NeuromorphicUnits = 2
	}
	if pool.EnergyBudget <= 0 {
		pool.EnergyBudget = 1.0
	}
	return &Scheduler{
		policies:  defaultPolicies(),
		analyzers: []TimingAnalyzer{ResponseTimeAnalyzer{}, UtilizationAnalyzer{}},
		monitors:  []DeadlineMonitor{PredictiveDeadlineMonitor{}, RealTimeDeadlineMonitor{}},
		pool:      pool,
	}
}

// RegisterPolicy adds or replaces a named policy.
func (s *Scheduler) RegisterPolicy(p Policy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policies[p.Name] = p
}

// SelectPolicy resolves a policy by name; the empty name selects the
// default EDF policy.
func (s *Scheduler) SelectPolicy(name string) (Policy, error) {
	if name == "" {
		name = PolicyConsciousnessAwareEDF
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.policies[name]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %q", ErrPolicyNotFound, name)
	}
	return p, nil
}

// AnalyzeTiming runs the primary analyzer over the task set.
func (s *Scheduler) AnalyzeTiming(tasks []model.SchedulableTask, constraints model.RealTimeConstraints) (model.TimingAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.analyzers) == 0 {
		return model.TimingAnalysis{}, ErrNoAnalyzer
	}
	return s.analyzers[0].Analyze(tasks, constraints), nil
}

// MonitorDeadlines runs the primary monitor over the executing set.
func (s *Scheduler) MonitorDeadlines(executing []model.ExecutingTask) (model.DeadlineMonitoringResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.monitors) == 0 {
		return model.DeadlineMonitoringResult{}, ErrNoMonitor
	}
	return s.monitors[0].Monitor(executing), nil
}

// sortEDF orders tasks by deadline, breaking ties by priority rank and then
// task ID so equal inputs always produce equal schedules.
func sortEDF(tasks []model.SchedulableTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Deadline != tasks[j].Deadline {
			return tasks[i].Deadline < tasks[j].Deadline
		}
		if ri, rj := tasks[i].Priority.Rank(), tasks[j].Priority.Rank(); ri != rj {
			return ri > rj
		}
		return tasks[i].ID < tasks[j].ID
	})
}

// Schedule validates dependencies, orders the task set earliest deadline
// first, and lays tasks out back-to-back from the origin with round-robin
// core and unit assignment from the pool.
func (s *Scheduler) Schedule(tasks []model.SchedulableTask, policy Policy) ([]model.ScheduledTask, error) {
	if _, err := validateDependencies(tasks); err != nil {
		return nil, err
	}

	ordered := append([]model.SchedulableTask(nil), tasks...)
	sortEDF(ordered)

	s.mu.RLock()
	pool := s.pool
	s.mu.RUnlock()

	scheduled := make([]model.ScheduledTask, 0, len(ordered))
	var cursor time.Duration
	nextCore, nextUnit := 0, 0
	for _, t := range ordered {
		var cores []int
		for c := 0; c < t.Resources.CPUCores; c++ {
			cores = append(cores, nextCore%pool.AvailableCores)
			nextCore++
		}
		var units []int
		for u := 0; u < t.Resources.NeuromorphicUnits; u++ {
			units = append(units, nextUnit%pool.NeuromorphicUnits)
			nextUnit++
		}

		scheduled = append(scheduled, model.ScheduledTask{
			TaskID:   t.ID,
			Start:    cursor,
			Duration: t.WCET,
			Assigned: model.AssignedResources{
				CPUCores:          cores,
				MemoryMB:          t.Resources.MemoryMB,
				NeuromorphicUnits: units,
				Energy:            t.Resources.EnergyBudget,
			},
			State: model.TaskScheduled,
		})
		cursor += t.WCET
	}
	return scheduled, nil
}

// AllocateResources reports pool utilization for a laid-out schedule.
// Demand beyond the pool is clamped to full utilization and recorded as a
// conflict rather than failing the schedule.
func (s *Scheduler) AllocateResources(scheduled []model.ScheduledTask, tasks []model.SchedulableTask) model.ResourceAllocation {
	s.mu.RLock()
	pool := s.pool
	s.mu.RUnlock()

	var cores, units int
	var memory int64
	var energy float64
	for _, t := range tasks {
		cores += t.Resources.CPUCores
		units += t.Resources.NeuromorphicUnits
		memory += t.Resources.MemoryMB
		energy += t.Resources.EnergyBudget
	}

	var alloc model.ResourceAllocation
	alloc.CPUUtilization, alloc.Conflicts = clampUtilization(
		float64(cores), float64(pool.AvailableCores), "cpu cores", alloc.Conflicts)
	alloc.MemoryUtilization, alloc.Conflicts = clampUtilization(
		float64(memory), float64(pool.MemoryLimitMB), "memory", alloc.Conflicts)
	alloc.NeuromorphicUtilization, alloc.Conflicts = clampUtilization(
		float64(units), float64(pool.NeuromorphicUnits), "neuromorphic units", alloc.Conflicts)
	alloc.EnergyUtilization, alloc.Conflicts = clampUtilization(
		energy, pool.EnergyBudget, "energy budget", alloc.Conflicts)
	return alloc
}

func clampUtilization(demand, capacity float64, label string, conflicts []string) (float64, []string) {
	if capacity <= 0 {
		return 0, conflicts
	}
	util := demand / capacity
	if util > 1.0 {
		conflicts = append(conflicts, fmt.Sprintf("%s demand %.3g exceeds pool %.3g", label, demand, capacity))
		util = 1.0
	}
	if util < 0 {
		util = 0
	}
	return util, conflicts
}

// guarantees derives the real-time promises from the analysis and layout.
// Hard real time is promised only for a schedulable set; jitter bounds are
// the 5-15µs hardware defaults widened by utilization.
func guarantees(analysis model.TimingAnalysis, scheduled []model.ScheduledTask) model.TimingGuarantees {
	var maxResp, totalResp time.Duration
	for _, st := range scheduled {
		end := st.Start + st.Duration
		if end > maxResp {
			maxResp = end
		}
		totalResp += end
	}
	var avgResp time.Duration
	if len(scheduled) > 0 {
		avgResp = totalResp / time.Duration(len(scheduled))
	}

	jitterMax := 15 * time.Microsecond
	if analysis.Utilization > 0.5 {
		jitterMax = time.Duration(float64(jitterMax) * (1 + analysis.Utilization))
	}

	return model.TimingGuarantees{
		HardRealTime:            analysis.Schedulable,
		SoftRealTimeProbability: 0.99,
		MaxResponse:             maxResp,
		AvgResponse:             avgResp,
		JitterMin:               5 * time.Microsecond,
		JitterMax:               jitterMax,
	}
}

// performanceMetrics reports the fixed per-decision overheads and the
// throughput of the laid-out schedule.
func performanceMetrics(analysis model.TimingAnalysis, scheduled []model.ScheduledTask) model.SchedulingPerformanceMetrics {
	var totalWait, span time.Duration
	for _, st := range scheduled {
		totalWait += st.Start
		if end := st.Start + st.Duration; end > span {
			span = end
		}
	}
	var avgWait time.Duration
	if len(scheduled) > 0 {
		avgWait = totalWait / time.Duration(len(scheduled))
	}
	throughput := 0.0
	if span > 0 {
		throughput = float64(len(scheduled)) / span.Seconds()
	}

	return model.SchedulingPerformanceMetrics{
		SchedulingOverhead:    5 * time.Microsecond,
		ContextSwitchOverhead: 2 * time.Microsecond,
		DeadlineMissRate:      analysis.MissProbability,
		AvgWaitingTime:        avgWait,
		Throughput:            throughput,
	}
}

// Plan composes the full scheduling pipeline: generate tasks from the
// requirements, analyze timing, select a policy, lay out the schedule,
// allocate resources and derive guarantees.
func (s *Scheduler) Plan(req model.ProcessingRequirements, cfg model.OptimizationConfig, policyName string) (model.SchedulingResult, error) {
	tasks := GenerateTasks(req)

	analysis, err := s.AnalyzeTiming(tasks, cfg.RealTime)
	if err != nil {
		return model.SchedulingResult{}, err
	}
	policy, err := s.SelectPolicy(policyName)
	if err != nil {
		return model.SchedulingResult{}, err
	}
	scheduled, err := s.Schedule(tasks, policy)
	if err != nil {
		return model.SchedulingResult{}, err
	}
	allocation := s.AllocateResources(scheduled, tasks)

	return model.SchedulingResult{
		Tasks:      scheduled,
		Policy:     policy.Name,
		Guarantees: guarantees(analysis, scheduled),
		Allocation: allocation,
		Metrics:    performanceMetrics(analysis, scheduled),
		Analysis:   analysis,
	}, nil
}
