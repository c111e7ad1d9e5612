package sched

import (
	"sort"
	"time"

	"neuromorph/internal/model"
)

// taskTemplate is one catalogue entry. Deadline, period and WCET are offsets
// from the scheduling origin; a zero period marks the task aperiodic.
type taskTemplate struct {
	id        string
	kind      model.TaskKind
	priority  model.Priority
	deadline  time.Duration
	period    time.Duration
	wcet      time.Duration
	energy    float64
	deps      []string
	resources model.ResourceRequirements
}

// catalogue maps workload names to task templates. Names are the coarse
// processing categories callers submit, not task IDs.
var catalogue = map[string]taskTemplate{
	"consciousness computation": {
		id:       "consciousness_processing",
		kind:     model.TaskConsciousnessComputation,
		priority: model.PriorityCritical,
		deadline: 100 * time.Microsecond,
		period:   10 * time.Millisecond,
		wcet:     50 * time.Microsecond,
		energy:   0.001,
		resources: model.ResourceRequirements{
			CPUCores:           1,
			MemoryMB:           10,
			NeuromorphicUnits:  1,
			EnergyBudget:       0.001,
			ExclusiveResources: []string{"consciousness_unit"},
		},
	},
	"emotional processing": {
		id:       "emotional_processing",
		kind:     model.TaskEmotionalProcessing,
		priority: model.PriorityHigh,
		deadline: time.Millisecond,
		period:   50 * time.Millisecond,
		wcet:     200 * time.Microsecond,
		energy:   0.0005,
		deps:     []string{"consciousness_processing"},
		resources: model.ResourceRequirements{
			CPUCores:          1,
			MemoryMB:          5,
			NeuromorphicUnits: 1,
			EnergyBudget:      0.0005,
		},
	},
	"memory consolidation": {
		id:       "memory_consolidation",
		kind:     model.TaskMemoryConsolidation,
		priority: model.PriorityNormal,
		deadline: 20 * time.Millisecond,
		period:   100 * time.Millisecond,
		wcet:     2 * time.Millisecond,
		energy:   0.002,
		resources: model.ResourceRequirements{
			CPUCores:     1,
			MemoryMB:     50,
			EnergyBudget: 0.002,
		},
	},
	"energy optimization": {
		id:       "energy_optimization",
		kind:     model.TaskEnergyOptimization,
		priority: model.PriorityLow,
		deadline: 50 * time.Millisecond,
		period:   200 * time.Millisecond,
		wcet:     time.Millisecond,
		energy:   0.0001,
		resources: model.ResourceRequirements{
			CPUCores:     1,
			MemoryMB:     2,
			EnergyBudget: 0.0001,
		},
	},
	"system maintenance": {
		id:       "system_maintenance",
		kind:     model.TaskSystemMaintenance,
		priority: model.PriorityBackground,
		deadline: time.Second,
		wcet:     5 * time.Millisecond,
		energy:   0.005,
		resources: model.ResourceRequirements{
			CPUCores:     1,
			MemoryMB:     20,
			EnergyBudget: 0.005,
		},
	},
	"spike processing": {
		id:       "spike_processing",
		kind:     model.TaskSpikeProcessing,
		priority: model.PriorityHigh,
		deadline: 500 * time.Microsecond,
		period:   time.Millisecond,
		wcet:     100 * time.Microsecond,
		energy:   0.0002,
		resources: model.ResourceRequirements{
			CPUCores:           1,
			MemoryMB:           5,
			NeuromorphicUnits:  1,
			EnergyBudget:       0.0002,
			ExclusiveResources: []string{"neuromorphic_unit"},
		},
	},
	"plasticity update": {
		id:       "plasticity_update",
		kind:     model.TaskPlasticityUpdate,
		priority: model.PriorityNormal,
		deadline: 5 * time.Millisecond,
		period:   10 * time.Millisecond,
		wcet:     500 * time.Microsecond,
		energy:   0.0003,
		resources: model.ResourceRequirements{
			CPUCores:          1,
			MemoryMB:          10,
			NeuromorphicUnits: 1,
			EnergyBudget:      0.0003,
		},
	},
}

// templatesByID indexes the catalogue by task ID for dependency expansion.
var templatesByID = func() map[string]taskTemplate {
	m := make(map[string]taskTemplate, len(catalogue))
	for _, tmpl := range catalogue {
		m[tmpl.id] = tmpl
	}
	return m
}()

// GenerateTasks expands requested workload names into schedulable tasks.
// Unknown names are skipped and duplicates collapse to one task. Catalogue
// dependencies of the requested tasks are pulled in transitively, so the
// result is always closed over its own dependencies and never fails the
// scheduler's dependency validation. Requested tasks appear first, in
// request order; an empty result is valid Schedule input.
func GenerateTasks(req model.ProcessingRequirements) []model.SchedulableTask {
	var tasks []model.SchedulableTask
	var pending []string
	seen := make(map[string]bool)

	add := func(tmpl taskTemplate) {
		seen[tmpl.id] = true
		pending = append(pending, tmpl.deps...)
		tasks = append(tasks, model.SchedulableTask{
			ID:           tmpl.id,
			Kind:         tmpl.kind,
			Priority:     tmpl.priority,
			Deadline:     tmpl.deadline,
			Period:       tmpl.period,
			WCET:         tmpl.wcet,
			Energy:       tmpl.energy,
			Dependencies: append([]string(nil), tmpl.deps...),
			Resources:    tmpl.resources,
		})
	}

	for _, name := range req.Workloads {
		tmpl, ok := catalogue[name]
		if !ok || seen[tmpl.id] {
			continue
		}
		add(tmpl)
	}
	for len(pending) > 0 {
		id := pending[0]
		pending = pending[1:]
		if seen[id] {
			continue
		}
		tmpl, ok := templatesByID[id]
		if !ok {
			continue
		}
		add(tmpl)
	}
	return tasks
}

// Workloads lists the catalogue's workload names, for CLI discovery.
func Workloads() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
