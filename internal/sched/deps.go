package sched

import (
	"fmt"

	"neuromorph/internal/model"
)

// validateDependencies checks that every dependency names a submitted task
// and that the dependency graph is acyclic, using Kahn's algorithm. It
// returns the tasks in a valid topological order.
func validateDependencies(tasks []model.SchedulableTask) ([]model.SchedulableTask, error) {
	byID := make(map[string]model.SchedulableTask, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	indegree := make(map[string]int, len(tasks))
	dependents := make(map[string][]string)
	for _, t := range tasks {
		indegree[t.ID] += 0
		for _, dep := range t.Dependencies {
			if _, ok := byID[dep]; !ok {
				return nil, fmt.Errorf("%w: task %q depends on %q", ErrUnknownDependency, t.ID, dep)
			}
			indegree[t.ID]++
			dependents[dep] = append(dependents[dep], t.ID)
		}
	}

	// Seed the queue in submission order so the topological order is
	// deterministic for a given input.
	var queue []string
	for _, t := range tasks {
		if indegree[t.ID] == 0 {
			queue = append(queue, t.ID)
		}
	}

	ordered := make([]model.SchedulableTask, 0, len(tasks))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		ordered = append(ordered, byID[id])
		for _, next := range dependents[id] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(ordered) != len(tasks) {
		return nil, fmt.Errorf("%w: %d of %d tasks unreachable", ErrDependencyCycle, len(tasks)-len(ordered), len(tasks))
	}
	return ordered, nil
}
