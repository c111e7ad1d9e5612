package sched

import (
	"errors"
	"testing"

	"neuromorph/internal/model"
)

func TestValidateDependenciesCycle(t *testing.T) {
	tasks := []model.SchedulableTask{
		{ID: "a", Dependencies: []string{"b"}},
		{ID: "b", Dependencies: []string{"a"}},
	}

	_, err := validateDependencies(tasks)
	if !errors.Is(err, ErrDependencyCycle) {
		t.Fatalf("expected ErrDependencyCycle, got %v", err)
	}
}

func TestValidateDependenciesUnknown(t *testing.T) {
	tasks := []model.SchedulableTask{
		{ID: "a", Dependencies: []string{"ghost"}},
	}

	_, err := validateDependencies(tasks)
	if !errors.Is(err, ErrUnknownDependency) {
		t.Fatalf("expected ErrUnknownDependency, got %v", err)
	}
}

func TestValidateDependenciesTopologicalOrder(t *testing.T) {
	tasks := []model.SchedulableTask{
		{ID: "c", Dependencies: []string{"b"}},
		{ID: "b", Dependencies: []string{"a"}},
		{ID: "a"},
	}

	ordered, err := validateDependencies(tasks)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	position := make(map[string]int, len(ordered))
	for i, task := range ordered {
		position[task.ID] = i
	}
	if position["a"] > position["b"] || position["b"] > position["c"] {
		t.Fatalf("order violates dependencies: %v", position)
	}
}
