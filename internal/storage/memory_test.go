package storage

import (
	"context"
	"testing"

	"neuromorph/internal/model"
)

func TestMemoryStoreProcessingRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := model.ProcessingRun{
		VersionedRecord: Stamp(),
		ID:              "run-1",
		InputSize:       64,
		OutputSize:      256,
		SpikeCount:      1200,
		EfficiencyScore: 0.92,
	}
	if err := store.SaveProcessingRun(ctx, input); err != nil {
		t.Fatalf("save run: %v", err)
	}

	output, ok, err := store.GetProcessingRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted run")
	}
	if output.SpikeCount != 1200 || output.OutputSize != 256 {
		t.Fatalf("unexpected run: %+v", output)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	if _, ok, err := store.GetProcessingRun(ctx, "ghost"); err != nil || ok {
		t.Fatalf("expected miss, got ok=%t err=%v", ok, err)
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	for _, id := range []string{"a", "b", "c"} {
		run := model.ProcessingRun{VersionedRecord: Stamp(), ID: id}
		if err := store.SaveProcessingRun(ctx, run); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	runs, err := store.ListProcessingRuns(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "c" || runs[1].ID != "b" {
		t.Fatalf("unexpected listing: %+v", runs)
	}
}

func TestMemoryStoreSchedulingRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := model.SchedulingRun{
		VersionedRecord: Stamp(),
		ID:              "sched-1",
		TaskCount:       3,
		Policy:          "consciousness_aware_edf",
		Schedulable:     true,
	}
	if err := store.SaveSchedulingRun(ctx, input); err != nil {
		t.Fatalf("save run: %v", err)
	}
	output, ok, err := store.GetSchedulingRun(ctx, "sched-1")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if !ok || output.TaskCount != 3 || !output.Schedulable {
		t.Fatalf("unexpected run: ok=%t %+v", ok, output)
	}
}

func TestMemoryStoreEnergyReportRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := model.EnergyReport{
		VersionedRecord: Stamp(),
		ID:              "energy-1",
		TotalPower:      2.0,
		Savings:         0.999,
		Strategies:      []string{"spike_suppression"},
	}
	if err := store.SaveEnergyReport(ctx, input); err != nil {
		t.Fatalf("save report: %v", err)
	}
	output, ok, err := store.GetEnergyReport(ctx, "energy-1")
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if !ok || output.Savings != 0.999 || len(output.Strategies) != 1 {
		t.Fatalf("unexpected report: ok=%t %+v", ok, output)
	}
}
