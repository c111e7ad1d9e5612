package energy

import (
	"errors"
	"testing"

	"neuromorph/internal/model"
)

func TestMeasureWithoutMonitors(t *testing.T) {
	o := NewWithMonitors()
	if _, err := o.Measure(model.NetworkStats{Neurons: 10}); !errors.Is(err, ErrNoMonitor) {
		t.Fatalf("expected ErrNoMonitor, got %v", err)
	}
}

func TestMeasureScalesWithNeuronCount(t *testing.T) {
	o := New()
	m, err := o.Measure(model.NetworkStats{Neurons: 1000})
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	if m.TotalPower != 1.0 {
		t.Fatalf("total power = %v, want 1.0", m.TotalPower)
	}
	if m.Breakdown["neurons"] != 0.7 {
		t.Fatalf("neuron share = %v, want 0.7", m.Breakdown["neurons"])
	}
}

func TestIdentifyOpportunitiesWithinBudget(t *testing.T) {
	o := New()
	m := model.EnergyMeasurement{TotalPower: 0.5}
	cfg := model.OptimizationConfig{EnergyBudget: 1.0}

	if opps := o.IdentifyOpportunities(m, cfg); len(opps) != 0 {
		t.Fatalf("expected no opportunities within budget, got %d", len(opps))
	}
}

func TestIdentifyOpportunitiesOverBudget(t *testing.T) {
	o := New()
	m := model.EnergyMeasurement{TotalPower: 2.0}
	cfg := model.OptimizationConfig{EnergyBudget: 1.0}

	opps := o.IdentifyOpportunities(m, cfg)
	if len(opps) != 2 {
		t.Fatalf("opportunities = %d, want 2", len(opps))
	}
	for _, opp := range opps {
		if opp.PowerOver != 1.0 {
			t.Fatalf("power over = %v, want 1.0", opp.PowerOver)
		}
	}
}

func TestApplyFiltersByThreshold(t *testing.T) {
	o := New()
	opps := []Opportunity{
		{Strategy: Strategy{Name: "spike_suppression", ExpectedSavings: 0.8}},
		{Strategy: Strategy{Name: "clock_gating", ExpectedSavings: 0.4}},
	}

	applied := o.Apply(opps)
	if len(applied) != 1 || applied[0].Name != "spike_suppression" {
		t.Fatalf("applied = %+v, want only spike_suppression", applied)
	}
}

func TestSavingsCapped(t *testing.T) {
	o := New()
	applied := []Strategy{
		{Name: "spike_suppression"},
		{Name: "voltage_scaling"},
	}

	// 0.8 + 0.6 exceeds the cap.
	if s := o.Savings(applied); s != 0.999 {
		t.Fatalf("savings = %v, want 0.999", s)
	}
}

func TestSavingsUnknownStrategy(t *testing.T) {
	o := New()
	if s := o.Savings([]Strategy{{Name: "mystery"}}); s != 0.3 {
		t.Fatalf("savings = %v, want 0.3", s)
	}
}

func TestOptimizeOverBudget(t *testing.T) {
	o := New()
	stats := model.NetworkStats{Neurons: 2000}
	cfg := model.OptimizationConfig{EnergyBudget: 1.0}

	result, measurement, err := o.Optimize(stats, cfg)
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	if measurement.TotalPower != 2.0 {
		t.Fatalf("measured power = %v, want 2.0", measurement.TotalPower)
	}
	if len(result.Strategies) != 2 {
		t.Fatalf("strategies = %v, want both applied", result.Strategies)
	}
	if result.EnergySavings != 0.999 {
		t.Fatalf("savings = %v, want 0.999", result.EnergySavings)
	}
	want := 2.0 * (1.0 - 0.999)
	if diff := result.TotalEnergyConsumed - want; diff > 1e-12 || diff < -1e-12 {
		t.Fatalf("consumed = %v, want %v", result.TotalEnergyConsumed, want)
	}
}

func TestOptimizeWithinBudget(t *testing.T) {
	o := New()
	stats := model.NetworkStats{Neurons: 100}
	cfg := model.OptimizationConfig{EnergyBudget: 1.0}

	result, measurement, err := o.Optimize(stats, cfg)
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	if len(result.Strategies) != 0 || result.EnergySavings != 0 {
		t.Fatalf("expected no optimization within budget, got %+v", result)
	}
	if result.TotalEnergyConsumed != measurement.TotalPower {
		t.Fatalf("consumed = %v, want measured %v", result.TotalEnergyConsumed, measurement.TotalPower)
	}
}
