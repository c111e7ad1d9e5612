package snn

import (
	"math/rand"
	"testing"
)

func TestNeuronStateStrings(t *testing.T) {
	cases := map[NeuronState]string{
		StateResting:     "resting",
		StateIntegrating: "integrating",
		StateSpiking:     "spiking",
		StateRefractory:  "refractory",
		NeuronState(99):  "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", state, got, want)
		}
	}
}

func TestRefractoryNeuronCannotRefire(t *testing.T) {
	cfg := testConfig()
	n, err := New(cfg, rand.New(rand.NewSource(17)))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	// Force one neuron into refractory and hold its potential above
	// threshold; a step must not fire it.
	neuron := &n.layers[1].Neurons[0]
	neuron.State = StateRefractory
	neuron.LastSpikeMS = n.nowMS
	neuron.Potential = cfg.SpikeThreshold * 10

	before := neuron.Potential
	n.step()

	if neuron.State == StateSpiking {
		t.Fatal("refractory neuron fired")
	}
	if neuron.Potential != before {
		t.Fatalf("refractory potential decayed: %v -> %v", before, neuron.Potential)
	}
}

func TestRefractoryReleasesAfterPeriod(t *testing.T) {
	cfg := testConfig()
	n, err := New(cfg, rand.New(rand.NewSource(19)))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	neuron := &n.layers[1].Neurons[0]
	neuron.State = StateRefractory
	neuron.LastSpikeMS = n.nowMS
	neuron.Potential = 0

	// 2ms refractory at 0.1ms steps releases after the period elapses.
	steps := int(cfg.RefractoryMS/cfg.StepSizeMS) + 2
	for i := 0; i < steps; i++ {
		n.step()
	}
	if neuron.State == StateRefractory {
		t.Fatalf("neuron still refractory after %d steps", steps)
	}
}
