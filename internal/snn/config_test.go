package snn

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewRejectsZeroLayers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumLayers = 0

	_, err := New(cfg, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestNewRejectsNonPositiveNeurons(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NeuronsPerLayer = -3

	_, err := New(cfg, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestWithDefaultsFillsSecondaryParameters(t *testing.T) {
	cfg := Config{NumLayers: 2, NeuronsPerLayer: 4}
	filled := cfg.withDefaults()

	if filled.SpikeThreshold != 1.0 {
		t.Fatalf("threshold = %v, want 1.0", filled.SpikeThreshold)
	}
	if filled.Steps != 100 || filled.StepSizeMS != 0.1 {
		t.Fatalf("steps = %d × %v ms, want 100 × 0.1", filled.Steps, filled.StepSizeMS)
	}
	if filled.LTPRate != filled.LearningRate {
		t.Fatalf("LTP rate %v should derive from learning rate %v", filled.LTPRate, filled.LearningRate)
	}
	if filled.LTDRate != filled.LearningRate/2 {
		t.Fatalf("LTD rate %v should be half the learning rate", filled.LTDRate)
	}
	if filled.Power == nil {
		t.Fatal("power model not defaulted")
	}
	// Shape parameters are never repaired silently.
	if filled.NumLayers != 2 || filled.NeuronsPerLayer != 4 {
		t.Fatalf("shape changed: %d × %d", filled.NumLayers, filled.NeuronsPerLayer)
	}
}
