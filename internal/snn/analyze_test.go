package snn

import (
	"math"
	"testing"
)

func TestAnalyzeTrainEmpty(t *testing.T) {
	a := AnalyzeTrain(nil)
	if a.Variance != 0 || a.Entropy != 0 || len(a.Bursts) != 0 {
		t.Fatalf("expected zero analysis, got %+v", a)
	}
}

func TestAnalyzeTrainUniformHasZeroVariance(t *testing.T) {
	a := AnalyzeTrain([]float64{0.3, 0.3, 0.3, 0.3})
	if a.Variance != 0 {
		t.Fatalf("variance = %v, want 0", a.Variance)
	}
	// A single bin has zero entropy.
	if a.Entropy != 0 {
		t.Fatalf("entropy = %v, want 0", a.Entropy)
	}
}

func TestAnalyzeTrainTwoValueEntropy(t *testing.T) {
	a := AnalyzeTrain([]float64{0.0, 1.0, 0.0, 1.0})
	// Two equally likely bins give 1 bit, scaled by 10.
	if math.Abs(a.Entropy-0.1) > 1e-9 {
		t.Fatalf("entropy = %v, want 0.1", a.Entropy)
	}
}

func TestDetectBurstsSegmentsRuns(t *testing.T) {
	train := []float64{0.1, 0.8, 0.9, 0.2, 0.7, 0.6}
	a := AnalyzeTrain(train)

	if len(a.Bursts) != 2 {
		t.Fatalf("bursts = %d, want 2", len(a.Bursts))
	}
	first := a.Bursts[0]
	if first.Start != 1 || first.Duration != 2 {
		t.Fatalf("first burst = %+v, want start 1 duration 2", first)
	}
	if math.Abs(first.Intensity-0.85) > 1e-9 {
		t.Fatalf("first burst intensity = %v, want 0.85", first.Intensity)
	}
	// The trailing run closes at the end of the train.
	second := a.Bursts[1]
	if second.Start != 4 || second.Duration != 2 {
		t.Fatalf("second burst = %+v, want start 4 duration 2", second)
	}
}
