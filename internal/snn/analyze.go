package snn

import "math"

// burstThreshold separates active samples from background when segmenting
// a spike train into bursts.
const burstThreshold = 0.5

// Burst is a contiguous run of above-threshold samples in a spike train.
type Burst struct {
	Start     int
	Duration  int
	Intensity float64
}

// TrainAnalysis summarizes an output spike train.
type TrainAnalysis struct {
	Variance float64
	Entropy  float64
	Bursts   []Burst
}

// AnalyzeTrain computes variance, a normalized Shannon entropy, and burst
// segmentation for an output spike vector. An empty train analyzes to the
// zero value.
func AnalyzeTrain(train []float64) TrainAnalysis {
	if len(train) == 0 {
		return TrainAnalysis{}
	}
	return TrainAnalysis{
		Variance: trainVariance(train),
		Entropy:  trainEntropy(train),
		Bursts:   detectBursts(train),
	}
}

func trainVariance(train []float64) float64 {
	mean := 0.0
	for _, v := range train {
		mean += v
	}
	mean /= float64(len(train))

	variance := 0.0
	for _, v := range train {
		d := v - mean
		variance += d * d
	}
	return variance / float64(len(train))
}

// trainEntropy bins sample values to one decimal place and reports the
// Shannon entropy of the bin distribution, scaled to roughly [0, 1].
func trainEntropy(train []float64) float64 {
	bins := make(map[int]int)
	for _, v := range train {
		bins[int(math.Round(v*10))]++
	}

	total := float64(len(train))
	entropy := 0.0
	for _, count := range bins {
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}
	return entropy / 10.0
}

func detectBursts(train []float64) []Burst {
	var bursts []Burst
	start := -1
	sum := 0.0
	for i, v := range train {
		if v > burstThreshold {
			if start < 0 {
				start = i
			}
			sum += v
			continue
		}
		if start >= 0 {
			bursts = append(bursts, Burst{
				Start:     start,
				Duration:  i - start,
				Intensity: sum / float64(i-start),
			})
			start = -1
			sum = 0
		}
	}
	if start >= 0 {
		bursts = append(bursts, Burst{
			Start:     start,
			Duration:  len(train) - start,
			Intensity: sum / float64(len(train)-start),
		})
	}
	return bursts
}
