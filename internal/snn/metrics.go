package snn

import "time"

// Metrics accumulates per-network processing statistics. The value is owned
// by its Network; callers get copies and may Reset through the network.
type Metrics struct {
	TotalSpikes    uint64
	ProcessCalls   uint64
	AvgLatency     time.Duration
	SpikeRate      float64
	LastEnergy     float64
	LastEfficiency float64
}

func (m *Metrics) Reset() {
	*m = Metrics{}
}

func (m *Metrics) observe(spikes uint64, latency time.Duration, energy, efficiency float64) {
	m.ProcessCalls++
	m.TotalSpikes += spikes
	if m.ProcessCalls == 1 {
		m.AvgLatency = latency
	} else {
		n := int64(m.ProcessCalls)
		m.AvgLatency = time.Duration((int64(m.AvgLatency)*(n-1) + int64(latency)) / n)
	}
	if latency > 0 {
		m.SpikeRate = float64(spikes) / latency.Seconds()
	}
	m.LastEnergy = energy
	m.LastEfficiency = efficiency
}
