package energy

import (
	"errors"

	"neuromorph/internal/model"
)

// ErrNoMonitor is returned when a measurement is requested with no energy
// monitor configured.
var ErrNoMonitor = errors.New("no energy monitor configured")

// Monitor measures the power draw of a network from its summary stats.
type Monitor interface {
	Name() string
	Measure(stats model.NetworkStats) (model.EnergyMeasurement, error)
}

// RealTimeMonitor charges 1mW per neuron and splits the draw into the
// fixed neuron/synapse/memory breakdown measured on the hardware.
type RealTimeMonitor struct{}

func (RealTimeMonitor) Name() string { return "realtime" }

func (RealTimeMonitor) Measure(stats model.NetworkStats) (model.EnergyMeasurement, error) {
	total := float64(stats.Neurons) * 0.001
	return model.EnergyMeasurement{
		TotalPower: total,
		Breakdown: map[string]float64{
			"neurons":  total * 0.7,
			"synapses": total * 0.2,
			"memory":   total * 0.1,
		},
		Efficiency: model.EfficiencyMetrics{
			OperationsPerJoule:     1e6,
			SpikesPerJoule:         1e7,
			SynapticOpsPerJoule:    1e8,
			MemoryAccessesPerJoule: 1e6,
		},
		Opportunities: []string{"spike_suppression", "voltage_scaling"},
	}, nil
}

// PredictiveMonitor models the next-generation process node: half the
// per-neuron draw, double the efficiency figures.
type PredictiveMonitor struct{}

func (PredictiveMonitor) Name() string { return "predictive" }

func (PredictiveMonitor) Measure(stats model.NetworkStats) (model.EnergyMeasurement, error) {
	total := float64(stats.Neurons) * 0.0005
	return model.EnergyMeasurement{
		TotalPower: total,
		Breakdown: map[string]float64{
			"neurons":  total * 0.7,
			"synapses": total * 0.2,
			"memory":   total * 0.1,
		},
		Efficiency: model.EfficiencyMetrics{
			OperationsPerJoule:     2e6,
			SpikesPerJoule:         2e7,
			SynapticOpsPerJoule:    2e8,
			MemoryAccessesPerJoule: 2e6,
		},
		Opportunities: []string{"spike_suppression", "voltage_scaling"},
	}, nil
}
