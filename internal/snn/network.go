package snn

import (
	"math"
	"math/rand"
	"time"

	"neuromorph/internal/model"
)

const (
	weightMin       = -2.0
	weightMax       = 2.0
	historyCapacity = 10000

	// Integrating neurons whose potential decays below this settle back
	// to resting.
	quiescencePotential = 0.01

	// Amplitude of a spike generated inside the network. Injected spikes
	// keep the input sample's amplitude.
	spikeAmplitude = 1.0
)

// Network is a layered spiking neural network driven by a logical clock.
// It is single-writer: concurrent callers must serialize access themselves.
type Network struct {
	cfg      Config
	layers   []Layer
	synapses []Synapse
	outgoing map[NeuronRef][]int

	history *spikeHistory
	metrics Metrics

	nowMS          float64
	spikesThisCall uint64
}

// New builds L fully-connected adjacent layers with synaptic weights drawn
// uniformly from [-1, 1) using the injected random source. The source is
// consumed during construction only; a fixed seed yields an identical
// network and therefore identical simulation runs.
func New(cfg Config, rng *rand.Rand) (*Network, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}

	n := &Network{
		cfg:      cfg,
		layers:   make([]Layer, 0, cfg.NumLayers),
		outgoing: make(map[NeuronRef][]int),
		history:  newSpikeHistory(historyCapacity),
	}

	for layerID := 0; layerID < cfg.NumLayers; layerID++ {
		neurons := make([]Neuron, cfg.NeuronsPerLayer)
		for i := range neurons {
			neurons[i] = Neuron{
				Index:        i,
				Threshold:    cfg.SpikeThreshold,
				RefractoryMS: cfg.RefractoryMS,
				State:        StateResting,
			}
		}
		n.layers = append(n.layers, Layer{
			Index:   layerID,
			Role:    roleForLayer(layerID, cfg.NumLayers),
			Neurons: neurons,
		})
	}

	plasticity := Plasticity{
		LTPRate:  cfg.LTPRate,
		LTDRate:  cfg.LTDRate,
		WindowMS: cfg.STDPWindowMS,
	}
	for layerID := 0; layerID < cfg.NumLayers-1; layerID++ {
		for pre := 0; pre < cfg.NeuronsPerLayer; pre++ {
			for post := 0; post < cfg.NeuronsPerLayer; post++ {
				n.synapses = append(n.synapses, Synapse{
					Pre:        NeuronRef{Layer: layerID, Index: pre},
					Post:       NeuronRef{Layer: layerID + 1, Index: post},
					Weight:     rng.Float64()*2 - 1,
					DelayMS:    cfg.SynapticDelayMS,
					Plasticity: plasticity,
				})
			}
		}
	}
	for i, s := range n.synapses {
		n.outgoing[s.Pre] = append(n.outgoing[s.Pre], i)
	}

	return n, nil
}

func roleForLayer(layerID, numLayers int) LayerRole {
	switch {
	case layerID == 0:
		return RoleInput
	case layerID == numLayers-1:
		return RoleOutput
	default:
		return RoleHidden
	}
}

// Process injects a spike pattern, runs the configured number of discrete
// steps to completion, and reports the output layer activity together with
// energy, efficiency and latency metrics. The call is synchronous and does
// not suspend mid-simulation.
func (n *Network) Process(pattern []float64) (model.NeuromorphicResult, error) {
	if n == nil || len(n.layers) == 0 {
		return model.NeuromorphicResult{}, ErrNotInitialized
	}

	start := time.Now()
	n.spikesThisCall = 0

	n.inject(pattern)
	for step := 0; step < n.cfg.Steps; step++ {
		n.step()
	}
	output := n.extractOutput()

	// Efficiency is scored on simulated time so identical runs score
	// identically; the returned latency is the measured wall clock.
	simLatencyMS := float64(n.cfg.Steps) * n.cfg.StepSizeMS
	energy := n.cfg.Power.Estimate(n.spikesThisCall)
	efficiency := efficiencyScore(simLatencyMS, energy)

	latency := time.Since(start)
	if latency <= 0 {
		latency = time.Nanosecond
	}
	n.metrics.observe(n.spikesThisCall, latency, energy, efficiency)

	return model.NeuromorphicResult{
		OutputSpikes:    output,
		EfficiencyScore: efficiency,
		EnergyConsumed:  energy,
		Latency:         latency,
	}, nil
}

// inject drives the input layer from the pattern: samples above threshold
// force-fire their neuron, sub-threshold samples accumulate charge.
func (n *Network) inject(pattern []float64) {
	input := &n.layers[0]
	limit := len(pattern)
	if len(input.Neurons) < limit {
		limit = len(input.Neurons)
	}

	for i := 0; i < limit; i++ {
		sample := pattern[i]
		neuron := &input.Neurons[i]
		if sample > n.cfg.SpikeThreshold {
			neuron.Potential = sample
			neuron.State = StateSpiking
			neuron.LastSpikeMS = n.nowMS
			n.recordSpike(SpikeEvent{
				Source:    NeuronRef{Layer: 0, Index: i},
				TimeMS:    n.nowMS,
				Amplitude: sample,
			})
		} else {
			neuron.Potential += sample
			neuron.State = StateIntegrating
		}
	}
}

func (n *Network) step() {
	n.nowMS += n.cfg.StepSizeMS
	n.decay()
	fired := n.fire()
	n.propagate(fired)
	n.applySTDP()
	n.ageStates()
}

// decay applies exponential membrane leak to every non-refractory neuron.
func (n *Network) decay() {
	factor := math.Exp(-n.cfg.StepSizeMS / n.cfg.MembraneTau)
	for l := range n.layers {
		neurons := n.layers[l].Neurons
		for i := range neurons {
			if neurons[i].State != StateRefractory {
				neurons[i].Potential *= factor
			}
		}
	}
}

// fire transitions integrating neurons that crossed threshold into the
// spiking state, resetting their potential and recording the event.
func (n *Network) fire() []SpikeEvent {
	var fired []SpikeEvent
	for l := range n.layers {
		neurons := n.layers[l].Neurons
		for i := range neurons {
			neuron := &neurons[i]
			if neuron.State != StateIntegrating || neuron.Potential < neuron.Threshold {
				continue
			}
			neuron.State = StateSpiking
			neuron.Potential = 0
			neuron.LastSpikeMS = n.nowMS
			ev := SpikeEvent{
				Source:    NeuronRef{Layer: l, Index: i},
				TimeMS:    n.nowMS,
				Amplitude: spikeAmplitude,
			}
			n.recordSpike(ev)
			fired = append(fired, ev)
		}
	}
	return fired
}

// propagate transmits each new spike across its outgoing synapses, adding
// weight-scaled charge to the post-synaptic neurons.
func (n *Network) propagate(fired []SpikeEvent) {
	for _, ev := range fired {
		for _, idx := range n.outgoing[ev.Source] {
			s := &n.synapses[idx]
			post := &n.layers[s.Post.Layer].Neurons[s.Post.Index]
			post.Potential += s.Weight * ev.Amplitude
			if post.State == StateResting {
				post.State = StateIntegrating
			}
		}
	}
}

// ageStates advances the neuron lifecycle: spiking enters refractory,
// refractory releases once its period elapses, and integrating neurons
// settle back to resting when their charge has decayed away.
func (n *Network) ageStates() {
	for l := range n.layers {
		neurons := n.layers[l].Neurons
		for i := range neurons {
			neuron := &neurons[i]
			switch neuron.State {
			case StateSpiking:
				neuron.State = StateRefractory
			case StateRefractory:
				if n.nowMS-neuron.LastSpikeMS > neuron.RefractoryMS {
					neuron.State = StateResting
				}
			case StateIntegrating:
				if math.Abs(neuron.Potential) < quiescencePotential {
					neuron.State = StateResting
				}
			}
		}
	}
}

// extractOutput reads the output layer as a spike vector: spiking neurons
// report 1.0, integrating neurons their non-negative potential, all others
// zero.
func (n *Network) extractOutput() []float64 {
	output := n.layers[len(n.layers)-1]
	out := make([]float64, len(output.Neurons))
	for i, neuron := range output.Neurons {
		switch neuron.State {
		case StateSpiking:
			out[i] = 1.0
		case StateIntegrating:
			out[i] = math.Max(neuron.Potential, 0)
		}
	}
	return out
}

func (n *Network) recordSpike(ev SpikeEvent) {
	n.history.Append(ev)
	n.spikesThisCall++
}

func efficiencyScore(latencyMS, energy float64) float64 {
	latencyScore := 1.0 / (1.0 + latencyMS/100.0)
	energyScore := 1.0 / (1.0 + energy/1000.0)
	return (latencyScore + energyScore) / 2.0
}

// OutputSize reports the neuron count of the output layer.
func (n *Network) OutputSize() int {
	if n == nil || len(n.layers) == 0 {
		return 0
	}
	return len(n.layers[len(n.layers)-1].Neurons)
}

// Stats returns the read-only view consumed by the energy optimizer.
func (n *Network) Stats() model.NetworkStats {
	if n == nil {
		return model.NetworkStats{}
	}
	neurons := 0
	for _, layer := range n.layers {
		neurons += len(layer.Neurons)
	}
	return model.NetworkStats{
		Neurons:     neurons,
		Synapses:    len(n.synapses),
		TotalSpikes: n.metrics.TotalSpikes,
	}
}

// Metrics returns a copy of the accumulated processing metrics.
func (n *Network) Metrics() Metrics {
	return n.metrics
}

func (n *Network) ResetMetrics() {
	n.metrics.Reset()
}

// Weights returns a copy of all synaptic weights, in synapse order.
func (n *Network) Weights() []float64 {
	out := make([]float64, len(n.synapses))
	for i, s := range n.synapses {
		out[i] = s.Weight
	}
	return out
}

// HistoryLen reports the number of buffered spike events.
func (n *Network) HistoryLen() int {
	return n.history.Len()
}
