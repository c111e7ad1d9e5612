package snn

// NeuronState is the membrane lifecycle of a single neuron.
type NeuronState uint8

const (
	StateResting NeuronState = iota
	StateIntegrating
	StateSpiking
	StateRefractory
)

func (s NeuronState) String() string {
	switch s {
	case StateResting:
		return "resting"
	case StateIntegrating:
		return "integrating"
	case StateSpiking:
		return "spiking"
	case StateRefractory:
		return "refractory"
	default:
		return "unknown"
	}
}

// LayerRole tags a layer's function in the network.
type LayerRole string

const (
	RoleInput     LayerRole = "input"
	RoleHidden    LayerRole = "hidden"
	RoleOutput    LayerRole = "output"
	RoleMemory    LayerRole = "memory"
	RoleAttention LayerRole = "attention"
)

// NeuronRef addresses a neuron by layer and position.
type NeuronRef struct {
	Layer int
	Index int
}

// Neuron holds the mutable per-step simulation state. Neurons are owned by
// their Network and are never handed out by reference.
type Neuron struct {
	Index        int
	Potential    float64
	Threshold    float64
	LastSpikeMS  float64
	RefractoryMS float64
	State        NeuronState
}

// Layer is an ordered collection of neurons with a role tag.
type Layer struct {
	Index   int
	Role    LayerRole
	Neurons []Neuron
}

// Plasticity carries the STDP parameters of one synapse.
type Plasticity struct {
	LTPRate  float64
	LTDRate  float64
	WindowMS float64
}

// Synapse is a directed, weighted edge between two neurons.
type Synapse struct {
	Pre        NeuronRef
	Post       NeuronRef
	Weight     float64
	DelayMS    float64
	Plasticity Plasticity
}

// SpikeEvent records one firing, timestamped on the simulation clock.
type SpikeEvent struct {
	Source    NeuronRef
	TimeMS    float64
	Amplitude float64
}
