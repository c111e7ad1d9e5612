package snn

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks a network configuration the simulator rejects.
	ErrConfiguration = errors.New("invalid network configuration")

	// ErrNotInitialized is returned by Process when no layers exist, either
	// because New was never called or because initialization failed.
	ErrNotInitialized = errors.New("no layers initialized")
)

// Config describes the spiking network to build. Zero values for the
// secondary parameters are filled from defaults; NumLayers and
// NeuronsPerLayer are never defaulted so that a zero-layer configuration
// fails validation instead of being silently repaired.
type Config struct {
	NumLayers       int
	NeuronsPerLayer int
	SpikeThreshold  float64
	MembraneTau     float64 // ms
	SynapticDelayMS float64
	LearningRate    float64
	Steps           int
	StepSizeMS      float64
	RefractoryMS    float64
	LTPRate         float64
	LTDRate         float64
	STDPWindowMS    float64
	Power           PowerModel
}

func DefaultConfig() Config {
	return Config{
		NumLayers:       4,
		NeuronsPerLayer: 256,
		SpikeThreshold:  1.0,
		MembraneTau:     20.0,
		SynapticDelayMS: 0.1,
		LearningRate:    0.01,
		Steps:           100,
		StepSizeMS:      0.1,
		RefractoryMS:    2.0,
		LTPRate:         0.01,
		LTDRate:         0.005,
		STDPWindowMS:    20.0,
		Power:           LinearPowerModel{BaselinePJ: 1.0, PerSpikePJ: 0.1},
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.SpikeThreshold == 0 {
		c.SpikeThreshold = def.SpikeThreshold
	}
	if c.MembraneTau <= 0 {
		c.MembraneTau = def.MembraneTau
	}
	if c.SynapticDelayMS <= 0 {
		c.SynapticDelayMS = def.SynapticDelayMS
	}
	if c.LearningRate == 0 {
		c.LearningRate = def.LearningRate
	}
	if c.Steps <= 0 {
		c.Steps = def.Steps
	}
	if c.StepSizeMS <= 0 {
		c.StepSizeMS = def.StepSizeMS
	}
	if c.RefractoryMS <= 0 {
		c.RefractoryMS = def.RefractoryMS
	}
	// The plasticity rates derive from the learning rate unless set
	// explicitly: potentiation at the full rate, depression at half.
	if c.LTPRate == 0 {
		c.LTPRate = c.LearningRate
	}
	if c.LTDRate == 0 {
		c.LTDRate = c.LearningRate / 2
	}
	if c.STDPWindowMS <= 0 {
		c.STDPWindowMS = def.STDPWindowMS
	}
	if c.Power == nil {
		c.Power = def.Power
	}
	return c
}

func (c Config) validate() error {
	if c.NumLayers == 0 {
		return fmt.Errorf("%w: layer count must be > 0", ErrConfiguration)
	}
	if c.NumLayers < 0 {
		return fmt.Errorf("%w: layer count must be > 0, got %d", ErrConfiguration, c.NumLayers)
	}
	if c.NeuronsPerLayer <= 0 {
		return fmt.Errorf("%w: neurons per layer must be > 0, got %d", ErrConfiguration, c.NeuronsPerLayer)
	}
	if c.SpikeThreshold <= 0 {
		return fmt.Errorf("%w: spike threshold must be > 0", ErrConfiguration)
	}
	return nil
}
