package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"neuromorph/internal/model"
	"neuromorph/internal/snn"
	"neuromorph/pkg/neuromorph"
)

// FileConfig is the YAML surface mirrored onto the client options and
// request structs. All sections are optional.
type FileConfig struct {
	Store   string         `yaml:"store"`
	DBPath  string         `yaml:"db_path"`
	Seed    int64          `yaml:"seed"`
	Network *NetworkConfig `yaml:"network"`

	Hardware  *HardwareConfig `yaml:"hardware"`
	Workloads []string        `yaml:"workloads"`
	Policy    string          `yaml:"policy"`

	EnergyBudget float64 `yaml:"energy_budget"`
	MaxLatencyUS int64   `yaml:"max_latency_us"`
}

type NetworkConfig struct {
	Layers          int     `yaml:"layers"`
	NeuronsPerLayer int     `yaml:"neurons_per_layer"`
	SpikeThreshold  float64 `yaml:"spike_threshold"`
	MembraneTau     float64 `yaml:"membrane_tau"`
	LearningRate    float64 `yaml:"learning_rate"`
	Steps           int     `yaml:"steps"`
	StepSizeMS      float64 `yaml:"step_size_ms"`
}

type HardwareConfig struct {
	Cores             int     `yaml:"cores"`
	MemoryMB          int64   `yaml:"memory_mb"`
	NeuromorphicUnits int     `yaml:"neuromorphic_units"`
	EnergyBudget      float64 `yaml:"energy_budget"`
}

// LoadFileConfig reads the YAML config when a path is given; a missing path
// yields the zero config.
func LoadFileConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// clientOptions merges flags and file config into facade options. Flags win
// for store and db path when explicitly set; the file seed is used unless a
// flag seed is given.
func clientOptions(opts *RootOptions, cfg FileConfig) neuromorph.Options {
	out := neuromorph.Options{
		StoreKind: opts.Store,
		DBPath:    opts.DBPath,
		Seed:      opts.Seed,
	}
	if cfg.Store != "" && opts.Store == "memory" {
		out.StoreKind = cfg.Store
	}
	if cfg.DBPath != "" && opts.DBPath == "" {
		out.DBPath = cfg.DBPath
	}
	if cfg.Seed != 0 && opts.Seed == 0 {
		out.Seed = cfg.Seed
	}
	if cfg.Network != nil {
		net := snn.DefaultConfig()
		if cfg.Network.Layers > 0 {
			net.NumLayers = cfg.Network.Layers
		}
		if cfg.Network.NeuronsPerLayer > 0 {
			net.NeuronsPerLayer = cfg.Network.NeuronsPerLayer
		}
		if cfg.Network.SpikeThreshold > 0 {
			net.SpikeThreshold = cfg.Network.SpikeThreshold
		}
		if cfg.Network.MembraneTau > 0 {
			net.MembraneTau = cfg.Network.MembraneTau
		}
		if cfg.Network.LearningRate > 0 {
			net.LearningRate = cfg.Network.LearningRate
		}
		if cfg.Network.Steps > 0 {
			net.Steps = cfg.Network.Steps
		}
		if cfg.Network.StepSizeMS > 0 {
			net.StepSizeMS = cfg.Network.StepSizeMS
		}
		out.Network = &net
	}
	if cfg.Hardware != nil {
		out.Hardware = &model.HardwareConstraints{
			AvailableCores:    cfg.Hardware.Cores,
			MemoryLimitMB:     cfg.Hardware.MemoryMB,
			NeuromorphicUnits: cfg.Hardware.NeuromorphicUnits,
			EnergyBudget:      cfg.Hardware.EnergyBudget,
		}
	}
	return out
}
