package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileConfigMissingPath(t *testing.T) {
	cfg, err := LoadFileConfig("")
	if err != nil {
		t.Fatalf("load empty path: %v", err)
	}
	if cfg.Store != "" || cfg.Network != nil {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoadFileConfigParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
store: sqlite
db_path: /tmp/neuromorph.db
seed: 7
network:
  layers: 3
  neurons_per_layer: 32
hardware:
  cores: 8
  memory_mb: 2048
workloads:
  - consciousness computation
energy_budget: 0.5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store != "sqlite" || cfg.Seed != 7 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Network == nil || cfg.Network.Layers != 3 || cfg.Network.NeuronsPerLayer != 32 {
		t.Fatalf("unexpected network config: %+v", cfg.Network)
	}
	if cfg.Hardware == nil || cfg.Hardware.Cores != 8 {
		t.Fatalf("unexpected hardware config: %+v", cfg.Hardware)
	}
	if len(cfg.Workloads) != 1 || cfg.EnergyBudget != 0.5 {
		t.Fatalf("unexpected request config: %+v", cfg)
	}
}

func TestLoadFileConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("store: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFileConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestClientOptionsMergesFlagsAndFile(t *testing.T) {
	opts := &RootOptions{Store: "memory", Seed: 0}
	cfg := FileConfig{Store: "sqlite", DBPath: "file.db", Seed: 9}

	merged := clientOptions(opts, cfg)
	if merged.StoreKind != "sqlite" {
		t.Fatalf("store = %s, want file value", merged.StoreKind)
	}
	if merged.DBPath != "file.db" || merged.Seed != 9 {
		t.Fatalf("unexpected merge: %+v", merged)
	}
}

func TestClientOptionsFlagsWin(t *testing.T) {
	opts := &RootOptions{Store: "sqlite", DBPath: "flag.db", Seed: 3}
	cfg := FileConfig{Store: "memory", DBPath: "file.db", Seed: 9}

	merged := clientOptions(opts, cfg)
	if merged.StoreKind != "sqlite" || merged.DBPath != "flag.db" || merged.Seed != 3 {
		t.Fatalf("flags should win: %+v", merged)
	}
}

func TestGeneratePatternDeterministic(t *testing.T) {
	a := generatePattern(8, 1.5, 42)
	b := generatePattern(8, 1.5, 42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pattern[%d] differs: %v vs %v", i, a[i], b[i])
		}
		if a[i] < 0 || a[i] >= 1.5 {
			t.Fatalf("pattern[%d] = %v outside [0, 1.5)", i, a[i])
		}
	}
}
