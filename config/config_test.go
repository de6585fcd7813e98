package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		t.Errorf("default world dimensions = %vx%v", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Population.Initial <= 0 {
		t.Errorf("default initial population = %d", cfg.Population.Initial)
	}
	if cfg.Genetics.BaseMutationRate != 1.0 {
		t.Errorf("default base mutation rate = %v, want 1.0", cfg.Genetics.BaseMutationRate)
	}
	if cfg.Reproduction.MaturityAge != 100 {
		t.Errorf("default maturity age = %v, want 100", cfg.Reproduction.MaturityAge)
	}
	if cfg.Telemetry.StatsWindow <= 0 {
		t.Errorf("default stats window = %d", cfg.Telemetry.StatsWindow)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("reproduction:\n  maturity_age: 42\npopulation:\n  initial: 7\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Reproduction.MaturityAge != 42 {
		t.Errorf("maturity age = %v, want overridden 42", cfg.Reproduction.MaturityAge)
	}
	if cfg.Population.Initial != 7 {
		t.Errorf("initial population = %d, want overridden 7", cfg.Population.Initial)
	}
	// Untouched sections keep their defaults.
	if cfg.Reproduction.GestationTicks != 90 {
		t.Errorf("gestation ticks = %d, want default 90", cfg.Reproduction.GestationTicks)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("reproduction:\n  energy_threshold: 3.0\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("invalid config should fail validation")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file should error")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config failed: %v", err)
	}
	if back.Reproduction != cfg.Reproduction {
		t.Errorf("reproduction section changed across roundtrip:\n%+v\n%+v", back.Reproduction, cfg.Reproduction)
	}
	if back.Genetics != cfg.Genetics {
		t.Errorf("genetics section changed across roundtrip:\n%+v\n%+v", back.Genetics, cfg.Genetics)
	}
}
