package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.System != "lorenz" {
		t.Errorf("default system = %q, want lorenz", cfg.System)
	}
	if cfg.Rho != 28.0 {
		t.Errorf("default rho = %g, want 28", cfg.Rho)
	}
	if cfg.Ensemble.Count != 5 {
		t.Errorf("default ensemble count = %d, want 5", cfg.Ensemble.Count)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"negative duration", func(c *Config) { c.Duration = -1 }},
		{"zero tolerance", func(c *Config) { c.Tolerance = 0 }},
		{"nan rho", func(c *Config) { c.Rho = math.NaN() }},
		{"inf epsilon", func(c *Config) { c.Ensemble.Epsilon = math.Inf(1) }},
		{"zero count", func(c *Config) { c.Ensemble.Count = 0 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "attractor.yaml")

	cfg := Default()
	cfg.Rho = 14.0
	cfg.Ensemble.Count = 3
	cfg.Theme = "ocean"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Rho != 14.0 {
		t.Errorf("rho = %g, want 14", got.Rho)
	}
	if got.Ensemble.Count != 3 {
		t.Errorf("ensemble count = %d, want 3", got.Ensemble.Count)
	}
	if got.Theme != "ocean" {
		t.Errorf("theme = %q, want ocean", got.Theme)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(path, []byte("rho: 20.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Rho != 20.0 {
		t.Errorf("rho = %g, want 20", cfg.Rho)
	}
	if cfg.Sigma != 10.0 {
		t.Errorf("sigma = %g, want default 10", cfg.Sigma)
	}
	if cfg.Dt != DefaultDt {
		t.Errorf("dt = %g, want default %g", cfg.Dt, DefaultDt)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("dt: -0.5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative dt")
	}
}

func TestPresets(t *testing.T) {
	for _, name := range PresetNames() {
		p, err := GetPreset(name)
		if err != nil {
			t.Fatalf("preset %q: %v", name, err)
		}
		cfg := Default()
		p.Apply(cfg)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q produces invalid config: %v", name, err)
		}
	}

	p, err := GetPreset("gentle")
	if err != nil {
		t.Fatal(err)
	}
	cfg := Default()
	p.Apply(cfg)
	if cfg.Rho != 14.0 {
		t.Errorf("gentle rho = %g, want 14", cfg.Rho)
	}

	if _, err := GetPreset("nope"); err == nil {
		t.Error("expected error for unknown preset")
	}

	if len(ListPresets()) != len(PresetNames()) {
		t.Error("ListPresets and PresetNames disagree on length")
	}
}
