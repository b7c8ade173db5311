// Package config holds the YAML-backed run configuration and named
// parameter presets.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt        = 0.01
	DefaultDuration  = 15.0
	DefaultTolerance = 1e-6
	DefaultCount     = 5
	DefaultEpsilon   = 1e-5
	DefaultFPS       = 30
)

type Config struct {
	System     string         `yaml:"system"`
	Integrator string         `yaml:"integrator"`
	Sigma      float64        `yaml:"sigma"`
	Rho        float64        `yaml:"rho"`
	Beta       float64        `yaml:"beta"`
	Dt         float64        `yaml:"dt"`
	Duration   float64        `yaml:"duration"`
	Tolerance  float64        `yaml:"tolerance"`
	Ensemble   EnsembleConfig `yaml:"ensemble"`
	Theme      string         `yaml:"theme"`
	FPS        int            `yaml:"fps"`
}

type EnsembleConfig struct {
	Count   int     `yaml:"count"`
	Epsilon float64 `yaml:"epsilon"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Z       float64 `yaml:"z"`
}

func Default() *Config {
	return &Config{
		System:     "lorenz",
		Integrator: "rk45",
		Sigma:      10.0,
		Rho:        28.0,
		Beta:       8.0 / 3.0,
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Tolerance:  DefaultTolerance,
		Ensemble: EnsembleConfig{
			Count:   DefaultCount,
			Epsilon: DefaultEpsilon,
			X:       10.0,
			Y:       10.0,
			Z:       10.0,
		},
		Theme: "classic",
		FPS:   DefaultFPS,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations that could only fail later inside the
// solver, so a bad value is reported before any integration happens.
func (c *Config) Validate() error {
	for name, v := range map[string]float64{
		"sigma": c.Sigma, "rho": c.Rho, "beta": c.Beta,
		"dt": c.Dt, "duration": c.Duration, "tolerance": c.Tolerance,
		"ensemble.epsilon": c.Ensemble.Epsilon,
		"ensemble.x":       c.Ensemble.X,
		"ensemble.y":       c.Ensemble.Y,
		"ensemble.z":       c.Ensemble.Z,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("config %s: non-finite value %v", name, v)
		}
	}
	if c.Dt <= 0 {
		return fmt.Errorf("config dt: must be positive, got %g", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("config duration: must be positive, got %g", c.Duration)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("config tolerance: must be positive, got %g", c.Tolerance)
	}
	if c.Ensemble.Count < 1 {
		return fmt.Errorf("config ensemble.count: must be at least 1, got %d", c.Ensemble.Count)
	}
	if c.FPS < 1 {
		return fmt.Errorf("config fps: must be at least 1, got %d", c.FPS)
	}
	return nil
}

// Params returns the system parameters keyed the way the selected system
// names them.
func (c *Config) Params() map[string]float64 {
	if c.System == "rossler" {
		return map[string]float64{"a": c.Sigma, "b": c.Rho, "c": c.Beta}
	}
	return map[string]float64{"sigma": c.Sigma, "rho": c.Rho, "beta": c.Beta}
}
