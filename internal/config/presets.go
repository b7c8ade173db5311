package config

import (
	"fmt"
	"sort"
)

// Preset is a named parameter regime. For the rossler system the three
// parameter slots hold a, b, c in place of sigma, rho, beta.
type Preset struct {
	Name        string
	Description string
	Apply       func(*Config)
}

var presets = map[string]Preset{
	"canonical": {
		Name:        "canonical",
		Description: "classic chaotic butterfly (sigma=10, rho=28, beta=8/3)",
		Apply: func(c *Config) {
			c.System = "lorenz"
			c.Sigma, c.Rho, c.Beta = 10.0, 28.0, 8.0/3.0
		},
	},
	"gentle": {
		Name:        "gentle",
		Description: "pre-chaotic regime, trajectories spiral into a fixed point (rho=14)",
		Apply: func(c *Config) {
			c.System = "lorenz"
			c.Sigma, c.Rho, c.Beta = 10.0, 14.0, 8.0/3.0
		},
	},
	"periodic": {
		Name:        "periodic",
		Description: "periodic window above the chaotic band (rho=99.65)",
		Apply: func(c *Config) {
			c.System = "lorenz"
			c.Sigma, c.Rho, c.Beta = 10.0, 99.65, 8.0/3.0
			c.Duration = 30.0
		},
	},
	"rossler": {
		Name:        "rossler",
		Description: "Rossler attractor, canonical a=0.2, b=0.2, c=5.7",
		Apply: func(c *Config) {
			c.System = "rossler"
			c.Sigma, c.Rho, c.Beta = 0.2, 0.2, 5.7
			c.Duration = 100.0
			c.Ensemble.X, c.Ensemble.Y, c.Ensemble.Z = 1.0, 1.0, 1.0
		},
	},
}

func GetPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q (try one of %v)", name, PresetNames())
	}
	return p, nil
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListPresets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, name := range PresetNames() {
		out = append(out, presets[name])
	}
	return out
}
