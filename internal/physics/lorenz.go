package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/attractor/internal/dynamo"
)

// Canonical chaotic regime.
const (
	DefaultSigma = 10.0
	DefaultRho   = 28.0
	DefaultBeta  = 8.0 / 3.0
)

type Lorenz struct{ sigma, rho, beta float64 }

// NewLorenz validates the parameters and returns the system. Non-finite
// values are rejected so integration can never start from a poisoned
// parameter set.
func NewLorenz(sigma, rho, beta float64) (*Lorenz, error) {
	for name, v := range map[string]float64{"sigma": sigma, "rho": rho, "beta": beta} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("lorenz %s=%v: %w", name, v, dynamo.ErrParameterBounds)
		}
	}
	return &Lorenz{sigma, rho, beta}, nil
}

// NewLorenzCanonical returns the sigma=10, rho=28, beta=8/3 regime.
func NewLorenzCanonical() *Lorenz {
	return &Lorenz{DefaultSigma, DefaultRho, DefaultBeta}
}

func (l *Lorenz) Dim() int { return 3 }

// Derive calculates the Lorenz derivatives:
//
//	dx/dt = sigma(y - x)
//	dy/dt = x(rho - z) - y
//	dz/dt = xy - beta z
func (l *Lorenz) Derive(s dynamo.State, _ float64) dynamo.State {
	return dynamo.State{l.sigma * (s[1] - s[0]), s[0]*(l.rho-s[2]) - s[1], s[0]*s[1] - l.beta*s[2]}
}

func (l *Lorenz) DefaultState() dynamo.State { return dynamo.State{10.0, 10.0, 10.0} }

func (l *Lorenz) GetParams() map[string]float64 {
	return map[string]float64{"sigma": l.sigma, "rho": l.rho, "beta": l.beta}
}

func (l *Lorenz) SetParam(n string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("lorenz %s=%v: %w", n, v, dynamo.ErrParameterBounds)
	}
	switch n {
	case "sigma":
		l.sigma = v
	case "rho":
		l.rho = v
	case "beta":
		l.beta = v
	default:
		return fmt.Errorf("lorenz %q: %w", n, dynamo.ErrUnknownParameter)
	}
	return nil
}
