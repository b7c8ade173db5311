package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/attractor/internal/dynamo"
)

type Rossler struct{ a, b, c float64 }

func NewRossler(a, b, c float64) (*Rossler, error) {
	for name, v := range map[string]float64{"a": a, "b": b, "c": c} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("rossler %s=%v: %w", name, v, dynamo.ErrParameterBounds)
		}
	}
	return &Rossler{a, b, c}, nil
}

// NewRosslerCanonical returns the a=0.2, b=0.2, c=5.7 chaotic regime.
func NewRosslerCanonical() *Rossler {
	return &Rossler{0.2, 0.2, 5.7}
}

func (r *Rossler) Dim() int { return 3 }

// Derive calculates the Rossler derivatives.
func (r *Rossler) Derive(s dynamo.State, _ float64) dynamo.State {
	return dynamo.State{-s[1] - s[2], s[0] + r.a*s[1], r.b + s[2]*(s[0]-r.c)}
}

func (r *Rossler) DefaultState() dynamo.State { return dynamo.State{1.0, 1.0, 1.0} }

func (r *Rossler) GetParams() map[string]float64 {
	return map[string]float64{"a": r.a, "b": r.b, "c": r.c}
}

func (r *Rossler) SetParam(n string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("rossler %s=%v: %w", n, v, dynamo.ErrParameterBounds)
	}
	switch n {
	case "a":
		r.a = v
	case "b":
		r.b = v
	case "c":
		r.c = v
	default:
		return fmt.Errorf("rossler %q: %w", n, dynamo.ErrUnknownParameter)
	}
	return nil
}
