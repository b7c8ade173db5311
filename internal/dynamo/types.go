package dynamo

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

// Dist is the Euclidean distance to another state of the same dimension.
func (s State) Dist(other State) float64 {
	sum := 0.0
	for i := range s {
		d := s[i] - other[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// System is an autonomous ODE: dX/dt = f(X, t). Derive must be pure and
// must not retain or mutate x.
type System interface {
	Derive(x State, t float64) State
	Dim() int
}

type Integrator interface {
	Step(dyn System, x State, t, dt float64) State
}

// AdaptiveIntegrator attempts a step of size dt against a local error
// tolerance. When the error estimate exceeds tol the step is rejected and
// the caller should retry with the returned dtNext.
type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(dyn System, x State, t, dt, tol float64) (next State, dtNext float64, accepted bool)
}

type Metric interface {
	Name() string
	Observe(x State, t float64)
	Value() float64
	Reset()
}

// Configurable systems expose named parameters for runtime tuning.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
