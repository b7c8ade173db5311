// Package metrics provides streaming observations over trajectories.
package metrics

import (
	"math"

	"github.com/san-kum/attractor/internal/dynamo"
)

// Bounds tracks the largest absolute coordinate seen over a trajectory.
// For the canonical Lorenz regime it should stay well below 60.
type Bounds struct {
	max float64
}

func NewBounds() *Bounds { return &Bounds{} }

func (b *Bounds) Name() string { return "max_abs_coord" }

func (b *Bounds) Observe(x dynamo.State, t float64) {
	for _, v := range x {
		if a := math.Abs(v); a > b.max {
			b.max = a
		}
	}
}

func (b *Bounds) Value() float64 { return b.max }

func (b *Bounds) Reset() { b.max = 0 }

// Excursion tracks the greatest distance from the first observed state,
// a cheap proxy for how much of phase space the trajectory visits.
type Excursion struct {
	origin dynamo.State
	max    float64
}

func NewExcursion() *Excursion { return &Excursion{} }

func (e *Excursion) Name() string { return "max_excursion" }

func (e *Excursion) Observe(x dynamo.State, t float64) {
	if e.origin == nil {
		e.origin = x.Clone()
		return
	}
	if d := x.Dist(e.origin); d > e.max {
		e.max = d
	}
}

func (e *Excursion) Value() float64 { return e.max }

func (e *Excursion) Reset() {
	e.origin = nil
	e.max = 0
}
