// Package ensemble computes sets of trajectories from nearly identical
// initial conditions, the classic demonstration of sensitive dependence.
//
// Members share the system, the integrator configuration, and the
// sampling cadence; they differ only in a tiny perturbation of one
// coordinate of the initial state. Each member is integrated in its own
// goroutine; there is no shared mutable state between them.
package ensemble

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/attractor/internal/dynamo"
	"github.com/san-kum/attractor/internal/sim"
)

type Spec struct {
	Base         dynamo.State // shared starting point
	Count        int          // number of members
	Epsilon      float64      // perturbation magnitude per member
	PerturbIndex int          // coordinate receiving k*Epsilon
}

// DefaultSpec perturbs the z-coordinate of (10, 10, 10) by 1e-5 across 5
// members.
func DefaultSpec() Spec {
	return Spec{
		Base:         dynamo.State{10, 10, 10},
		Count:        5,
		Epsilon:      1e-5,
		PerturbIndex: 2,
	}
}

func (s Spec) validate() error {
	if s.Count < 1 {
		return fmt.Errorf("ensemble count must be at least 1, got %d", s.Count)
	}
	if s.PerturbIndex < 0 || s.PerturbIndex >= len(s.Base) {
		return fmt.Errorf("perturb index %d out of range for base state of dimension %d",
			s.PerturbIndex, len(s.Base))
	}
	if math.IsNaN(s.Epsilon) || math.IsInf(s.Epsilon, 0) {
		return fmt.Errorf("epsilon %v: %w", s.Epsilon, dynamo.ErrParameterBounds)
	}
	if !s.Base.IsValid() {
		return fmt.Errorf("base state: %w", dynamo.ErrInvalidState)
	}
	return nil
}

// InitialStates returns the member starting points: base with k*Epsilon
// added to the perturbed coordinate for k = 0 .. Count-1.
func (s Spec) InitialStates() []dynamo.State {
	states := make([]dynamo.State, s.Count)
	for k := range states {
		x := s.Base.Clone()
		x[s.PerturbIndex] += float64(k) * s.Epsilon
		states[k] = x
	}
	return states
}

// Run integrates every member and returns their trajectories in member
// order. Members run concurrently; each gets its own integrator from
// newInteg since integrators may carry scratch state. The first member
// error aborts the whole run.
func Run(ctx context.Context, dyn dynamo.System, newInteg func() dynamo.Integrator, spec Spec, cfg sim.Config) ([]*sim.Trajectory, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	states := spec.InitialStates()
	trajs := make([]*sim.Trajectory, len(states))
	errs := make([]error, len(states))

	var wg sync.WaitGroup
	for k, x0 := range states {
		wg.Add(1)
		go func(k int, x0 dynamo.State) {
			defer wg.Done()
			solver := sim.New(dyn, newInteg())
			trajs[k], errs[k] = solver.Solve(ctx, x0, cfg)
		}(k, x0)
	}
	wg.Wait()

	for k, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("ensemble member %d: %w", k, err)
		}
	}
	return trajs, nil
}
