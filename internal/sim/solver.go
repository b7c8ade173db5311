// Package sim turns a system and an integrator into sampled trajectories.
//
// The solver advances the continuous solution with whatever internal step
// the integrator needs and evaluates it at the fixed output times
// 0, dt, 2dt, ..., < T by cubic Hermite interpolation between accepted
// steps. Failures (NaN states, step underflow) surface as errors; a
// trajectory that is returned is complete and finite.
package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/attractor/internal/dynamo"
)

const maxInternalSteps = 10_000_000

type Config struct {
	Dt        float64 // output sampling cadence
	Duration  float64 // time horizon T; samples cover [0, T)
	Tolerance float64 // local error tolerance for adaptive stepping
	MinStep   float64
	MaxStep   float64
	Validate  bool // check every accepted state for NaN/Inf
}

func DefaultConfig() Config {
	return Config{
		Dt:        0.01,
		Duration:  15.0,
		Tolerance: 1e-6,
		MinStep:   1e-10,
		MaxStep:   0.1,
		Validate:  true,
	}
}

// Trajectory is an immutable, time-ordered sequence of sampled states.
type Trajectory struct {
	Times  []float64
	States []dynamo.State
	Steps  int // accepted internal steps
}

func (tr *Trajectory) Len() int { return len(tr.States) }

type Solver struct {
	dyn     dynamo.System
	integ   dynamo.Integrator
	metrics []dynamo.Metric
}

func New(dyn dynamo.System, integ dynamo.Integrator) *Solver {
	return &Solver{dyn: dyn, integ: integ}
}

func (s *Solver) AddMetric(m dynamo.Metric) { s.metrics = append(s.metrics, m) }

// SampleCount returns the number of output samples for a horizon and
// cadence: the times 0, dt, ..., strictly below Duration.
func SampleCount(cfg Config) int {
	return int(math.Ceil(cfg.Duration/cfg.Dt - 1e-9))
}

// Solve integrates from x0 over [0, Duration) and returns the sampled
// trajectory. The result is a pure function of (x0, system, integrator,
// config); calling it twice with identical inputs yields identical
// output.
func (s *Solver) Solve(ctx context.Context, x0 dynamo.State, cfg Config) (*Trajectory, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if len(x0) != s.dyn.Dim() {
		return nil, fmt.Errorf("initial state has %d components, system wants %d: %w",
			len(x0), s.dyn.Dim(), dynamo.ErrDimensionMismatch)
	}
	if !x0.IsValid() {
		return nil, fmt.Errorf("initial state: %w", dynamo.ErrInvalidState)
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	n := SampleCount(cfg)
	tr := &Trajectory{
		Times:  make([]float64, n),
		States: make([]dynamo.State, n),
	}
	for i := range tr.Times {
		tr.Times[i] = float64(i) * cfg.Dt
	}

	tr.States[0] = x0.Clone()
	s.observe(x0, 0)

	if adaptive, ok := s.integ.(dynamo.AdaptiveIntegrator); ok {
		if err := s.solveAdaptive(ctx, adaptive, x0, cfg, tr); err != nil {
			return nil, err
		}
		return tr, nil
	}
	if err := s.solveFixed(ctx, x0, cfg, tr); err != nil {
		return nil, err
	}
	return tr, nil
}

// solveAdaptive runs the free-running adaptive loop, filling output
// samples from each accepted segment by cubic Hermite interpolation.
func (s *Solver) solveAdaptive(ctx context.Context, integ dynamo.AdaptiveIntegrator, x0 dynamo.State, cfg Config, tr *Trajectory) error {
	x := x0.Clone()
	f := s.dyn.Derive(x, 0)
	t := 0.0
	h := cfg.Dt
	idx := 1

	for idx < len(tr.States) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if tr.Steps >= maxInternalSteps {
			return &dynamo.SolveError{Step: tr.Steps, Time: t, Wrapped: dynamo.ErrStepTooSmall}
		}
		if h > cfg.MaxStep {
			h = cfg.MaxStep
		}

		next, hNext, accepted := integ.StepAdaptive(s.dyn, x, t, h, cfg.Tolerance)
		if !accepted {
			if hNext < cfg.MinStep {
				return &dynamo.SolveError{Step: tr.Steps, Time: t, Wrapped: dynamo.ErrStepTooSmall}
			}
			h = hNext
			continue
		}
		if cfg.Validate && !next.IsValid() {
			return &dynamo.SolveError{Step: tr.Steps, Time: t, Wrapped: dynamo.ErrInvalidState}
		}

		fNext := s.dyn.Derive(next, t+h)

		// Emit every sample the accepted segment covers.
		for idx < len(tr.States) && tr.Times[idx] <= t+h+1e-12 {
			xi := hermite(t, x, f, t+h, next, fNext, tr.Times[idx])
			tr.States[idx] = xi
			s.observe(xi, tr.Times[idx])
			idx++
		}

		x, f = next, fNext
		t += h
		h = hNext
		tr.Steps++
	}

	return nil
}

// solveFixed advances at exactly the sampling cadence; every step is an
// output sample.
func (s *Solver) solveFixed(ctx context.Context, x0 dynamo.State, cfg Config, tr *Trajectory) error {
	x := x0.Clone()

	for idx := 1; idx < len(tr.States); idx++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		t := tr.Times[idx-1]
		x = s.integ.Step(s.dyn, x, t, cfg.Dt)
		if cfg.Validate && !x.IsValid() {
			return &dynamo.SolveError{Step: idx, Time: t, Wrapped: dynamo.ErrInvalidState}
		}

		tr.States[idx] = x.Clone()
		s.observe(x, tr.Times[idx])
		tr.Steps++
	}

	return nil
}

func (s *Solver) observe(x dynamo.State, t float64) {
	for _, m := range s.metrics {
		m.Observe(x, t)
	}
}

// Metrics returns the current value of every attached metric.
func (s *Solver) Metrics() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	if cfg.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %f", cfg.Tolerance)
	}
	if cfg.MinStep <= 0 || cfg.MaxStep <= cfg.MinStep {
		return fmt.Errorf("need 0 < min step < max step, got [%g, %g]", cfg.MinStep, cfg.MaxStep)
	}
	return nil
}

// hermite evaluates the cubic Hermite interpolant through (t0, x0) and
// (t1, x1) with endpoint derivatives f0, f1 at ts in [t0, t1].
func hermite(t0 float64, x0, f0 dynamo.State, t1 float64, x1, f1 dynamo.State, ts float64) dynamo.State {
	h := t1 - t0
	u := (ts - t0) / h
	u2 := u * u
	u3 := u2 * u

	h00 := 2*u3 - 3*u2 + 1
	h10 := u3 - 2*u2 + u
	h01 := -2*u3 + 3*u2
	h11 := u3 - u2

	out := make(dynamo.State, len(x0))
	for i := range out {
		out[i] = h00*x0[i] + h10*h*f0[i] + h01*x1[i] + h11*h*f1[i]
	}
	return out
}
