// Package dynamo provides core primitives for autonomous ODE systems.
//
// The package defines the fundamental interfaces and types shared by the
// rest of the repository:
//
//   - [State]: vector representing a point in phase space
//   - [System]: interface for autonomous ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [AdaptiveIntegrator]: embedded method with local error control
//   - [Metric]: streaming observation of a trajectory as it is computed
//
// # Example
//
//	sys, _ := physics.NewLorenz(10, 28, 8.0/3.0)
//	solver := sim.New(sys, integrators.NewRK45())
//	traj, err := solver.Solve(ctx, dynamo.State{10, 10, 10}, cfg)
//
// # Thread Safety
//
// States and systems are immutable after construction and safe for
// concurrent use. Integrators that carry scratch buffers are not; give
// each goroutine its own.
package dynamo
