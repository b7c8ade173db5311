// Package integrators provides numerical ODE integration methods.
//
//   - [RK45]: embedded Dormand-Prince 5(4) pair with local error control,
//     the default for trajectory generation
//   - [RK4]: classical fixed-step Runge-Kutta, used for comparisons
//   - [Euler]: first-order reference method
//
// RK45 reports step acceptance explicitly; the solve loop in package sim
// retries rejected steps with the suggested smaller size, keeping the
// internal step decoupled from the output sampling cadence.
package integrators
