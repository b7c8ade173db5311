// Package physics provides the chaotic systems the attractor lab can
// integrate.
//
// Each system implements [dynamo.System], defining the differential
// equations governing its evolution:
//
//   - [Lorenz]: the butterfly attractor, sigma/rho/beta
//   - [Rossler]: a second 3D chaotic flow behind the same interface
//
// Both also implement [dynamo.Configurable] for runtime parameter
// adjustment. Constructors validate parameters and reject non-finite
// values, so a system that exists is always safe to integrate.
package physics
