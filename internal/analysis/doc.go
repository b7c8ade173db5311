// Package analysis provides chaos characterization tools.
//
//   - [LyapunovExponent]: largest Lyapunov exponent via the Benettin
//     two-trajectory method with per-step renormalization
//   - [Separation]: pairwise distance series between two trajectories
//   - [TimeToThreshold]: when an ensemble pair first diverges past a bound
//
// A positive largest Lyapunov exponent indicates chaotic dynamics; for
// the canonical Lorenz regime it is approximately 0.9.
package analysis
