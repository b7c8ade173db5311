// Package viz renders precomputed trajectories in the terminal.
//
// The package deliberately knows nothing about integration: it consumes
// finished point sequences and draws them, so the numerics are testable
// without any rendering dependency and vice versa.
//
//   - [Canvas]: Braille-based pixel canvas with per-cell color
//   - [Camera]: spherical 3D camera with perspective projection
//   - [Curve]: one trajectory mapped into scene coordinates
//   - [Player]: Bubble Tea playback of the rotating scene
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart playback
//	T     - Cycle color themes
//	←/→   - Azimuth, ↑/↓ - Elevation
//	+/-   - Zoom
//	?     - Toggle help
package viz
