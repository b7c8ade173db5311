package analysis

import "github.com/san-kum/attractor/internal/sim"

// Separation returns the pairwise Euclidean distance between two
// trajectories at each shared sample. Trajectories of different lengths
// are compared over the shorter one.
func Separation(a, b *sim.Trajectory) []float64 {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	sep := make([]float64, n)
	for i := 0; i < n; i++ {
		sep[i] = a.States[i].Dist(b.States[i])
	}
	return sep
}

// TimeToThreshold returns the first sample time at which the separation
// exceeds the threshold, and whether it ever does.
func TimeToThreshold(sep, times []float64, threshold float64) (float64, bool) {
	n := len(sep)
	if len(times) < n {
		n = len(times)
	}
	for i := 0; i < n; i++ {
		if sep[i] > threshold {
			return times[i], true
		}
	}
	return 0, false
}

// MaxSeparation returns the largest pairwise distance across all member
// pairs of an ensemble at each sample.
func MaxSeparation(trajs []*sim.Trajectory) []float64 {
	if len(trajs) < 2 {
		return nil
	}
	n := trajs[0].Len()
	for _, tr := range trajs {
		if tr.Len() < n {
			n = tr.Len()
		}
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		for a := 0; a < len(trajs); a++ {
			for b := a + 1; b < len(trajs); b++ {
				if d := trajs[a].States[i].Dist(trajs[b].States[i]); d > out[i] {
					out[i] = d
				}
			}
		}
	}
	return out
}
