package analysis

import (
	"math"

	"github.com/san-kum/attractor/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent with the
// Benettin method: advance a reference and a perturbed trajectory
// together, accumulate the log growth of their separation, and
// renormalize the perturbed copy back to the initial distance after
// every step so the separation stays in the linear regime.
func LyapunovExponent(
	dyn dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	dt, duration float64,
	perturbation float64,
) float64 {
	if len(x0) == 0 || perturbation <= 0 {
		return 0
	}

	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += perturbation
	d0 := perturbation

	t := 0.0
	sumLog := 0.0

	for t < duration {
		x = integ.Step(dyn, x, t, dt)
		xp = integ.Step(dyn, xp, t, dt)
		t += dt

		sep := x.Dist(xp)
		if sep <= 0 || math.IsNaN(sep) || math.IsInf(sep, 0) {
			return 0
		}

		sumLog += math.Log(sep / d0)

		// Pull the perturbed copy back onto the d0 shell along the
		// current separation direction.
		scale := d0 / sep
		for i := range xp {
			xp[i] = x[i] + (xp[i]-x[i])*scale
		}
	}

	if t == 0 {
		return 0
	}
	return sumLog / t
}
