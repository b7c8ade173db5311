package integrators

import (
	"math"

	"github.com/san-kum/attractor/internal/dynamo"
)

// Dormand-Prince 5(4) Butcher tableau. The last row of a doubles as the
// 5th-order solution weights (FSAL), e holds the difference between the
// 5th- and 4th-order weights used for the error estimate.
var (
	dpC = [7]float64{0, 1.0 / 5.0, 3.0 / 10.0, 4.0 / 5.0, 8.0 / 9.0, 1, 1}

	dpA = [7][6]float64{
		{},
		{1.0 / 5.0},
		{3.0 / 40.0, 9.0 / 40.0},
		{44.0 / 45.0, -56.0 / 15.0, 32.0 / 9.0},
		{19372.0 / 6561.0, -25360.0 / 2187.0, 64448.0 / 6561.0, -212.0 / 729.0},
		{9017.0 / 3168.0, -355.0 / 33.0, 46732.0 / 5247.0, 49.0 / 176.0, -5103.0 / 18656.0},
		{35.0 / 384.0, 0, 500.0 / 1113.0, 125.0 / 192.0, -2187.0 / 6784.0, 11.0 / 84.0},
	}

	dpE = [7]float64{
		35.0/384.0 - 5179.0/57600.0,
		0,
		500.0/1113.0 - 7571.0/16695.0,
		125.0/192.0 - 393.0/640.0,
		-2187.0/6784.0 + 92097.0/339200.0,
		11.0/84.0 - 187.0/2100.0,
		-1.0 / 40.0,
	}
)

type RK45 struct {
	safety   float64
	minScale float64
	maxScale float64
}

func NewRK45() *RK45 {
	return &RK45{
		safety:   0.9,
		minScale: 0.2,
		maxScale: 10.0,
	}
}

// Step takes a single step of exactly dt regardless of the error
// estimate, for callers that do not run an adaptive loop.
func (r *RK45) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	next, _ := r.attempt(dyn, x, t, dt, 1e-6)
	return next
}

// StepAdaptive attempts one step of size dt. On rejection the returned
// state is nil and dtNext is the smaller size to retry with.
func (r *RK45) StepAdaptive(dyn dynamo.System, x dynamo.State, t, dt, tol float64) (dynamo.State, float64, bool) {
	next, errRatio := r.attempt(dyn, x, t, dt, tol)

	if errRatio > 1 {
		scale := math.Max(r.minScale, r.safety*math.Pow(errRatio, -0.25))
		return nil, dt * scale, false
	}

	var dtNext float64
	if errRatio > 0 {
		dtNext = dt * math.Min(r.maxScale, r.safety*math.Pow(errRatio, -0.2))
	} else {
		dtNext = dt * r.maxScale
	}
	return next, dtNext, true
}

// attempt evaluates the seven stages and returns the 5th-order solution
// together with the scaled error ratio (err/tol).
func (r *RK45) attempt(dyn dynamo.System, x dynamo.State, t, dt, tol float64) (dynamo.State, float64) {
	n := len(x)
	var k [7]dynamo.State

	k[0] = dyn.Derive(x, t)
	xs := make(dynamo.State, n)
	for s := 1; s < 7; s++ {
		for i := 0; i < n; i++ {
			sum := x[i]
			for j := 0; j < s; j++ {
				if dpA[s][j] != 0 {
					sum += dt * dpA[s][j] * k[j][i]
				}
			}
			xs[i] = sum
		}
		if s == 6 {
			// FSAL: stage 7 is the derivative at the candidate solution.
			k[6] = dyn.Derive(xs, t+dt)
			break
		}
		k[s] = dyn.Derive(xs, t+dpC[s]*dt)
	}

	next := make(dynamo.State, n)
	for i := 0; i < n; i++ {
		next[i] = x[i] + dt*(dpA[6][0]*k[0][i]+dpA[6][2]*k[2][i]+dpA[6][3]*k[3][i]+dpA[6][4]*k[4][i]+dpA[6][5]*k[5][i])
	}

	errMax := 0.0
	for i := 0; i < n; i++ {
		errEst := 0.0
		for s := 0; s < 7; s++ {
			errEst += dpE[s] * k[s][i]
		}
		errEst *= dt
		scale := math.Abs(x[i]) + math.Abs(dt*k[0][i]) + 1e-10
		errMax = math.Max(errMax, math.Abs(errEst)/scale)
	}

	return next, errMax / tol
}
