package viz

import (
	"math"
	"testing"

	"github.com/san-kum/attractor/internal/dynamo"
	"github.com/san-kum/attractor/internal/sim"
)

func TestCameraProjectsOriginToCenter(t *testing.T) {
	cam := NewCamera()
	fx, fy, ok := cam.ProjectF(Vec3{0, 0, 0}, 100, 100)
	if !ok {
		t.Fatal("origin should be visible")
	}
	if math.Abs(fx-50) > 1e-9 || math.Abs(fy-50) > 1e-9 {
		t.Errorf("origin should project to screen center, got (%f, %f)", fx, fy)
	}
}

func TestCameraAzimuthIsAboutVerticalAxis(t *testing.T) {
	cam := NewCamera()
	cam.Reorient(0, 90)

	// A side view with zero azimuth: scene Z maps straight up.
	_, fyLow, _ := cam.ProjectF(Vec3{0, 0, -0.5}, 100, 100)
	_, fyHigh, _ := cam.ProjectF(Vec3{0, 0, 0.5}, 100, 100)
	if fyHigh >= fyLow {
		t.Errorf("scene +Z should be up on screen: z=+0.5 at %f, z=-0.5 at %f", fyHigh, fyLow)
	}

	// Points on the vertical axis are fixed by azimuth rotation.
	fx0, fy0, _ := cam.ProjectF(Vec3{0, 0, 0.5}, 100, 100)
	cam.IncrementTheta(1.0)
	fx1, fy1, _ := cam.ProjectF(Vec3{0, 0, 0.5}, 100, 100)
	if math.Abs(fx0-fx1) > 1e-9 || math.Abs(fy0-fy1) > 1e-9 {
		t.Errorf("vertical axis moved under azimuth rotation: (%f,%f) vs (%f,%f)", fx0, fy0, fx1, fy1)
	}
}

func TestCameraZoomScalesOffsets(t *testing.T) {
	cam := NewCamera()
	fx0, _, _ := cam.ProjectF(Vec3{0.5, 0, 0}, 200, 200)
	cam.ZoomIn()
	fx1, _, _ := cam.ProjectF(Vec3{0.5, 0, 0}, 200, 200)

	if math.Abs(fx1-100) <= math.Abs(fx0-100) {
		t.Error("zooming in should push points further from center")
	}
}

func TestFitCurvesNormalizes(t *testing.T) {
	tr := &sim.Trajectory{
		Times: []float64{0, 0.01},
		States: []dynamo.State{
			{0, 0, 0},
			{10, 20, 40},
		},
	}
	curves := FitCurves([]*sim.Trajectory{tr})
	if len(curves) != 1 {
		t.Fatalf("expected 1 curve, got %d", len(curves))
	}

	for _, p := range curves[0].Points {
		for _, v := range []float64{p.X, p.Y, p.Z} {
			if v < -1.0001 || v > 1.0001 {
				t.Fatalf("point component %f outside [-1, 1]", v)
			}
		}
	}

	// The largest extent (z: 0..40) must span the full range.
	dz := curves[0].Points[1].Z - curves[0].Points[0].Z
	if math.Abs(dz-2.0) > 1e-9 {
		t.Errorf("z extent should normalize to 2.0, got %f", dz)
	}
}

func TestDrawCurvesRespectsReveal(t *testing.T) {
	tr := &sim.Trajectory{
		Times:  []float64{0, 0.01, 0.02},
		States: []dynamo.State{{-1, 0, 0}, {0, 0, 0}, {1, 0, 0}},
	}
	curves := FitCurves([]*sim.Trajectory{tr})
	cam := NewCamera()

	count := func(upto int) int {
		c := NewCanvas(20, 20)
		DrawCurves(c, curves, cam, upto)
		lit := 0
		for _, row := range c.Grid {
			for _, r := range row {
				if r != 0x2800 {
					lit++
				}
			}
		}
		return lit
	}

	if count(0) != 0 {
		t.Error("upto=0 should draw nothing")
	}
	if count(3) <= count(1) {
		t.Error("revealing more samples should light more cells")
	}
}
