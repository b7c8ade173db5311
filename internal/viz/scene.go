package viz

import (
	"math"

	"github.com/san-kum/attractor/internal/sim"
)

// Curve is one trajectory mapped into scene coordinates, tagged with a
// palette color index.
type Curve struct {
	Points []Vec3
	Color  int
}

// FitCurves maps trajectories of 3D states into a shared scene frame:
// centered on the joint bounding box and scaled uniformly so the longest
// extent spans [-1, 1]. Each curve gets its member index as color, which
// the theme gradient turns into the first-to-last color ramp.
func FitCurves(trajs []*sim.Trajectory) []Curve {
	min := Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, tr := range trajs {
		for _, s := range tr.States {
			min.X = math.Min(min.X, s[0])
			min.Y = math.Min(min.Y, s[1])
			min.Z = math.Min(min.Z, s[2])
			max.X = math.Max(max.X, s[0])
			max.Y = math.Max(max.Y, s[1])
			max.Z = math.Max(max.Z, s[2])
		}
	}

	center := min.Add(max).Scale(0.5)
	extent := math.Max(max.X-min.X, math.Max(max.Y-min.Y, max.Z-min.Z))
	if extent == 0 {
		extent = 1
	}
	scale := 2.0 / extent

	curves := make([]Curve, len(trajs))
	for k, tr := range trajs {
		pts := make([]Vec3, len(tr.States))
		for i, s := range tr.States {
			pts[i] = Vec3{s[0], s[1], s[2]}.Sub(center).Scale(scale)
		}
		curves[k] = Curve{Points: pts, Color: k}
	}
	return curves
}

// DrawCurves renders each curve as a polyline up to sample index upto
// (exclusive; pass len(Points) or more for the whole curve).
func DrawCurves(c *Canvas, curves []Curve, cam *Camera, upto int) {
	sw, sh := c.Width*2, c.Height*4
	for _, curve := range curves {
		n := len(curve.Points)
		if upto < n {
			n = upto
		}
		havePrev := false
		var px, py int
		for i := 0; i < n; i++ {
			x, y, ok := cam.Project(curve.Points[i], sw, sh)
			if !ok {
				havePrev = false
				continue
			}
			if havePrev {
				c.DrawLine(px, py, x, y, curve.Color)
			} else {
				c.Set(x, y, curve.Color)
			}
			px, py = x, y
			havePrev = true
		}
	}
}

// DrawAxes draws the three coordinate axes through the scene origin.
func DrawAxes(c *Canvas, cam *Camera, length float64, color int) {
	sw, sh := c.Width*2, c.Height*4
	axes := [3][2]Vec3{
		{{-length, 0, 0}, {length, 0, 0}},
		{{0, -length, 0}, {0, length, 0}},
		{{0, 0, -length}, {0, 0, length}},
	}
	for _, a := range axes {
		x0, y0, ok0 := cam.Project(a[0], sw, sh)
		x1, y1, ok1 := cam.Project(a[1], sw, sh)
		if ok0 || ok1 {
			c.DrawLine(x0, y0, x1, y1, color)
		}
	}
}
