package viz

import "math"

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Camera orbits the origin at a spherical orientation: Theta is the
// azimuth around the vertical (scene Z) axis, Phi the tilt from the
// vertical. Phi 0 looks straight down; Phi pi/2 is a side view with
// scene Z pointing up on screen.
type Camera struct {
	Theta, Phi float64
	Distance   float64
	Zoom       float64
}

// NewCamera starts at the standard viewing orientation for the
// attractor scene: azimuth 43 degrees, tilt 76 degrees.
func NewCamera() *Camera {
	return &Camera{
		Theta:    43 * math.Pi / 180,
		Phi:      76 * math.Pi / 180,
		Distance: 6.0,
		Zoom:     1.0,
	}
}

// Reorient sets the orientation in degrees.
func (c *Camera) Reorient(thetaDeg, phiDeg float64) {
	c.Theta = thetaDeg * math.Pi / 180
	c.Phi = phiDeg * math.Pi / 180
}

// IncrementTheta advances the azimuth; drives the continuous rotation
// during playback.
func (c *Camera) IncrementTheta(rad float64) { c.Theta += rad }

func (c *Camera) IncrementPhi(rad float64) {
	c.Phi = math.Max(0.01, math.Min(math.Pi-0.01, c.Phi+rad))
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// view transforms a scene point into camera space: screen-right x,
// screen-up y, and depth toward the viewer.
func (c *Camera) view(p Vec3) Vec3 {
	ct, st := math.Cos(c.Theta), math.Sin(c.Theta)
	x := p.X*ct + p.Y*st
	y := -p.X*st + p.Y*ct

	cp, sp := math.Cos(c.Phi), math.Sin(c.Phi)
	return Vec3{
		X: x,
		Y: -y*cp + p.Z*sp,
		Z: y*sp + p.Z*cp,
	}
}

// ProjectF maps a scene point to floating sub-pixel coordinates on a
// sw x sh screen. Points behind the camera plane are invisible.
func (c *Camera) ProjectF(p Vec3, sw, sh int) (float64, float64, bool) {
	v := c.view(p).Scale(c.Zoom)
	if v.Z >= c.Distance-0.1 {
		return 0, 0, false
	}
	scale := c.Distance / (c.Distance - v.Z)

	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 3.0

	fx := v.X*scale*pScale + float64(sw)/2
	fy := -v.Y*scale*pScale + float64(sh)/2
	return fx, fy, true
}

// Project is ProjectF rounded to canvas sub-pixels, with an on-screen
// visibility flag.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, bool) {
	fx, fy, front := c.ProjectF(p, sw, sh)
	if !front {
		return 0, 0, false
	}
	x, y := int(math.Round(fx)), int(math.Round(fy))
	return x, y, x >= 0 && x < sw && y >= 0 && y < sh
}
