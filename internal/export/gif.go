package export

import (
	"image"
	"image/color"
	"image/gif"
	"math"
	"os"

	"github.com/san-kum/attractor/internal/viz"
)

// GIFOptions controls the animated export. Frames are spread over one
// full reveal of the curves while the camera orbits at the same rate as
// live playback.
type GIFOptions struct {
	Width, Height int
	Frames        int
	DelayMS       int     // per-frame delay
	DegPerFrame   float64 // camera azimuth increment
}

func DefaultGIFOptions() GIFOptions {
	return GIFOptions{
		Width:       480,
		Height:      360,
		Frames:      150,
		DelayMS:     40,
		DegPerFrame: 0.6,
	}
}

// WriteGIF renders the rotating reveal animation to path. Each frame
// draws the curves up to a growing sample index onto a paletted image.
func WriteGIF(path string, curves []viz.Curve, theme viz.Theme, opt GIFOptions) error {
	cam := viz.NewCamera()
	palette := gifPalette(theme, len(curves))

	maxSamples := 0
	for _, c := range curves {
		if len(c.Points) > maxSamples {
			maxSamples = len(c.Points)
		}
	}

	anim := &gif.GIF{}
	for f := 0; f < opt.Frames; f++ {
		img := image.NewPaletted(image.Rect(0, 0, opt.Width, opt.Height), palette)
		upto := (f + 1) * maxSamples / opt.Frames
		drawFrame(img, curves, cam, upto)

		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, opt.DelayMS/10)
		cam.IncrementTheta(opt.DegPerFrame * math.Pi / 180)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gif.EncodeAll(file, anim)
}

// gifPalette is black background plus one gradient entry per curve.
func gifPalette(theme viz.Theme, curves int) color.Palette {
	palette := color.Palette{color.Black}
	for _, c := range viz.CurveColors(theme, curves) {
		palette = append(palette, hexToRGBA(string(c)))
	}
	return palette
}

func drawFrame(img *image.Paletted, curves []viz.Curve, cam *viz.Camera, upto int) {
	b := img.Bounds()
	for k, curve := range curves {
		n := len(curve.Points)
		if upto < n {
			n = upto
		}
		havePrev := false
		var px, py int
		for i := 0; i < n; i++ {
			fx, fy, ok := cam.ProjectF(curve.Points[i], b.Dx(), b.Dy())
			if !ok {
				havePrev = false
				continue
			}
			x, y := int(fx), int(fy)
			if havePrev {
				drawPixelLine(img, px, py, x, y, uint8(k+1))
			} else {
				setPixel(img, x, y, uint8(k+1))
			}
			px, py = x, y
			havePrev = true
		}
	}
}

func setPixel(img *image.Paletted, x, y int, ci uint8) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetColorIndex(x, y, ci)
	}
}

func drawPixelLine(img *image.Paletted, x0, y0, x1, y1 int, ci uint8) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		setPixel(img, x0, y0, ci)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func hexToRGBA(hex string) color.RGBA {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{255, 255, 255, 255}
	}
	parse := func(s string) uint8 {
		v := 0
		for _, c := range s {
			v *= 16
			switch {
			case c >= '0' && c <= '9':
				v += int(c - '0')
			case c >= 'a' && c <= 'f':
				v += int(c - 'a' + 10)
			case c >= 'A' && c <= 'F':
				v += int(c - 'A' + 10)
			}
		}
		return uint8(v)
	}
	return color.RGBA{parse(hex[1:3]), parse(hex[3:5]), parse(hex[5:7]), 255}
}
