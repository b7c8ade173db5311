// Package export writes rendered attractor scenes to files: static SVG
// projections and animated GIFs of the rotating scene. It consumes the
// same fitted curves and camera as the terminal player.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/attractor/internal/viz"
)

// SceneToSVG projects the curves through the camera and emits one path
// per curve, stroked with the theme gradient.
func SceneToSVG(curves []viz.Curve, cam *viz.Camera, theme viz.Theme, width, height int) string {
	colors := viz.CurveColors(theme, len(curves))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for k, curve := range curves {
		var path strings.Builder
		started := false
		for _, p := range curve.Points {
			fx, fy, ok := cam.ProjectF(p, width, height)
			if !ok {
				started = false
				continue
			}
			if !started {
				path.WriteString(fmt.Sprintf("M%.1f,%.1f", fx, fy))
				started = true
			} else {
				path.WriteString(fmt.Sprintf(" L%.1f,%.1f", fx, fy))
			}
		}
		if path.Len() == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
`, string(colors[k]), path.String()))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSVG renders the scene and writes it to path.
func WriteSVG(path string, curves []viz.Curve, cam *viz.Camera, theme viz.Theme, width, height int) error {
	return os.WriteFile(path, []byte(SceneToSVG(curves, cam, theme, width, height)), 0644)
}
