package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/attractor/internal/dynamo"
	"github.com/san-kum/attractor/internal/sim"
	"github.com/san-kum/attractor/internal/viz"
)

func testCurves() []viz.Curve {
	trajs := []*sim.Trajectory{
		{
			Times:  []float64{0, 0.01, 0.02},
			States: []dynamo.State{{0, 0, 0}, {1, 1, 1}, {2, 0, 1}},
		},
		{
			Times:  []float64{0, 0.01, 0.02},
			States: []dynamo.State{{0, 0, 0.5}, {1, 1, 1.5}, {2, 0, 0.5}},
		},
	}
	return viz.FitCurves(trajs)
}

func TestSceneToSVG(t *testing.T) {
	svg := SceneToSVG(testCurves(), viz.NewCamera(), viz.ThemeClassic, 400, 300)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if strings.Count(svg, "<path") != 2 {
		t.Errorf("expected 2 paths, got %d", strings.Count(svg, "<path"))
	}

	// Gradient endpoints of the classic theme.
	if !strings.Contains(svg, "#1c758a") {
		t.Error("first curve should use the gradient start color")
	}
	if !strings.Contains(svg, "#cf5044") {
		t.Error("last curve should use the gradient end color")
	}
}

func TestWriteSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.svg")
	if err := WriteSVG(path, testCurves(), viz.NewCamera(), viz.ThemeClassic, 400, 300); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("written file is not a complete SVG")
	}
}

func TestWriteGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.gif")
	opt := DefaultGIFOptions()
	opt.Frames = 5
	opt.Width, opt.Height = 80, 60

	if err := WriteGIF(path, testCurves(), viz.ThemeClassic, opt); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Error("GIF file is empty")
	}
}
