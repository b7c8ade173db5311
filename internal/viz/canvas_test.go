package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(0, 0, 0)

	if c.Grid[0][0] == 0x2800 {
		t.Error("pixel not set")
	}
	if c.Color[0][0] != 0 {
		t.Errorf("color not recorded, got %d", c.Color[0][0])
	}
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 4)
	// Must not panic.
	c.Set(-1, 0, 0)
	c.Set(0, -1, 0)
	c.Set(100, 100, 0)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(3, 3, 2)
	c.Clear()

	for i := range c.Grid {
		for j := range c.Grid[i] {
			if c.Grid[i][j] != 0x2800 {
				t.Fatalf("cell (%d,%d) not cleared", i, j)
			}
			if c.Color[i][j] != NoColor {
				t.Fatalf("color (%d,%d) not cleared", i, j)
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(8, 8)
	c.DrawLine(0, 0, 15, 31, 1)

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("line drew nothing")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("expected 3 runes per line, got %d", len([]rune(line)))
		}
	}
}

func TestCanvasRenderPlainWhenUncolored(t *testing.T) {
	c := NewCanvas(3, 2)
	out := c.Render(nil)
	if out != c.String() {
		t.Error("uncolored render should match plain string output")
	}
}
