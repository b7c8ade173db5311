package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots per character cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille pixel canvas of Width x Height character cells,
// addressable at sub-pixel resolution (Width*2) x (Height*4). Each cell
// remembers the color index of the last pixel drawn into it so distinct
// curves keep distinct colors.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Color         [][]int
}

// NoColor marks cells that have no color attribution.
const NoColor = -1

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Color:  make([][]int, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Color[i] = make([]int, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
			c.Color[i][j] = NoColor
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y) with a color index. Out-of-range
// coordinates are ignored.
func (c *Canvas) Set(x, y, color int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Color[row][col] = color
}

// Clear resets the canvas.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
			c.Color[i][j] = NoColor
		}
	}
}

// DrawLine draws a line in sub-pixel space using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1, color int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
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
		c.Set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			break
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

// String renders the canvas without color.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render colors each cell with the palette entry recorded for it. Runs
// of equal color are styled together to keep the escape-code volume down.
func (c *Canvas) Render(palette []lipgloss.Style) string {
	var b strings.Builder
	for row := range c.Grid {
		col := 0
		for col < c.Width {
			ci := c.Color[row][col]
			end := col
			for end < c.Width && c.Color[row][end] == ci {
				end++
			}
			run := string(c.Grid[row][col:end])
			if ci >= 0 && ci < len(palette) {
				b.WriteString(palette[ci].Render(run))
			} else {
				b.WriteString(run)
			}
			col = end
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
