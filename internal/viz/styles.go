package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CurveColors interpolates n colors between the theme's gradient
// endpoints, one per ensemble member.
func CurveColors(t Theme, n int) []lipgloss.Color {
	if n < 1 {
		return nil
	}
	sr, sg, sb := parseHex(string(t.CurveStart))
	er, eg, eb := parseHex(string(t.CurveEnd))

	colors := make([]lipgloss.Color, n)
	for i := range colors {
		f := 0.0
		if n > 1 {
			f = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + f*float64(er-sr))
		g := int(float64(sg) + f*float64(eg-sg))
		b := int(float64(sb) + f*float64(eb-sb))
		colors[i] = lipgloss.Color(hexColor(r, g, b))
	}
	return colors
}

// CurvePalette wraps the gradient colors in foreground styles for canvas
// rendering.
func CurvePalette(t Theme, n int) []lipgloss.Style {
	colors := CurveColors(t, n)
	styles := make([]lipgloss.Style, n)
	for i, c := range colors {
		styles[i] = lipgloss.NewStyle().Foreground(c)
	}
	return styles
}

// GradientText colors each rune of text along the theme gradient.
func GradientText(t Theme, text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	colors := CurveColors(t, len(runes))

	var b strings.Builder
	for i, r := range runes {
		b.WriteString(lipgloss.NewStyle().Foreground(colors[i]).Render(string(r)))
	}
	return b.String()
}

// ProgressBar renders playback progress.
func ProgressBar(percent float64, width int, t Theme) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(t.Accent).Render(bar)
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	val := 0
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	const hex = "0123456789abcdef"
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return v
	}
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []int{clamp(r), clamp(g), clamp(b)} {
		out[1+2*i] = hex[v/16]
		out[2+2*i] = hex[v%16]
	}
	return string(out)
}
