package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the scene and overlay. CurveStart
// and CurveEnd are the endpoints of the gradient spread across ensemble
// members.
type Theme struct {
	Name       string
	CurveStart lipgloss.Color
	CurveEnd   lipgloss.Color
	Axis       lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
}

var (
	// ThemeClassic spreads the ensemble from deep blue to deep red.
	ThemeClassic = Theme{
		Name:       "classic",
		CurveStart: lipgloss.Color("#1c758a"),
		CurveEnd:   lipgloss.Color("#cf5044"),
		Axis:       lipgloss.Color("#444466"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888899"),
		Accent:     lipgloss.Color("#00ffff"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		CurveStart: lipgloss.Color("#005500"),
		CurveEnd:   lipgloss.Color("#88ff88"),
		Axis:       lipgloss.Color("#003300"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Accent:     lipgloss.Color("#ffff00"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		CurveStart: lipgloss.Color("#0077be"),
		CurveEnd:   lipgloss.Color("#ffd700"),
		Axis:       lipgloss.Color("#224466"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Accent:     lipgloss.Color("#00ffcc"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		CurveStart: lipgloss.Color("#feca57"),
		CurveEnd:   lipgloss.Color("#ff6b6b"),
		Axis:       lipgloss.Color("#5b4b5c"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Accent:     lipgloss.Color("#ff9ff3"),
	}

	Themes = []Theme{ThemeClassic, ThemeRetroGreen, ThemeOcean, ThemeSunset}
)

// GetTheme returns a theme by name, falling back to the classic palette.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme cycles through the registered themes.
func NextTheme(current string) Theme {
	for i, t := range Themes {
		if t.Name == current {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}
