package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Static overlay content for the attractor scene: a description line,
// the governing equations, and the code that produced the trajectories.

const description = "The Lorenz system is given by the following set of\nordinary differential equations:"

var equationLines = []string{
	"dx/dt = σ (y − x)",
	"dy/dt = x (ρ − z) − y",
	"dz/dt = x y − β z",
}

const codeExcerpt = `spec := ensemble.Spec{
    Base:         dynamo.State{10, 10, 10},
    Count:        5,
    Epsilon:      1e-5,
    PerturbIndex: 2,
}
trajs, err := ensemble.Run(ctx, lorenz,
    newRK45, spec, sim.Config{
        Dt:       0.01,
        Duration: 15,
    })`

// Overlay composes the explanatory side panel for a theme.
func Overlay(t Theme, width int) string {
	text := lipgloss.NewStyle().Foreground(t.Text)
	muted := lipgloss.NewStyle().Foreground(t.Muted)
	eq := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	codeBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Axis).
		Foreground(t.Muted).
		Padding(0, 1).
		Width(width)

	var b strings.Builder
	b.WriteString(text.Render(description))
	b.WriteString("\n\n")
	for _, line := range equationLines {
		b.WriteString("  " + eq.Render(line) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(muted.Render("5 trajectories, Δz = 1e-5 apart") + "\n\n")
	b.WriteString(codeBox.Render(codeExcerpt))
	return b.String()
}
