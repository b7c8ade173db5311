package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/attractor/internal/sim"
)

const (
	canvasWidth  = 72
	canvasHeight = 30
	// Continuous azimuth rotation, degrees per second of playback.
	rotationDegPerSec = 3.0
)

var (
	sceneStyle  = lipgloss.NewStyle().Padding(1, 2)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).Padding(1, 2).Width(48)
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	helpStyle   = lipgloss.NewStyle().MarginTop(1)
)

type TickMsg time.Time

// Player replays precomputed trajectories: curves are revealed in sample
// order over the evolution time while the camera orbits the scene. It
// never computes anything; integration failures have already surfaced
// before a Player exists.
type Player struct {
	curves   []Curve
	times    []float64
	theme    Theme
	palette  []lipgloss.Style
	cam      *Camera
	canvas   *Canvas
	fps      int
	reveal   float64 // fractional sample index
	playing  bool
	showHelp bool
	title    string
}

// NewPlayer builds a player over finished trajectories. fps bounds the
// terminal frame rate; the reveal speed tracks simulated time so the
// full ensemble appears over its evolution time.
func NewPlayer(trajs []*sim.Trajectory, themeName string, fps int, title string) Player {
	theme := GetTheme(themeName)
	return Player{
		curves:  FitCurves(trajs),
		times:   trajs[0].Times,
		theme:   theme,
		palette: scenePalette(theme, len(trajs)),
		cam:     NewCamera(),
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		fps:     fps,
		playing: true,
		title:   title,
	}
}

// scenePalette is the curve gradient plus one trailing style for axes.
func scenePalette(t Theme, curves int) []lipgloss.Style {
	p := CurvePalette(t, curves)
	return append(p, lipgloss.NewStyle().Foreground(t.Axis))
}

func (p Player) axisColor() int { return len(p.palette) - 1 }

func (p Player) Init() tea.Cmd {
	return p.tick()
}

func (p Player) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(p.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case " ":
			p.playing = !p.playing
		case "r":
			p.reveal = 0
			p.cam = NewCamera()
		case "t":
			p.theme = NextTheme(p.theme.Name)
			p.palette = scenePalette(p.theme, len(p.curves))
		case "left":
			p.cam.IncrementTheta(-0.1)
		case "right":
			p.cam.IncrementTheta(0.1)
		case "up":
			p.cam.IncrementPhi(-0.1)
		case "down":
			p.cam.IncrementPhi(0.1)
		case "+", "=":
			p.cam.ZoomIn()
		case "-", "_":
			p.cam.ZoomOut()
		case "[":
			p.scrub(-1.0)
		case "]":
			p.scrub(1.0)
		case "?":
			p.showHelp = !p.showHelp
		}
	case TickMsg:
		if p.playing {
			p.advance()
		}
		return p, p.tick()
	}
	return p, nil
}

// advance moves simulated time forward by one frame: reveal more samples
// and rotate the camera. After the full reveal the camera keeps
// orbiting.
func (p *Player) advance() {
	if len(p.times) < 2 {
		return
	}
	dt := p.times[1] - p.times[0]
	simSecondsPerFrame := 1.0 / float64(p.fps)

	if p.reveal < float64(len(p.times)) {
		p.reveal += simSecondsPerFrame / dt
		if p.reveal > float64(len(p.times)) {
			p.reveal = float64(len(p.times))
		}
	}
	p.cam.IncrementTheta(rotationDegPerSec * (math.Pi / 180.0) * simSecondsPerFrame)
}

// scrub jumps the reveal position by a number of simulated seconds.
func (p *Player) scrub(simSeconds float64) {
	if len(p.times) < 2 {
		return
	}
	dt := p.times[1] - p.times[0]
	p.reveal += simSeconds / dt
	if p.reveal < 0 {
		p.reveal = 0
	}
	if p.reveal > float64(len(p.times)) {
		p.reveal = float64(len(p.times))
	}
}

func (p Player) View() string {
	p.canvas.Clear()
	DrawAxes(p.canvas, p.cam, 1.2, p.axisColor())
	DrawCurves(p.canvas, p.curves, p.cam, int(p.reveal))

	scene := sceneStyle.Render(p.canvas.Render(p.palette))

	var side strings.Builder
	side.WriteString(headerStyle.Render(GradientText(p.theme, p.title)) + "\n")
	side.WriteString(p.statusLine() + "\n\n")
	side.WriteString(Overlay(p.theme, 40))
	side.WriteString(helpStyle.Render("\nSP:Pause R:Restart T:Theme ?:Help Q:Quit"))

	main := lipgloss.JoinHorizontal(lipgloss.Top, scene, panelStyle.Render(side.String()))
	if p.showHelp {
		return p.helpView() + "\n" + main
	}
	return main
}

func (p Player) statusLine() string {
	total := len(p.times)
	idx := int(p.reveal)
	if idx >= total {
		idx = total - 1
	}
	t := 0.0
	if total > 0 {
		t = p.times[idx]
	}

	status := "PLAYING"
	if !p.playing {
		status = "PAUSED"
	} else if int(p.reveal) >= total {
		status = "ORBITING"
	}

	frac := 0.0
	if total > 0 {
		frac = p.reveal / float64(total)
	}
	return fmt.Sprintf("%s  t=%5.2f  %s", status, t, ProgressBar(frac, 20, p.theme))
}

func (p Player) helpView() string {
	return strings.TrimSpace(`
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space      - Pause/Resume playback  ║
║  R          - Restart                ║
║  T          - Cycle themes           ║
║  Arrows     - Rotate camera          ║
║  +/-        - Zoom                   ║
║  [ / ]      - Scrub one time unit    ║
║  ?          - Toggle this help       ║
║  Q          - Quit                   ║
╚══════════════════════════════════════╝`)
}

// Run plays the scene until the user quits.
func Run(trajs []*sim.Trajectory, themeName string, fps int, title string) error {
	if len(trajs) == 0 {
		return fmt.Errorf("nothing to play: no trajectories")
	}
	prog := tea.NewProgram(NewPlayer(trajs, themeName, fps, title), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
