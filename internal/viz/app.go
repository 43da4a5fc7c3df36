package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/robolab/ddrive/internal/config"
	"github.com/robolab/ddrive/internal/kinematics"
	"github.com/robolab/ddrive/internal/playback"
)

const (
	defaultCols = 80
	defaultRows = 24
	panelWidth  = 40
)

type TickMsg time.Time

// Model is the Bubble Tea model for the playback viewer.
type Model struct {
	path     *kinematics.Path
	cfg      *config.Config
	ctrl     *playback.Controller
	canvas   *Canvas
	headings []float64
	tick     time.Duration
	showGrid bool
	showHelp bool
}

// NewModel builds the viewer for a precomputed path.
func NewModel(path *kinematics.Path, cfg *config.Config) Model {
	canvas := NewCanvas(defaultCols, defaultRows)
	opts := cfg.PlaybackOptions()
	opts.Width = float64(canvas.PixelWidth())
	opts.Height = float64(canvas.PixelHeight())

	fps := cfg.Playback.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}

	return Model{
		path:     path,
		cfg:      cfg,
		ctrl:     playback.NewController(path, opts),
		canvas:   canvas,
		headings: headingSeries(path, 72),
		tick:     time.Second / time.Duration(fps),
		showGrid: cfg.Display.ShowGrid,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		m.ctrl.Tick()
		return m, tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.ctrl.Apply(playback.EvExit)
		return m, tea.Quit
	case " ":
		m.ctrl.Apply(playback.EvPlayPause)
	case "[":
		m.ctrl.Apply(playback.EvStepBack)
	case "]":
		m.ctrl.Apply(playback.EvStepForward)
	case "{":
		m.ctrl.Apply(playback.EvScrubBackHeld)
	case "}":
		m.ctrl.Apply(playback.EvScrubForwardHeld)
	case "enter":
		m.ctrl.Apply(playback.EvScrubRelease)
	case "up", "k":
		m.ctrl.Apply(playback.EvPanUp)
	case "down", "j":
		m.ctrl.Apply(playback.EvPanDown)
	case "left", "h":
		m.ctrl.Apply(playback.EvPanLeft)
	case "right", "l":
		m.ctrl.Apply(playback.EvPanRight)
	case "+", "=":
		m.ctrl.Apply(playback.EvZoomIn)
	case "-", "_":
		m.ctrl.Apply(playback.EvZoomOut)
	case "0":
		m.ctrl.Apply(playback.EvResetView)
	case "g":
		m.showGrid = !m.showGrid
		m.cfg.Display.ShowGrid = m.showGrid
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) resize(termW, termH int) {
	cols := termW - panelWidth - 4
	rows := termH - 2
	if cols < 20 {
		cols = 20
	}
	if rows < 10 {
		rows = 10
	}
	m.canvas = NewCanvas(cols, rows)
	m.ctrl.Resize(float64(m.canvas.PixelWidth()), float64(m.canvas.PixelHeight()))
}

func (m Model) View() string {
	snap := m.ctrl.Frame()
	Paint(m.canvas, m.path, snap, m.cfg)

	left := canvasStyle.Render(m.canvas.String())
	right := panelStyle.Render(m.panel(snap))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) panel(snap playback.Snapshot) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("DIFF DRIVE") + "\n")

	status := strings.ToUpper(snap.Mode.String())
	if snap.AtEnd && snap.Mode == playback.Paused {
		status = "FINISHED"
	}
	b.WriteString(modeStyle.Render(status) + "\n\n")

	s := snap.Sample
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Frame", fmt.Sprintf("%d / %d", snap.Index+1, max(snap.Total, 1)))
	row("X", fmt.Sprintf("%.2f", s.X))
	row("Y", fmt.Sprintf("%.2f", s.Y))
	row("Heading", fmt.Sprintf("%.1f°", s.Heading*180/math.Pi))
	row("Zoom", fmt.Sprintf("%.2fx", snap.View.Zoom))
	if s.Command >= 0 && s.Command < len(m.cfg.Moves) {
		mv := m.cfg.Moves[s.Command]
		row("Command", fmt.Sprintf("#%d %s %s %.2g", s.Command+1, mv.Direction, mv.Wheels, mv.Rotations))
	}
	row("Turns", fmt.Sprintf("%d", len(visibleTurns(m.path, snap.Index))))

	if len(m.headings) > 1 {
		chart := asciigraph.Plot(m.headings,
			asciigraph.Height(5),
			asciigraph.Width(28),
			asciigraph.Caption("heading (deg)"),
		)
		b.WriteString("\n" + graphStyle.Render(chart) + "\n")
	}

	if m.showHelp {
		b.WriteString("\n" + helpStyle.Render(helpText))
	} else {
		b.WriteString("\n" + helpStyle.Render("? help  q quit"))
	}
	return b.String()
}

const helpText = `space  play/pause
[ ]    step back/forward
{ }    scrub (enter stops)
arrows pan
+ -    zoom
0      fit path
g      grid
q      quit`

// headingSeries downsamples the path's heading, in degrees, for the side
// panel chart.
func headingSeries(path *kinematics.Path, points int) []float64 {
	n := path.Len()
	if n == 0 {
		return nil
	}
	if points > n {
		points = n
	}
	out := make([]float64, points)
	for i := range out {
		idx := i * (n - 1) / max(points-1, 1)
		out[i] = path.Samples[idx].Heading * 180 / math.Pi
	}
	return out
}

// Run computes nothing; it plays back an already-computed path until the
// user exits.
func Run(path *kinematics.Path, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(path, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
