package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/fibsphere/internal/config"
	"github.com/san-kum/fibsphere/internal/report"
	"github.com/san-kum/fibsphere/internal/sphere"
	"github.com/san-kum/fibsphere/internal/viz"
)

const (
	spinStep  = 0.04
	rotStep   = 0.1
	pageStep  = 10
	minCanvas = 20
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model hosts the point-count control and everything derived from it. The
// point set is rebuilt from scratch whenever the count or the phase policy
// changes.
type Model struct {
	count  int
	radius float64
	gen    *sphere.Generator

	points  sphere.PointSet
	lines   []string
	summary sphere.Summary
	nearest []float64
	err     error

	camera *viz.Camera
	theme  viz.Theme

	scroll   int
	spinning bool
	showHelp bool

	width, height int
}

func New(cfg *config.Config) Model {
	cam := viz.NewCamera()
	cam.RotX, cam.RotY, cam.Zoom = cfg.View.RotX, cfg.View.RotY, cfg.View.Zoom

	m := Model{
		count:  config.ClampPoints(cfg.Points),
		radius: cfg.Radius,
		gen:    sphere.NewGenerator(cfg.Randomize, cfg.Seed),
		camera: cam,
		theme:  viz.GetTheme(cfg.View.Theme),
		width:  cfg.View.Width*2 + 10,
		height: cfg.View.Height + 8,
	}
	m.recompute()
	return m
}

// Count is the current value of the point-count control.
func (m Model) Count() int { return m.count }

func (m Model) Points() sphere.PointSet { return m.points }

func (m Model) Lines() []string { return m.lines }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		if !m.spinning {
			return m, nil
		}
		m.camera.RotateY(spinStep)
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k", "+":
		m.setCount(m.count + 1)
	case "down", "j", "-":
		m.setCount(m.count - 1)
	case "pgup":
		m.setCount(m.count + pageStep)
	case "pgdown":
		m.setCount(m.count - pageStep)
	case "home":
		m.setCount(config.MinPoints)
	case "end":
		m.setCount(config.MaxPoints)
	case "r":
		m.gen.Randomize = !m.gen.Randomize
		m.recompute()
	case "n":
		if m.gen.Randomize {
			m.recompute()
		}
	case "x":
		m.camera.RotateX(rotStep)
	case "X":
		m.camera.RotateX(-rotStep)
	case "y":
		m.camera.RotateY(rotStep)
	case "Y":
		m.camera.RotateY(-rotStep)
	case "z":
		m.camera.RotateZ(rotStep)
	case "Z":
		m.camera.RotateZ(-rotStep)
	case "=":
		m.camera.ZoomIn()
	case "_":
		m.camera.ZoomOut()
	case "[":
		m.scrollBy(-1)
	case "]":
		m.scrollBy(1)
	case "{":
		m.scrollBy(-m.reportRows())
	case "}":
		m.scrollBy(m.reportRows())
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
	case " ":
		m.spinning = !m.spinning
		if m.spinning {
			return m, tick()
		}
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// setCount clamps n to the supported range and recomputes on change.
func (m *Model) setCount(n int) {
	n = config.ClampPoints(n)
	if n == m.count {
		return
	}
	m.count = n
	m.recompute()
}

func (m *Model) recompute() {
	points, err := m.gen.Generate(m.count)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.points = points
	m.lines = report.Lines(points, m.radius)
	m.summary = sphere.Summarize(points)

	nn := sphere.NearestNeighbors(points)
	m.nearest = make([]float64, len(nn))
	for i, n := range nn {
		m.nearest[i] = n.Chord
	}
	m.scrollBy(0)
}

func (m *Model) scrollBy(d int) {
	maxScroll := len(m.lines) - m.reportRows()
	if maxScroll < 0 {
		maxScroll = 0
	}
	m.scroll += d
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func Run(cfg *config.Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
