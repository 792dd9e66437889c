package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/fibsphere/internal/config"
	"github.com/san-kum/fibsphere/internal/viz"
)

const reportWidth = 44

var helpText = `
 ↑/k ↓/j   points ±1        pgup/pgdn  points ±10
 home/end  min/max points   r          toggle random phase
 n         new random phase x y z      rotate (shift reverses)
 = _       zoom in/out      space      spin
 [ ] { }   scroll report    t          cycle theme
 ?         toggle help      q          quit
`

// canvasSize splits the window between the scene and the report pane.
func (m Model) canvasSize() (int, int) {
	w := m.width - reportWidth - 10
	h := m.height - 7
	if w < minCanvas {
		w = minCanvas
	}
	if h < minCanvas/2 {
		h = minCanvas / 2
	}
	return w, h
}

func (m Model) reportRows() int {
	rows := m.height - 14
	if rows < 5 {
		rows = 5
	}
	return rows
}

func (m Model) View() string {
	w, h := m.canvasSize()
	canvas := viz.RenderPoints(m.points, m.camera, w, h)

	title := fmt.Sprintf("fibonacci sphere · %d points", m.count)
	scene := viz.Panel(m.theme, title, canvas.Styled(m.theme), 0)
	side := viz.Panel(m.theme, "report", m.reportView()+"\n"+m.statsView(), reportWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top, scene, side)
	out := body + "\n" + m.toolbar()
	if m.showHelp {
		out = viz.Panel(m.theme, "keys", viz.KeyHint.Render(helpText), 0) + "\n" + out
	}
	return out
}

func (m Model) reportView() string {
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Render(m.err.Error())
	}
	end := m.scroll + m.reportRows()
	if end > len(m.lines) {
		end = len(m.lines)
	}
	text := lipgloss.NewStyle().Foreground(m.theme.Text).MaxWidth(reportWidth - 2)
	var b strings.Builder
	for _, l := range m.lines[m.scroll:end] {
		b.WriteString(text.Render(l) + "\n")
	}
	b.WriteString(viz.Subtle.Render(fmt.Sprintf("lines %d-%d of %d", m.scroll+1, end, len(m.lines))))
	return b.String()
}

func (m Model) statsView() string {
	s := m.summary
	var b strings.Builder
	b.WriteString(viz.Separator(reportWidth-2) + "\n")
	b.WriteString(metric("pairs", fmt.Sprintf("%d", s.Pairs)))
	b.WriteString(metric("chord", fmt.Sprintf("%.4f – %.4f", s.MinChord, s.MaxChord)))
	b.WriteString(metric("nearest", fmt.Sprintf("%.4f – %.4f", s.MinNearest, s.MaxNearest)))
	b.WriteString(metric("spread", fmt.Sprintf("%.3f", s.Spread())))
	b.WriteString(metric("nn", viz.SparklineChart(m.nearest, reportWidth-16)))
	return b.String()
}

func metric(label, value string) string {
	return viz.MetricLabel.Render(label) + viz.MetricValue.Render(value) + "\n"
}

// toolbar shows the point-count control and the active modes.
func (m Model) toolbar() string {
	accent := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	control := fmt.Sprintf("points [%d..%d] ◂ %s ▸", config.MinPoints, config.MaxPoints, accent.Render(fmt.Sprintf("%3d", m.count)))

	phase := "fixed"
	if m.gen.Randomize {
		phase = "random"
	}
	modes := []string{
		control,
		"phase " + accent.Render(phase),
		"theme " + accent.Render(m.theme.Name),
	}
	if m.spinning {
		modes = append(modes, accent.Render("spinning"))
	}
	return strings.Join(modes, viz.Subtle.Render("  │  ")) + "  " + viz.KeyHint.Render("? help")
}
