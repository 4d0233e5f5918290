package viz

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/trajlab/internal/phys"
)

const (
	graphWidth  = 80
	graphHeight = 18
	tickRate    = time.Second / 60
)

type TickMsg time.Time

// Model replays a precomputed flight sample by sample, so playback speed is
// decoupled from the integration step size.
type Model struct {
	params  phys.Params
	result  *phys.Result
	head    int
	perTick int
	running bool
	err     error
}

// NewModel integrates the flight once up front and animates the stored
// trajectory.
func NewModel(integ *phys.Integrator, p phys.Params, dt float64) Model {
	res, err := integ.Integrate(p, dt)

	m := Model{
		params:  p,
		result:  res,
		running: true,
		err:     err,
	}
	if res != nil {
		// Aim for a ~5 second replay regardless of sample count.
		m.perTick = len(res.Path) / int(5*time.Second/tickRate)
		if m.perTick < 1 {
			m.perTick = 1
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.head = 0
			m.running = true
		}
	case TickMsg:
		if m.running && m.result != nil && m.head < len(m.result.Path)-1 {
			m.head += m.perTick
			if m.head > len(m.result.Path)-1 {
				m.head = len(m.result.Path) - 1
			}
		}
		return m, tea.Tick(tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	}

	path := m.result.Path[:m.head+1]
	graph := asciigraph.Plot(path.Ys(),
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("altitude (m)"),
	)

	cur := path[len(path)-1]
	t := float64(m.head) * m.result.Dt

	status := statusRunning.Render("replaying")
	if !m.running {
		status = statusPaused.Render("paused")
	}
	if m.head >= len(m.result.Path)-1 {
		status = statusDone.Render("landed")
	}

	stats := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("trajlab live"),
		row("status", status),
		row("t", fmt.Sprintf("%.2f s", t)),
		row("x", fmt.Sprintf("%.2f m", cur.X)),
		row("y", fmt.Sprintf("%.2f m", cur.Y)),
		row("v0", fmt.Sprintf("%.1f m/s @ %.0f°", m.params.Speed, m.params.Angle)),
		row("dt", fmt.Sprintf("%g s", m.result.Dt)),
		row("range", fmt.Sprintf("%.2f m", m.result.Range)),
		row("max h", fmt.Sprintf("%.2f m", m.result.MaxHeight)),
		row("v final", fmt.Sprintf("%.2f m/s", m.result.FinalSpeed)),
		row("flight", fmt.Sprintf("%3.0f%%", 100*m.Progress())),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(graph),
		statsStyle.Render(stats),
	)

	return body + "\n" + helpStyle.Render("space pause · r restart · q quit") + "\n"
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

// Progress reports how far the replay head has advanced.
func (m Model) Progress() float64 {
	if m.result == nil || len(m.result.Path) < 2 {
		return 1
	}
	return math.Min(1, float64(m.head)/float64(len(m.result.Path)-1))
}
