package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/phasependulum/internal/input"
	"github.com/san-kum/phasependulum/internal/sim"
	"github.com/san-kum/phasependulum/internal/trace"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	fps             = 60

	// Scale is sub-pixels per radian. The default canvas spans θ in ±4 and
	// ω in ±4.8.
	Scale = 20.0

	minWidth, minHeight = 20, 8
)

type TickMsg time.Time

// Model drives one pendulum from bubbletea messages and draws its phase portrait.
type Model struct {
	pend          *sim.Pendulum
	canvas        *Canvas
	t             float64
	theme         int
	status        string
	energyHistory []float64
	omegaHistory  []float64
}

// NewModel takes ownership of p and recenters it on the default canvas.
func NewModel(p *sim.Pendulum) Model {
	m := Model{
		pend:          p,
		canvas:        NewCanvas(width, height),
		energyHistory: make([]float64, 0, historyCapacity),
		omegaHistory:  make([]float64, 0, historyCapacity),
	}
	p.SetScale(Scale)
	input.Apply(p, m.resizeCommand())
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		default:
			if cmd, ok := input.FromKey(key); ok {
				m.apply(cmd)
			}
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if pos, ok := m.cellToCanvas(msg.X, msg.Y); ok {
				m.apply(input.Place{Pos: pos})
			}
		}
	case tea.WindowSizeMsg:
		w := max(msg.Width-statsWidth-6, minWidth)
		h := max(msg.Height-3, minHeight)
		m.canvas = NewCanvas(w, h)
		input.Apply(m.pend, m.resizeCommand())
	case TickMsg:
		m.step()
		return m, tick()
	}
	return m, nil
}

func (m *Model) apply(cmd input.Command) {
	if s := input.Apply(m.pend, cmd); s != "" {
		m.status = s
	}
	m.t = 0
	m.energyHistory = m.energyHistory[:0]
	m.omegaHistory = m.omegaHistory[:0]
}

func (m Model) resizeCommand() input.Resize {
	return input.Resize{
		Width:  float32(m.canvas.SubWidth()),
		Height: float32(m.canvas.SubHeight()),
	}
}

// cellToCanvas maps a terminal cell to the sub-pixel at its center. The canvas
// sits behind the canvas style's padding.
func (m Model) cellToCanvas(x, y int) (trace.Vec, bool) {
	col, row := x-2, y-1
	if col < 0 || row < 0 || col >= m.canvas.Width || row >= m.canvas.Height {
		return trace.Vec{}, false
	}
	return trace.Vec{X: float32(col*2) + 1, Y: float32(row*4) + 2}, true
}

func (m *Model) step() {
	const frameDt = 1.0 / fps
	m.pend.Advance(frameDt, sim.DefaultSubsteps)
	m.t += frameDt

	if len(m.energyHistory) >= historyCapacity {
		m.energyHistory = m.energyHistory[1:]
		m.omegaHistory = m.omegaHistory[1:]
	}
	m.energyHistory = append(m.energyHistory, m.pend.Energy())
	m.omegaHistory = append(m.omegaHistory, m.pend.State().Omega)
}

// View renders the TUI interface.
func (m Model) View() string {
	theme := Themes[m.theme]
	st := newStyles(theme)

	m.draw()
	canvasView := st.canvas.Render(m.canvas.Render(theme))

	state, params := m.pend.State(), m.pend.Params()
	row := func(label, value string) string {
		return st.label.Render(label) + st.value.Render(value) + "\n"
	}

	var s strings.Builder
	s.WriteString(st.header.Render("PHASE SPACE") + "\n")
	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}
	s.WriteString(row("ω trend", Sparkline(m.omegaHistory, 30)))
	s.WriteString("\n")
	s.WriteString(row("Time", fmt.Sprintf("%.2fs", m.t)))
	s.WriteString(row("θ", fmt.Sprintf("%.3f", state.Theta)))
	s.WriteString(row("ω", fmt.Sprintf("%.3f", state.Omega)))
	s.WriteString(row("Energy", fmt.Sprintf("%.3f", m.pend.Energy())))
	s.WriteString(row("Gravity", fmt.Sprintf("%.2f", params.Gravity)))
	s.WriteString(row("Damping", fmt.Sprintf("%.2f", params.Damping)))
	s.WriteString(row("Trace", fmt.Sprintf("%d pts", m.pend.TraceLen())))
	s.WriteString(row("Theme", theme.Name))

	s.WriteString("\n" + Separator(statsWidth-6) + "\n")
	s.WriteString(st.help.Render("1:Free 2:Damped ↑↓:Gravity\nSP:Reset Click:Place\nT:Theme Q:Quit"))
	if m.status != "" {
		s.WriteString("\n\n" + st.status.Render(m.status))
	}

	statsView := st.stats.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// draw renders axes, trace and marker into the canvas.
func (m *Model) draw() {
	c := m.canvas
	c.Clear()

	center := m.pend.Projection().Center
	cx, cy := round(center.X), round(center.Y)
	c.SetPen(InkAxis)
	c.DrawLine(0, cy, c.SubWidth()-1, cy)
	c.DrawLine(cx, 0, cx, c.SubHeight()-1)

	pts := m.pend.Trace()
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if m.offCanvas(a, b) {
			continue
		}
		if b.Color == trace.Highlighted {
			c.SetPen(InkHighlight)
		} else {
			c.SetPen(InkNormal)
		}
		c.DrawLine(round(a.X), round(a.Y), round(b.X), round(b.Y))
	}

	marker := m.pend.Marker()
	c.SetPen(InkMarker)
	c.DrawDisc(round(marker.X), round(marker.Y), 1)
}

// offCanvas reports whether segment a-b lies entirely beyond one canvas edge.
func (m *Model) offCanvas(a, b trace.Point) bool {
	w, h := float32(m.canvas.SubWidth()), float32(m.canvas.SubHeight())
	return (a.X < 0 && b.X < 0) || (a.Y < 0 && b.Y < 0) ||
		(a.X >= w && b.X >= w) || (a.Y >= h && b.Y >= h)
}

// round converts to the nearest sub-pixel, clamping non-finite and far
// off-canvas values so line drawing stays bounded.
func round(v float32) int {
	f := float64(v)
	if math.IsNaN(f) {
		return -1
	}
	const limit = 1 << 16
	return int(math.Max(-limit, math.Min(limit, math.Round(f))))
}

// Run starts the terminal view and blocks until the user quits.
func Run(p *sim.Pendulum) error {
	prog := tea.NewProgram(NewModel(p), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := prog.Run()
	return err
}
