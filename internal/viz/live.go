package viz

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/steiner/internal/analysis"
	"github.com/san-kum/steiner/internal/anim"
	"github.com/san-kum/steiner/internal/curve"
	"github.com/san-kum/steiner/internal/export"
)

const (
	canvasWidth  = 60
	canvasHeight = 26

	// Axis bounds accommodate max(R+r+d, max|x|, max|y|) times this margin.
	viewMargin = 1.2

	// Parameter tuning bounds at the control surface. The core has its
	// own validation; these just keep the keys inside a sane range.
	paramMin  = 0.1
	paramMax  = 10.0
	paramStep = 0.1
)

type TickMsg time.Time

var paramNames = [3]string{"R", "r", "d"}

// Model drives the animator from a fixed-period tick and renders the
// Cartesian and polar views onto a Braille canvas.
type Model struct {
	ctrl     *anim.Controller
	steps    int
	tick     time.Duration
	canvas   *Canvas
	polar    bool
	selected int
	metrics  map[string]float64
	errMsg   string
	showHelp bool
}

// NewModel builds the TUI around an animation controller. The sample
// is generated up front so the first frame renders immediately.
func NewModel(ctrl *anim.Controller, steps int, tick time.Duration, theme string) (Model, error) {
	SetTheme(theme)
	m := Model{
		ctrl:   ctrl,
		steps:  steps,
		tick:   tick,
		canvas: NewCanvas(canvasWidth, canvasHeight),
	}
	if err := ctrl.Generate(steps); err != nil {
		return Model{}, err
	}
	m.refreshMetrics()
	return m, nil
}

func (m *Model) refreshMetrics() {
	if s := m.ctrl.Sample(); s != nil {
		m.metrics = analysis.Summarize(m.ctrl.Curve().Params(), s.Points)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles transport and tuning keys and advances the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.ctrl.State() == anim.Running {
				m.ctrl.Stop()
			} else {
				if _, err := m.ctrl.Play(); err != nil {
					m.errMsg = err.Error()
				}
			}
		case "g":
			m.regenerate()
		case "r":
			m.ctrl.Stop()
			if err := m.ctrl.Seek(0); err != nil {
				m.errMsg = err.Error()
			}
		case "[":
			m.seekBy(-1)
		case "]":
			m.seekBy(1)
		case "tab":
			m.selected = (m.selected + 1) % len(paramNames)
		case "up", "k":
			m.adjustParam(paramStep)
		case "down", "j":
			m.adjustParam(-paramStep)
		case "v":
			m.polar = !m.polar
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "s":
			m.saveSVG()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		m.ctrl.Tick()
		return m, tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) seekBy(delta int) {
	if err := m.ctrl.Seek(m.ctrl.Index() + delta); err != nil {
		m.errMsg = err.Error()
	}
}

func (m *Model) regenerate() {
	if err := m.ctrl.Generate(m.steps); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.refreshMetrics()
}

// adjustParam tunes the selected parameter. Keeping d within r is a
// control-surface convenience; the core validates the triple again and
// its rejection is surfaced untouched.
func (m *Model) adjustParam(delta float64) {
	p := m.ctrl.Curve().Params()
	switch m.selected {
	case 0:
		p.Fixed = clamp(p.Fixed+delta, paramMin, paramMax)
	case 1:
		p.Rolling = clamp(p.Rolling+delta, paramMin, paramMax)
	case 2:
		p.Offset = clamp(p.Offset+delta, paramMin, paramMax)
	}
	if p.Offset > p.Rolling {
		p.Offset = p.Rolling
	}
	if err := m.ctrl.SetParams(p); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.regenerate()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m *Model) saveSVG() {
	f, err := m.ctrl.Frame()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	name := fmt.Sprintf("steiner_frame_%03d.svg", f.Index)
	if err := os.WriteFile(name, []byte(export.FrameSVG(f)), 0644); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = "saved " + name
}

// View renders the canvas beside the stats panel.
func (m Model) View() string {
	f, err := m.ctrl.Frame()
	if err != nil {
		return "no sample generated\n"
	}

	m.canvas.Clear()
	if m.polar {
		m.drawPolar(f)
	} else {
		m.drawCartesian(f)
	}
	canvasView := canvasStyle.Render(m.canvas.String())
	statsView := statsStyle.Render(m.statsPanel(f))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Start/stop animation     ║
║  G        - Rebuild the trace        ║
║  R        - Rewind to frame 0        ║
║  [ ]      - Step one frame back/fwd  ║
║  Tab      - Select parameter         ║
║  Up/K     - Increase parameter       ║
║  Down/J   - Decrease parameter       ║
║  V        - Cartesian/polar view     ║
║  T        - Cycle themes             ║
║  S        - Save frame as SVG        ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

// drawCartesian renders the trace, both circles, the current point and
// the spoke from the rolling center to the traced point.
func (m *Model) drawCartesian(f anim.Frame) {
	sw, sh := m.canvas.Width*2, m.canvas.Height*4
	cx, cy := sw/2, sh/2
	extent := f.MaxExtent() * viewMargin
	sx := (float64(sw)/2 - 1) / extent
	sy := (float64(sh)/2 - 1) / extent

	px := func(p curve.Point) (int, int) {
		return cx + int(p.X*sx), cy - int(p.Y*sy)
	}

	prevX, prevY := px(f.Path[0])
	for _, p := range f.Path[1:] {
		x, y := px(p)
		m.canvas.DrawLine(prevX, prevY, x, y)
		prevX, prevY = x, y
	}

	m.canvas.DrawEllipse(cx, cy, int(f.FixedRadius*sx), int(f.FixedRadius*sy))

	rcx, rcy := px(f.Rolling.Center)
	m.canvas.DrawEllipse(rcx, rcy, int(f.Rolling.Radius*sx), int(f.Rolling.Radius*sy))

	ptx, pty := px(f.Point)
	m.canvas.DrawLine(rcx, rcy, ptx, pty)
	m.canvas.DrawDot(ptx, pty)
}

// drawPolar renders radius against angle with the current sample
// highlighted: the (angle, radius) form of the same trace.
func (m *Model) drawPolar(f anim.Frame) {
	sw, sh := m.canvas.Width*2, m.canvas.Height*4

	maxR := 0.0
	for _, p := range f.PolarPath {
		if p.Radius > maxR {
			maxR = p.Radius
		}
	}
	if maxR == 0 {
		maxR = 1
	}
	maxR *= viewMargin

	n := len(f.PolarPath)
	px := func(i int) (int, int) {
		x := int(float64(i) / float64(n-1) * float64(sw-1))
		y := sh - 1 - int(f.PolarPath[i].Radius/maxR*float64(sh-1))
		return x, y
	}

	// Baseline at radius zero.
	m.canvas.DrawLine(0, sh-1, sw-1, sh-1)

	prevX, prevY := px(0)
	for i := 1; i < n; i++ {
		x, y := px(i)
		m.canvas.DrawLine(prevX, prevY, x, y)
		prevX, prevY = x, y
	}

	curX, curY := px(f.Index)
	m.canvas.DrawDot(curX, curY)
}

func (m *Model) statsPanel(f anim.Frame) string {
	p := m.ctrl.Curve().Params()
	var s strings.Builder

	s.WriteString(headerStyle().Render("STEINER CURVE") + "\n")

	running := m.ctrl.State() == anim.Running
	status := "PAUSED"
	if running {
		status = "RUNNING"
	}
	s.WriteString(statusStyle(running).Render(status) + "\n\n")

	view := "cartesian"
	if m.polar {
		view = "polar"
	}
	s.WriteString(labelStyle().Render("View") + valueStyle().Render(view) + "\n")
	s.WriteString(labelStyle().Render("Frame") +
		valueStyle().Render(fmt.Sprintf("%d/%d", f.Index, f.Steps)) + "\n")
	s.WriteString(ProgressBar(float64(f.Index)/float64(f.Steps-1), 24) + "\n")
	s.WriteString(labelStyle().Render("Angle") +
		valueStyle().Render(fmt.Sprintf("%.3f rad", f.Angle)) + "\n")
	s.WriteString(labelStyle().Render("Point") +
		valueStyle().Render(fmt.Sprintf("(%.3f, %.3f)", f.Point.X, f.Point.Y)) + "\n")

	s.WriteString("\nPARAMETERS\n")
	values := [3]float64{p.Fixed, p.Rolling, p.Offset}
	for i, name := range paramNames {
		line := fmt.Sprintf("%-2s %s %.2f", name, ParamBar(values[i], paramMax, 12), values[i])
		if i == m.selected {
			s.WriteString(activeParamStyle().Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle().Render(line) + "\n")
		}
	}

	s.WriteString("\nMETRICS\n")
	if turns := m.metrics["closure_turns"]; turns > 0 {
		s.WriteString(labelStyle().Render("Closure") +
			valueStyle().Render(fmt.Sprintf("%.0f turn(s)", turns)) + "\n")
	} else {
		s.WriteString(labelStyle().Render("Closure") + valueStyle().Render("open") + "\n")
	}
	s.WriteString(labelStyle().Render("Length") +
		valueStyle().Render(fmt.Sprintf("%.3f", m.metrics["arc_length"])) + "\n")
	s.WriteString(labelStyle().Render("Max R") +
		valueStyle().Render(fmt.Sprintf("%.3f", m.metrics["max_radius"])) + "\n")

	radii := make([]float64, len(f.PolarPath))
	for i, pp := range f.PolarPath {
		radii[i] = pp.Radius
	}
	chart := asciigraph.Plot(radii,
		asciigraph.Height(4),
		asciigraph.Width(28),
		asciigraph.Caption("radius profile"),
	)
	s.WriteString(graphStyle().Render(chart) + "\n")

	if m.errMsg != "" {
		s.WriteString(errorStyle().Render(m.errMsg) + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\nSP:Play G:Rebuild R:Rewind Q:Quit\n[ ]:Step Tab/↑↓:Tune V:View T:Theme\nS:SVG ?:Help"))
	return s.String()
}
