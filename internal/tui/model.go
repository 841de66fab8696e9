// Package tui hosts the animation inside a Bubble Tea program, drawn with
// Braille dots under a one-line status bar.
package tui

import (
	"fmt"
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/threebody/internal/sim"
	"github.com/san-kum/threebody/internal/viz"
)

const (
	// DotScale is the number of surface pixels per Braille dot on each axis.
	DotScale = 2

	// DefaultThreshold is the lightness above which a dot is lit.
	DefaultThreshold = 0.08

	statusLines = 1
)

type TickMsg time.Time

type Model struct {
	loop      *sim.Loop
	surface   *viz.ImageSurface
	palette   viz.Palette
	styles    styles
	period    time.Duration
	start     time.Time
	Threshold float64

	canvas *viz.Canvas
	dots   *image.RGBA
	frame  string
	width  int
	height int
}

// New wraps loop, whose surface must be surface. Opportunities arrive
// refreshHz times per second.
func New(loop *sim.Loop, surface *viz.ImageSurface, palette viz.Palette, refreshHz float64) Model {
	if refreshHz <= 0 {
		refreshHz = sim.DefaultFPS
	}
	return Model{
		loop:      loop,
		surface:   surface,
		palette:   palette,
		styles:    newStyles(palette.Accent, palette.Muted),
		period:    time.Duration(float64(time.Second) / refreshHz),
		start:     time.Now(),
		Threshold: DefaultThreshold,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.period, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.loop.Stop()
			return m, tea.Quit
		case "r":
			m.loop.Reset()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		ts := float64(time.Time(msg).Sub(m.start).Microseconds()) / 1000
		if m.loop.Tick(ts) {
			m.plot()
		}
		if m.loop.Status() == sim.Stopped {
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

// resize fits the Braille canvas to the terminal below the status bar.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	rows := max(0, height-statusLines)
	m.canvas = viz.NewCanvas(width, rows)
	dw, dh := m.canvas.DotSize()
	m.dots = image.NewRGBA(image.Rect(0, 0, dw, dh))
	m.loop.Resize(dw*DotScale, dh*DotScale)
	m.frame = ""
}

func (m *Model) plot() {
	if m.canvas == nil {
		return
	}
	viz.Resample(m.dots, m.surface.Image(), m.surface.ImageSmoothing())
	m.canvas.Clear()
	m.canvas.Plot(m.dots, m.Threshold)
	m.frame = m.canvas.String()
}

func (m Model) View() string {
	if m.canvas == nil {
		return "starting..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Canvas.Render(m.frame),
		m.status(),
	)
}

func (m Model) status() string {
	sys := m.loop.System()
	state := m.styles.Value.Render(m.loop.Status().String())
	if m.loop.Status() == sim.Stopped {
		state = m.styles.Stopped.Render(m.loop.Status().String())
	}

	trail := sys.Bodies[0].Trail
	left := fmt.Sprintf("%s  %s %s  %s %s  %s %s  %s %s",
		m.styles.Title.Render("threebody"),
		m.styles.Label.Render("frame"), m.styles.Value.Render(fmt.Sprintf("%d", sys.Frames)),
		m.styles.Label.Render("t"), m.styles.Value.Render(fmt.Sprintf("%.2f", sys.Time)),
		m.styles.Label.Render("trail"), m.styles.Value.Render(fmt.Sprintf("%d/%d", trail.Len(), trail.Cap())),
		m.styles.Label.Render(m.palette.Name), state,
	)
	right := m.styles.KeyHint.Render("r reset  q quit")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
