// Package ui provides the terminal star cloud viewer using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ulysse71/milky-way/internal/logging"
	"github.com/ulysse71/milky-way/internal/render"
	"github.com/ulysse71/milky-way/internal/state"
	"github.com/ulysse71/milky-way/internal/version"
)

// Header and footer lines around the canvas.
const chromeHeight = 3

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic redraws.
	TickMsg time.Time
)

// Options configures the viewer.
type Options struct {
	Refresh      time.Duration
	FovY         float64
	CutoffFactor float64 // multiplier applied by +, divisor by -
	Logger       *logging.Logger
}

func (o Options) withDefaults() Options {
	if o.Refresh <= 0 {
		o.Refresh = 10 * time.Millisecond
	}
	if o.FovY <= 0 {
		o.FovY = render.FovY
	}
	if o.CutoffFactor <= 1 {
		o.CutoffFactor = 1.25
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	return o
}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	session *state.Session
	log     *logging.Logger
	opts    Options

	// UI state
	width     int
	height    int
	ready     bool
	statusMsg string // last key result
	animTick  int

	galaxy   GalaxyViewModel
	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(session *state.Session, opts Options) Model {
	opts = opts.withDefaults()
	return Model{
		session:  session,
		log:      opts.Logger,
		opts:     opts,
		galaxy:   NewGalaxyViewModel(opts.FovY),
		snapshot: session.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Refresh)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "Q", "ctrl+c":
			return m, tea.Quit

		case "+", "=":
			m.changeCutoff(m.opts.CutoffFactor)
		case "-":
			m.changeCutoff(1 / m.opts.CutoffFactor)

		case "r":
			cam := m.session.ResetCamera()
			m.statusMsg = cam.String()

		default:
			if action, ok := KeyAction(key); ok {
				cam := m.session.Move(action)
				m.statusMsg = cam.String()
				m.log.Debug("%s: %s", action, cam)
			} else {
				m.statusMsg = "key unknown " + key
			}
		}
		m.refreshScene()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.galaxy = m.galaxy.SetSize(msg.Width, max(msg.Height-chromeHeight, 1))
		m.refreshScene()

	case TickMsg:
		cmds = append(cmds, tickCmd(m.opts.Refresh))
		m.animTick++
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) changeCutoff(factor float64) {
	cutoff, err := m.session.MultiplyCutoff(factor)
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.statusMsg = fmt.Sprintf("cutoff %g", cutoff)
	m.log.Debug("cutoff %g", cutoff)
}

// refreshScene pulls the current camera and points from the session and
// re-renders the canvas if they changed.
func (m *Model) refreshScene() {
	points := m.session.Points()
	m.galaxy = m.galaxy.SetScene(m.session.Camera(), points).Render()
	m.snapshot = m.session.Snapshot()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.renderHeader() + "\n" + m.galaxy.View() + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	title := m.renderTitle("  MILKY WAY")
	info := fmt.Sprintf("  v%s | %s | cutoff %g | skew %.2g",
		version.Version,
		describeScene(m.galaxy.Visible(), m.snapshot.Points),
		m.snapshot.Cutoff,
		m.snapshot.Frame.Skew())
	return title + dimStyle.Render(info)
}

var (
	titleFrom = colorful.Color{R: 0x3b / 255.0, G: 0x82 / 255.0, B: 0xf6 / 255.0} // blue
	titleTo   = colorful.Color{R: 0xec / 255.0, G: 0x48 / 255.0, B: 0x99 / 255.0} // pink
)

// renderTitle renders text with a horizontal blue to pink gradient.
func (m Model) renderTitle(text string) string {
	runes := []rune(text)
	var b strings.Builder
	for i, r := range runes {
		t := float64(i) / float64(max(len(runes)-1, 1))
		c := titleFrom.BlendLab(titleTo, t).Clamped()
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Bold(true)
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	status := m.statusMsg
	if status == "" {
		status = m.snapshot.Camera.String()
	}
	if m.snapshot.ProjectTime > 0 {
		status += fmt.Sprintf(" (projected in %s)", m.snapshot.ProjectTime.Round(time.Millisecond))
	}

	return "  " + accentStyle.Render(spinner) + " " + dimStyle.Render(status) +
		"\n  " + dimStyle.Render(helpText)
}

// StatusMessage returns the status line text.
func (m Model) StatusMessage() string {
	return m.statusMsg
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
