package viz

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gravbox/internal/config"
	"github.com/san-kum/gravbox/internal/input"
	"github.com/san-kum/gravbox/internal/metrics"
	"github.com/san-kum/gravbox/internal/sandbox"
)

const (
	width           = 80
	height          = 24
	panelWidth      = 40
	historyCapacity = 300
)

type TickMsg time.Time

// Model feeds terminal input to a sandbox session and draws it each tick.
type Model struct {
	cfg     *config.Config
	state   *sandbox.State
	surface *Surface
	energy  *metrics.History
	pending []input.Event
	fps     int
	quit    bool
}

func NewModel(cfg *config.Config, st *sandbox.State) Model {
	return Model{
		cfg:     cfg,
		state:   st,
		surface: NewSurface(NewCanvas(width-panelWidth, height-1), float64(cfg.Window.Width), float64(cfg.Window.Height)),
		energy:  metrics.NewHistory(historyCapacity),
		fps:     cfg.Window.FPS,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update queues input as sandbox events and runs one frame per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cols := max(msg.Width-panelWidth, 1)
		rows := max(msg.Height-1, 1)
		m.surface = NewSurface(NewCanvas(cols, rows), float64(m.cfg.Window.Width), float64(m.cfg.Window.Height))
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.pending = append(m.pending, input.QuitEvent())
		default:
			if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
				m.pending = append(m.pending, input.Key(unicode.ToLower(msg.Runes[0])))
			}
		}
	case tea.MouseMsg:
		if ev, ok := m.mouseEvent(msg); ok {
			m.pending = append(m.pending, ev)
		}
	case TickMsg:
		events := m.pending
		m.pending = nil
		if m.state.Frame(events) {
			m.quit = true
			return m, tea.Quit
		}
		m.energy.Push(m.state.Energy())
		return m, m.tick()
	}
	return m, nil
}

// mouseEvent maps a terminal mouse message to a pointer event. Presses off
// the canvas are ignored; motion and releases are clamped to its edge so a
// drag that leaves the canvas still ends.
func (m Model) mouseEvent(msg tea.MouseMsg) (input.Event, bool) {
	c := m.surface.Canvas()
	inside := msg.X >= 0 && msg.Y >= 0 && msg.X < c.Width && msg.Y < c.Height
	p := m.surface.ToWorld(clamp(msg.X, c.Width-1), clamp(msg.Y, c.Height-1))
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !inside {
			return input.Event{}, false
		}
		return input.Down(p.X(), p.Y()), true
	case msg.Action == tea.MouseActionRelease:
		return input.Up(p.X(), p.Y()), true
	case msg.Action == tea.MouseActionMotion:
		return input.Move(p.X(), p.Y()), true
	}
	return input.Event{}, false
}

func clamp(v, hi int) int {
	return max(0, min(v, hi))
}

// View renders the canvas beside the stats panel.
func (m Model) View() string {
	if m.quit {
		return ""
	}
	m.surface.Reset()
	m.state.Draw(m.surface)

	var s strings.Builder
	s.WriteString(headerStyle.Render("GRAVBOX") + "\n")
	s.WriteString(statusLine(m.state) + "\n\n")
	for _, l := range m.surface.Labels() {
		s.WriteString(valueStyle.Render(l.Text) + "\n")
	}
	s.WriteString("\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", m.state.World.Len())) + "\n")
	s.WriteString(labelStyle.Render("Tick") + valueStyle.Render(fmt.Sprintf("%d", m.state.Ticks)) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.4g", m.energy.Value())) + "\n")
	if samples := m.energy.Samples(); len(samples) > 1 {
		chart := asciigraph.Plot(samples, asciigraph.Height(4), asciigraph.Width(panelWidth-12), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	s.WriteString(helpStyle.Render("drag: launch  r: reset  q: quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, m.surface.Canvas().String(), statsStyle.Render(s.String()))
}

func statusLine(st *sandbox.State) string {
	if g := st.Input.Pending(); g != nil {
		d := st.Input.Cursor().Sub(g.Start).Mul(st.Input.Config().LaunchScale)
		return StatusAiming.Render(fmt.Sprintf("AIMING v=(%.1f, %.1f)", d.X(), d.Y()))
	}
	return StatusRunning.Render("RUNNING")
}

// Run drives the session in the terminal until the user quits.
func Run(cfg *config.Config, st *sandbox.State, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(cfg, st), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal session: %w", err)
	}
	logger.Info("session ended", "ticks", st.Ticks, "bodies", st.World.Len())
	return nil
}
