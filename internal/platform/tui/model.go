package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yurikov/termsnake/internal/core"
	"github.com/yurikov/termsnake/internal/game"
)

// Model is the Bubble Tea model driving one game session.
type Model struct {
	session *game.Session
	screen  *core.Screen
	keys    *KeyMapper
	frame   core.InputFrame

	fpsCap   int // Upper bound on the tick rate; 0 means no cap
	quitting bool
}

// NewModel creates the game model. The screen starts at the configured size
// and resizes with the terminal.
func NewModel(session *game.Session, cfg core.RuntimeConfig, fpsCap int) Model {
	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    NewKeyMapper(),
		frame:   core.NewInputFrame(),
		fpsCap:  fpsCap,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate())
}

// tickRate is the session's current rate, clamped to the fps cap.
func (m Model) tickRate() int {
	rate := m.session.TickRate()
	if m.fpsCap > 0 && rate > m.fpsCap {
		rate = m.fpsCap
	}
	return rate
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Ctrl+C always quits, even during name entry.
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		m.keys.MapKeyToFrame(msg, &m.frame)
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.session.SetViewport(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one simulation step with the input gathered since the
// previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	quit := m.session.Step(m.frame)
	m.frame.Clear()

	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	// Rescheduled every tick because the rate climbs with the speed tier.
	return m, tickCmd(m.tickRate())
}

// View renders the session into the screen buffer and styles it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a game session.
func Run(session *game.Session, cfg core.RuntimeConfig, fpsCap int) error {
	model := NewModel(session, cfg, fpsCap)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
