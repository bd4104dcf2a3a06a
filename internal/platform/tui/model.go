// Package tui provides the Bubble Tea front end for the engine.
// It only reads engine snapshots and forwards actions; all game rules live
// in the engine package.
package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide2048/internal/core"
	"github.com/vovakirdan/slide2048/internal/engine"
)

// Model is the Bubble Tea model for one game session.
type Model struct {
	session  *engine.Session
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	width    int
	height   int
	lastErr  error
	quitting bool
}

// NewModel creates a model driving s. A nil logger discards log output.
func NewModel(s *engine.Session, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		session: s,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}
}

// Init implements tea.Model. The game is already running; nothing to start.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input. One key is one command.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	changed, err := m.session.Apply(action)
	m.lastErr = err
	if err != nil {
		m.logger.Error("command failed", "action", action, "error", err)
		return m, nil
	}
	m.logger.Debug("command", "action", action, "changed", changed)

	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	view := renderView(m.session.Snapshot(), m.lastErr, m.help.View(m.keys))
	if m.width == 0 || m.height == 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

// Run starts the Bubble Tea program for s and blocks until the player quits.
func Run(s *engine.Session, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(s, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
