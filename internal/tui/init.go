package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/flagpick/internal/selection"
)

// New creates a picker model around an initialized selection model
func New(sel *selection.Model) Model {
	return Model{
		sel:      sel,
		mode:     ModeNormal,
		helpView: viewport.New(80, 20),
	}
}

// Run starts the picker and reports how the user left it. The selection
// model passed in holds the final selection afterwards.
func Run(sel *selection.Model) (ExitAction, error) {
	m := New(sel)

	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return ExitCancel, err
	}

	return m.Exit(), nil
}
