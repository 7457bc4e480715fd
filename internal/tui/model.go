package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/flagpick/internal/selection"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeHelp
)

// ExitAction tells the caller what to do once the picker closes
type ExitAction int

const (
	// ExitCancel discards the selection
	ExitCancel ExitAction = iota
	// ExitExecute launches the composed command with inherited streams
	ExitExecute
	// ExitPrint writes the composed command line to stdout
	ExitPrint
)

// Model represents the TUI state. All flag and selection state lives in the
// wrapped selection.Model; this struct only carries view concerns.
type Model struct {
	sel  *selection.Model
	mode Mode

	// Flag list scrolling
	offset int

	// Search state
	searchQuery   string
	searchMatches []int // Indices into the flag list
	searchIndex   int   // Current position in searchMatches

	// Help overlay
	helpView viewport.Model

	// UI state
	width     int
	height    int
	statusMsg string
	errorMsg  string

	exitAction ExitAction
	quitting   bool
}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpView.Width = msg.Width - 4
		m.helpView.Height = msg.Height - 4
		m.helpView.SetContent(helpContent())
		m.adjustScrollOffset()
	}

	return m, nil
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting || m.width == 0 {
		return ""
	}

	if m.mode == ModeHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// Exit reports how the user left the picker
func (m *Model) Exit() ExitAction {
	return m.exitAction
}

// Selection exposes the wrapped selection model to the caller
func (m *Model) Selection() *selection.Model {
	return m.sel
}
