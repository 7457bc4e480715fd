package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		m.exitAction = ExitCancel
		m.quitting = true
		return tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalKeys(msg)
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	}

	return nil
}

// handleNormalKeys handles keyboard input in the flag list
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	// New input invalidates transient messages
	m.statusMsg = ""
	m.errorMsg = ""

	switch msg.String() {
	case "q", "esc":
		m.exitAction = ExitCancel
		m.quitting = true
		return tea.Quit

	case "down", "j":
		m.sel.Next()
		m.adjustScrollOffset()

	case "up", "k":
		m.sel.Previous()
		m.adjustScrollOffset()

	case " ":
		m.sel.ToggleCurrent()

	case "enter":
		m.exitAction = ExitExecute
		m.quitting = true
		return tea.Quit

	case "p":
		m.exitAction = ExitPrint
		m.quitting = true
		return tea.Quit

	case "l":
		m.toggleLanguage()

	case "c":
		m.copyPreview()

	case "/":
		m.mode = ModeSearch
		m.searchQuery = ""

	case "n":
		m.nextSearchMatch()

	case "N":
		m.prevSearchMatch()

	case "?":
		m.mode = ModeHelp
		m.helpView.GotoTop()
	}

	return nil
}

// handleSearchKeys handles keys while typing a search query
func (m *Model) handleSearchKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.searchQuery = ""
		m.searchMatches = nil
		m.searchIndex = 0
		return nil

	case "enter":
		m.mode = ModeNormal
		m.performSearch()
		return nil

	case "backspace":
		if len(m.searchQuery) > 0 {
			m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
		}
		return nil
	}

	// Append typed character
	if len(msg.String()) == 1 {
		m.searchQuery += msg.String()
	}

	return nil
}

// handleHelpKeys handles keyboard input in the help overlay
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc", "?":
		m.mode = ModeNormal
	case "down", "j":
		m.helpView.ScrollDown(1)
	case "up", "k":
		m.helpView.ScrollUp(1)
	}

	return nil
}
