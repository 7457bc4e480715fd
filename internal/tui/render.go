package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleCursor = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSelected = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// renderMain renders the flag list, the preview pane and the status bar
func (m *Model) renderMain() string {
	title := styleTitle.Render(fmt.Sprintf(" flagpick: %s [%s] ", m.sel.Target(), m.sel.Language()))

	list := m.renderList(m.width-4, m.listHeight())
	listBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Width(m.width - 2).
		Render(list)

	preview := m.renderPreview(m.width - 4)
	previewBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Width(m.width - 2).
		Render(preview)

	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		listBox,
		previewBox,
		statusBar,
	)
}

// renderList renders the visible window of the flag list
func (m *Model) renderList(width, height int) string {
	flags := m.sel.Flags()
	if len(flags) == 0 {
		return styleSubtle.Render("No flags found")
	}

	endIdx := m.offset + height
	if endIdx > len(flags) {
		endIdx = len(flags)
	}

	var lines []string
	for i := m.offset; i < endIdx; i++ {
		flag := flags[i]

		checkbox := "[ ]"
		if flag.Selected {
			checkbox = "[x]"
		}

		line := fmt.Sprintf("%s %-25s | %s", checkbox, flag.Label(), flag.Description)
		line = runewidth.Truncate(line, width, "...")

		// Cursor row wins over every other styling
		if i == m.sel.Cursor() {
			line = styleCursor.Render(line)
		} else if flag.Selected {
			line = styleSelected.Render(line)
		} else if m.isSearchMatch(i) {
			line = styleWarning.Render(line)
		}

		lines = append(lines, line)
	}

	// Footer - show position
	lines = append(lines, "")
	lines = append(lines, styleSubtle.Render(fmt.Sprintf("[%d/%d]", m.sel.Cursor()+1, len(flags))))

	return strings.Join(lines, "\n")
}

// isSearchMatch reports whether flag index i is among the search matches
func (m *Model) isSearchMatch(i int) bool {
	for _, matchIdx := range m.searchMatches {
		if i == matchIdx {
			return true
		}
	}
	return false
}

// renderPreview renders the composed command line and the keybind hints
func (m *Model) renderPreview(width int) string {
	preview := styleWarning.Render("Preview: ") + m.sel.PreviewString()
	preview = runewidth.Truncate(preview, width, "...")

	keys := strings.Join([]string{
		styleTitle.Render("[Enter]") + " Run",
		styleTitle.Render("[p]") + " Print",
		styleTitle.Render("[c]") + " Copy",
		styleTitle.Render("[l]") + " Language",
		styleSubtle.Render("[Space]") + " Select",
		styleError.Render("[Esc]") + " Quit",
	}, "  ")

	return preview + "\n" + keys
}

// renderStatusBar renders the status bar at the bottom
func (m *Model) renderStatusBar() string {
	left := fmt.Sprintf("%d selected", len(m.sel.SelectedArguments()))

	right := ""
	switch m.mode {
	case ModeSearch:
		right = fmt.Sprintf("Search: %s█", m.searchQuery)
	default:
		if m.errorMsg != "" {
			right = styleError.Render(m.errorMsg)
		} else if m.statusMsg != "" {
			right = styleSelected.Render(m.statusMsg)
		} else {
			right = styleSubtle.Render("Press / to search | ? for help | q to quit")
		}
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// renderHelp renders the scrollable help overlay
func (m *Model) renderHelp() string {
	title := styleTitle.Render(" Keybindings ")

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Width(m.width - 2).
		Render(m.helpView.View())

	footer := styleSubtle.Render("j/k scroll | q or esc to close")

	return lipgloss.JoinVertical(lipgloss.Left, title, body, footer)
}

// helpContent lists all keybindings for the help overlay
func helpContent() string {
	rows := [][2]string{
		{"j / down", "Move down (wraps to the top)"},
		{"k / up", "Move up (wraps to the bottom)"},
		{"space", "Toggle the flag under the cursor"},
		{"enter", "Run the composed command"},
		{"p", "Print the composed command and exit"},
		{"c", "Copy the composed command to the clipboard"},
		{"l", "Toggle help language (system locale / English)"},
		{"/", "Search flags (fuzzy, or regex if the query looks like one)"},
		{"n / N", "Next / previous search match"},
		{"?", "This help"},
		{"q / esc", "Quit without doing anything"},
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%-12s %s\n", row[0], row[1])
	}
	return b.String()
}
