// Package selection owns the flag list shown in the picker and the per-flag
// selection state. It is the only place that state is mutated.
package selection

import (
	"strings"

	"github.com/studiowebux/flagpick/internal/types"
)

// Fetcher loads the flag list for a command in the given language. The TUI
// and tests inject different implementations.
type Fetcher func(command string, lang types.Language) ([]types.Flag, error)

// Model holds the target command, the current flag list and a cursor into it
type Model struct {
	target string
	lang   types.Language
	flags  []types.Flag
	cursor int
	fetch  Fetcher
}

// New creates a model around an already-fetched flag list
func New(target string, lang types.Language, flags []types.Flag, fetch Fetcher) *Model {
	return &Model{
		target: target,
		lang:   lang,
		flags:  flags,
		fetch:  fetch,
	}
}

// Target returns the command the flags belong to
func (m *Model) Target() string { return m.target }

// Language returns the language the current list was acquired in
func (m *Model) Language() types.Language { return m.lang }

// Flags returns the current flag list in source order
func (m *Model) Flags() []types.Flag { return m.flags }

// Len returns the number of flags
func (m *Model) Len() int { return len(m.flags) }

// Cursor returns the current cursor position
func (m *Model) Cursor() int { return m.cursor }

// SetCursor jumps the cursor to i; out-of-range values are ignored
func (m *Model) SetCursor(i int) {
	if i < 0 || i >= len(m.flags) {
		return
	}
	m.cursor = i
}

// Next moves the cursor down one entry, wrapping to the top
func (m *Model) Next() {
	if len(m.flags) == 0 {
		return
	}
	m.cursor = (m.cursor + 1) % len(m.flags)
}

// Previous moves the cursor up one entry, wrapping to the bottom
func (m *Model) Previous() {
	if len(m.flags) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.flags) - 1
	}
}

// ToggleCurrent flips the selection state of the flag under the cursor
func (m *Model) ToggleCurrent() {
	if m.cursor < 0 || m.cursor >= len(m.flags) {
		return
	}
	m.flags[m.cursor].Selected = !m.flags[m.cursor].Selected
}

// SwitchLanguage re-fetches the flag list in lang and projects the current
// selection onto the new list by canonical argument string. Descriptions can
// be reworded and lines reordered between locales, so the canonical argument
// is the only key that survives the reload.
//
// The switch is atomic: on any fetch error the model is left exactly as it
// was and the error is returned for the caller to report or swallow.
func (m *Model) SwitchLanguage(lang types.Language) error {
	selected := make(map[string]bool)
	for _, f := range m.flags {
		if f.Selected {
			selected[f.Arg()] = true
		}
	}

	flags, err := m.fetch(m.target, lang)
	if err != nil {
		return err
	}

	for i := range flags {
		if selected[flags[i].Arg()] {
			flags[i].Selected = true
		}
	}

	m.flags = flags
	m.lang = lang
	if m.cursor >= len(m.flags) {
		m.cursor = 0
	}
	return nil
}

// SelectedArguments returns the canonical argument strings of all selected
// flags, in current list order
func (m *Model) SelectedArguments() []string {
	var args []string
	for _, f := range m.flags {
		if f.Selected {
			args = append(args, f.Arg())
		}
	}
	return args
}

// PreviewString returns the command line the current selection composes
func (m *Model) PreviewString() string {
	args := m.SelectedArguments()
	if len(args) == 0 {
		return m.target
	}
	return m.target + " " + strings.Join(args, " ")
}
