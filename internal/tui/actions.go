package tui

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/sahilm/fuzzy"
)

// toggleLanguage re-acquires the help text in the other language. A failed
// switch leaves the flag list, selection and cursor untouched; the picker
// just says so and keeps going. Best-effort by policy, not a swallowed bug.
func (m *Model) toggleLanguage() {
	lang := m.sel.Language().Toggle()

	if err := m.sel.SwitchLanguage(lang); err != nil {
		m.errorMsg = fmt.Sprintf("Language unchanged: %v", err)
		return
	}

	// The list was rebuilt, so search indices no longer point anywhere useful
	m.searchMatches = nil
	m.searchIndex = 0
	m.adjustScrollOffset()
	m.statusMsg = fmt.Sprintf("Help language: %s", lang)
}

// copyPreview puts the composed command line on the system clipboard
func (m *Model) copyPreview() {
	if err := clipboard.WriteAll(m.sel.PreviewString()); err != nil {
		m.errorMsg = fmt.Sprintf("Failed to copy: %v", err)
		return
	}
	m.statusMsg = "Command copied to clipboard"
}

// isRegexPattern detects if a pattern looks like regex
func isRegexPattern(s string) bool {
	regexChars := ".*+?[]{}()|^$\\"
	for _, char := range regexChars {
		if strings.ContainsRune(s, char) {
			return true
		}
	}
	return false
}

// performSearch matches the query against flag tokens and descriptions.
// Queries that look like regex are compiled and matched as such; everything
// else goes through fuzzy matching so "dryrun" still finds --dry-run.
func (m *Model) performSearch() {
	m.searchMatches = nil
	m.searchIndex = 0
	m.errorMsg = ""

	if m.searchQuery == "" {
		return
	}

	haystack := make([]string, m.sel.Len())
	for i, f := range m.sel.Flags() {
		haystack[i] = f.Label() + " " + f.Description
	}

	mode := "fuzzy"
	if isRegexPattern(m.searchQuery) {
		if pattern, err := regexp.Compile(m.searchQuery); err == nil {
			mode = "regex"
			for i, s := range haystack {
				if pattern.MatchString(s) {
					m.searchMatches = append(m.searchMatches, i)
				}
			}
		}
	}

	if mode == "fuzzy" {
		for _, match := range fuzzy.Find(m.searchQuery, haystack) {
			m.searchMatches = append(m.searchMatches, match.Index)
		}
		// Ranked order is nice for the first jump but confusing when
		// cycling, so keep matches in list order
		sort.Ints(m.searchMatches)
	}

	if len(m.searchMatches) == 0 {
		m.errorMsg = "No matching flags"
		return
	}

	m.jumpToMatch(0, mode)
}

// nextSearchMatch advances to the next search match, wrapping around
func (m *Model) nextSearchMatch() {
	if len(m.searchMatches) == 0 {
		return
	}
	m.jumpToMatch((m.searchIndex+1)%len(m.searchMatches), "")
}

// prevSearchMatch goes back to the previous search match, wrapping around
func (m *Model) prevSearchMatch() {
	if len(m.searchMatches) == 0 {
		return
	}
	i := m.searchIndex - 1
	if i < 0 {
		i = len(m.searchMatches) - 1
	}
	m.jumpToMatch(i, "")
}

// jumpToMatch moves the cursor to search match i
func (m *Model) jumpToMatch(i int, mode string) {
	m.searchIndex = i
	m.sel.SetCursor(m.searchMatches[i])
	m.adjustScrollOffset()

	if mode != "" {
		m.statusMsg = fmt.Sprintf("Match %d of %d (%s)", i+1, len(m.searchMatches), mode)
	} else {
		m.statusMsg = fmt.Sprintf("Match %d of %d", i+1, len(m.searchMatches))
	}
}

// listHeight calculates the height available for the flag list
func (m *Model) listHeight() int {
	// Account for the title, list borders and footer, preview box and status bar
	h := m.height - 10
	if h < 1 {
		h = 1
	}
	return h
}

// adjustScrollOffset keeps the cursor inside the visible window
func (m *Model) adjustScrollOffset() {
	h := m.listHeight()
	cursor := m.sel.Cursor()

	if cursor < m.offset {
		m.offset = cursor
	}
	if cursor >= m.offset+h {
		m.offset = cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
