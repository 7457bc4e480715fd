package types

import "fmt"

// Language selects the locale the target command is asked to produce its
// help text in
type Language int

const (
	// LanguageSystem keeps the user's locale untouched
	LanguageSystem Language = iota
	// LanguageEnglish forces a locale-neutral environment (LC_ALL=C) so flag
	// descriptions come back in a consistent language
	LanguageEnglish
)

// String returns a short label suitable for the title bar
func (l Language) String() string {
	if l == LanguageEnglish {
		return "EN"
	}
	return "sys"
}

// Toggle returns the other language
func (l Language) Toggle() Language {
	if l == LanguageEnglish {
		return LanguageSystem
	}
	return LanguageEnglish
}

// Flag represents one command-line option discovered in help text.
// At least one of Short/Long is always set; the extractor never produces
// a flag with neither.
type Flag struct {
	Short       string // single-dash form, e.g. "-v" (may be empty)
	Long        string // double-dash form, e.g. "--verbose" (may be empty)
	Description string
	Selected    bool
}

// Arg returns the canonical argument string: the long form when present,
// otherwise the short form. Help text gets regenerated wholesale on a
// language switch, so this string is the only stable identity a flag has
// across re-parses.
func (f Flag) Arg() string {
	if f.Long != "" {
		return f.Long
	}
	return f.Short
}

// Label formats the flag tokens for display, aligning long-only flags with
// the long column of "-x, --xyz" style entries
func (f Flag) Label() string {
	switch {
	case f.Short != "" && f.Long != "":
		return fmt.Sprintf("%s, %s", f.Short, f.Long)
	case f.Short != "":
		return f.Short
	default:
		return "    " + f.Long
	}
}
