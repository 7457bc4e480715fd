// Package help acquires raw help text for an arbitrary command.
//
// Native --help output is tried first: it is fast and closest to canonical
// flag syntax, but plenty of programs don't have it, hang on it, or print
// something that isn't an option listing. The manual page is the fallback:
// slower and noisier, but far more universally available, hence the larger
// time budget.
package help

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/studiowebux/flagpick/internal/supervisor"
	"github.com/studiowebux/flagpick/internal/types"
)

const (
	helpTimeout = 1 * time.Second
	manTimeout  = 2 * time.Second

	// minDashHits is the minimum number of dash occurrences for --help
	// output to be believed. Below this the text is prose or garbage and
	// the man page is worth the extra wait.
	minDashHits = 3
)

// ErrNoHelpAvailable is returned when both --help and the man page failed
// to produce usable text
var ErrNoHelpAvailable = errors.New("no help available")

// Runner executes one supervised command; tests swap it out
type Runner func(spec supervisor.CommandSpec, timeout time.Duration) (string, error)

// Acquirer fetches help text through a two-phase strategy
type Acquirer struct {
	run Runner
}

// NewAcquirer returns an Acquirer backed by the process supervisor
func NewAcquirer() *Acquirer {
	return &Acquirer{run: supervisor.Run}
}

// Acquire returns the raw help text for command, trying `command --help`
// first and `man command` second. The first phase to produce believable
// text wins; ErrNoHelpAvailable is returned once both are exhausted.
func (a *Acquirer) Acquire(command string, lang types.Language) (string, error) {
	text, err := a.run(supervisor.CommandSpec{
		Program: command,
		Args:    []string{"--help"},
		Env:     helpEnv(lang),
	}, helpTimeout)
	if err == nil && looksLikeOptionListing(text) {
		return text, nil
	}

	text, err = a.run(supervisor.CommandSpec{
		Program: "man",
		Args:    []string{command},
		Env:     manEnv(lang),
	}, manTimeout)
	if err == nil {
		return text, nil
	}

	return "", fmt.Errorf("%w for %q", ErrNoHelpAvailable, command)
}

// looksLikeOptionListing reports whether text plausibly contains an option
// listing: at least minDashHits occurrences of " -" or of "\n-". Keeps
// free-form prose and empty output from reaching the extractor when the man
// page would do better.
func looksLikeOptionListing(text string) bool {
	return strings.Count(text, " -") >= minDashHits ||
		strings.Count(text, "\n-") >= minDashHits
}

// helpEnv builds the child environment for the --help invocation. COLUMNS
// is set wide so the program doesn't wrap descriptions onto continuation
// lines the extractor can't see.
func helpEnv(lang types.Language) []string {
	env := []string{"COLUMNS=500"}
	if lang == types.LanguageEnglish {
		env = append(env, "LC_ALL=C")
	}
	return env
}

// manEnv builds the child environment for the man invocation: plain-text
// pager, no overstrike formatting, no color escapes, same width and locale
// hints as --help
func manEnv(lang types.Language) []string {
	env := []string{
		"PAGER=cat",
		"MANROFFOPT=-c",
		"GROFF_NO_SGR=1",
		"COLUMNS=500",
	}
	if lang == types.LanguageEnglish {
		env = append(env, "LC_ALL=C")
	}
	return env
}
