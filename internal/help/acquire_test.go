package help

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/studiowebux/flagpick/internal/supervisor"
	"github.com/studiowebux/flagpick/internal/types"
)

// optionListing has three " -" occurrences, the minimum the acceptance
// heuristic believes
const optionListing = "Usage: frob [OPTIONS]\n -a desc\n -b desc\n -c desc\n"

type fakeCall struct {
	spec    supervisor.CommandSpec
	timeout time.Duration
}

// fakeRunner records every invocation and replays canned results
type fakeRunner struct {
	calls   []fakeCall
	results []func() (string, error)
}

func (f *fakeRunner) run(spec supervisor.CommandSpec, timeout time.Duration) (string, error) {
	f.calls = append(f.calls, fakeCall{spec: spec, timeout: timeout})
	if len(f.results) == 0 {
		return "", errors.New("unexpected call")
	}
	next := f.results[0]
	f.results = f.results[1:]
	return next()
}

func ok(text string) func() (string, error) {
	return func() (string, error) { return text, nil }
}

func fail(err error) func() (string, error) {
	return func() (string, error) { return "", err }
}

func hasEnv(env []string, entry string) bool {
	for _, e := range env {
		if e == entry {
			return true
		}
	}
	return false
}

func TestAcquire_NativeHelpAccepted(t *testing.T) {
	runner := &fakeRunner{results: []func() (string, error){ok(optionListing)}}
	a := &Acquirer{run: runner.run}

	text, err := a.Acquire("frob", types.LanguageSystem)
	if err != nil {
		t.Fatalf("Acquire returned error: %v", err)
	}
	if text != optionListing {
		t.Errorf("Expected the --help output back, got %q", text)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("Expected 1 supervised call, got %d", len(runner.calls))
	}

	call := runner.calls[0]
	if call.spec.Program != "frob" {
		t.Errorf("Expected program frob, got %q", call.spec.Program)
	}
	if len(call.spec.Args) != 1 || call.spec.Args[0] != "--help" {
		t.Errorf("Expected args [--help], got %v", call.spec.Args)
	}
	if call.timeout != time.Second {
		t.Errorf("Expected 1s timeout for --help, got %s", call.timeout)
	}
	if !hasEnv(call.spec.Env, "COLUMNS=500") {
		t.Errorf("Expected COLUMNS=500 in env, got %v", call.spec.Env)
	}
	if hasEnv(call.spec.Env, "LC_ALL=C") {
		t.Errorf("LC_ALL=C must not be set in system language mode: %v", call.spec.Env)
	}
}

func TestAcquire_HeuristicBoundary(t *testing.T) {
	// Exactly 3 " -" occurrences: accepted, man is never consulted
	accepted := "x -a x -b x -c"
	if got := strings.Count(accepted, " -"); got != 3 {
		t.Fatalf("Test text must contain exactly 3 \" -\", has %d", got)
	}

	runner := &fakeRunner{results: []func() (string, error){ok(accepted)}}
	a := &Acquirer{run: runner.run}

	text, err := a.Acquire("frob", types.LanguageSystem)
	if err != nil {
		t.Fatalf("Acquire returned error: %v", err)
	}
	if text != accepted {
		t.Errorf("Expected accepted text back, got %q", text)
	}
	if len(runner.calls) != 1 {
		t.Errorf("Expected no man fallback for accepted text, got %d calls", len(runner.calls))
	}

	// Exactly 2: rejected, falls through to man
	rejected := "x -a x -b"
	runner = &fakeRunner{results: []func() (string, error){ok(rejected), ok("MAN PAGE TEXT")}}
	a = &Acquirer{run: runner.run}

	text, err = a.Acquire("frob", types.LanguageSystem)
	if err != nil {
		t.Fatalf("Acquire returned error: %v", err)
	}
	if text != "MAN PAGE TEXT" {
		t.Errorf("Expected man page text after rejection, got %q", text)
	}
	if len(runner.calls) != 2 {
		t.Fatalf("Expected 2 supervised calls, got %d", len(runner.calls))
	}
}

func TestAcquire_NewlineDashHeuristic(t *testing.T) {
	// No " -" hits but 3 "\n-" hits: still accepted
	text := "Usage\n-a desc\n-b desc\n-c desc"
	runner := &fakeRunner{results: []func() (string, error){ok(text)}}
	a := &Acquirer{run: runner.run}

	got, err := a.Acquire("frob", types.LanguageSystem)
	if err != nil {
		t.Fatalf("Acquire returned error: %v", err)
	}
	if got != text {
		t.Errorf("Expected text accepted via newline-dash heuristic, got %q", got)
	}
}

func TestAcquire_ManFallbackOnError(t *testing.T) {
	runner := &fakeRunner{results: []func() (string, error){
		fail(supervisor.ErrTimeout),
		ok("MAN PAGE TEXT"),
	}}
	a := &Acquirer{run: runner.run}

	text, err := a.Acquire("frob", types.LanguageEnglish)
	if err != nil {
		t.Fatalf("Acquire returned error: %v", err)
	}
	if text != "MAN PAGE TEXT" {
		t.Errorf("Expected man page text, got %q", text)
	}

	if len(runner.calls) != 2 {
		t.Fatalf("Expected 2 supervised calls, got %d", len(runner.calls))
	}

	man := runner.calls[1]
	if man.spec.Program != "man" {
		t.Errorf("Expected fallback program man, got %q", man.spec.Program)
	}
	if len(man.spec.Args) != 1 || man.spec.Args[0] != "frob" {
		t.Errorf("Expected args [frob], got %v", man.spec.Args)
	}
	if man.timeout != 2*time.Second {
		t.Errorf("Expected 2s timeout for man, got %s", man.timeout)
	}

	for _, entry := range []string{"PAGER=cat", "MANROFFOPT=-c", "GROFF_NO_SGR=1", "COLUMNS=500", "LC_ALL=C"} {
		if !hasEnv(man.spec.Env, entry) {
			t.Errorf("Expected %s in man env, got %v", entry, man.spec.Env)
		}
	}
}

func TestAcquire_EnglishSetsLocaleOverride(t *testing.T) {
	runner := &fakeRunner{results: []func() (string, error){ok(optionListing)}}
	a := &Acquirer{run: runner.run}

	if _, err := a.Acquire("frob", types.LanguageEnglish); err != nil {
		t.Fatalf("Acquire returned error: %v", err)
	}

	if !hasEnv(runner.calls[0].spec.Env, "LC_ALL=C") {
		t.Errorf("Expected LC_ALL=C in --help env, got %v", runner.calls[0].spec.Env)
	}
}

func TestAcquire_NoHelpAvailable(t *testing.T) {
	runner := &fakeRunner{results: []func() (string, error){
		fail(supervisor.ErrCommandFailed),
		fail(supervisor.ErrCommandFailed),
	}}
	a := &Acquirer{run: runner.run}

	_, err := a.Acquire("frob", types.LanguageSystem)
	if !errors.Is(err, ErrNoHelpAvailable) {
		t.Fatalf("Expected ErrNoHelpAvailable, got %v", err)
	}
}
