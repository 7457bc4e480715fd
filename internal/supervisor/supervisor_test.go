package supervisor

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRun_CapturesStdout(t *testing.T) {
	requireSh(t)

	out, err := Run(CommandSpec{Program: "sh", Args: []string{"-c", "echo hello"}}, time.Second)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out != "hello\n" {
		t.Errorf("Expected \"hello\\n\", got %q", out)
	}
}

func TestRun_StderrIsCapturedButNotReturned(t *testing.T) {
	requireSh(t)

	out, err := Run(CommandSpec{Program: "sh", Args: []string{"-c", "echo out; echo err 1>&2"}}, time.Second)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out != "out\n" {
		t.Errorf("Expected stdout only, got %q", out)
	}
}

func TestRun_CommandFailed(t *testing.T) {
	requireSh(t)

	_, err := Run(CommandSpec{Program: "sh", Args: []string{"-c", "exit 3"}}, time.Second)
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("Expected ErrCommandFailed, got %v", err)
	}
}

func TestRun_TimeoutKillsChild(t *testing.T) {
	requireSh(t)

	timeout := 300 * time.Millisecond
	start := time.Now()
	_, err := Run(CommandSpec{Program: "sh", Args: []string{"-c", "sleep 10"}}, timeout)
	elapsed := time.Since(start)

	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("Expected ErrTimeout, got %v", err)
	}
	if elapsed < timeout {
		t.Errorf("Returned before the timeout: %s", elapsed)
	}
	// Budget is timeout plus one poll interval, with scheduling slack
	if elapsed > timeout+PollInterval+200*time.Millisecond {
		t.Errorf("Took too long to kill the child: %s", elapsed)
	}
}

func TestRun_ExtraEnvReachesChildOnly(t *testing.T) {
	requireSh(t)

	out, err := Run(CommandSpec{
		Program: "sh",
		Args:    []string{"-c", "echo $FLAGPICK_TEST_ENV"},
		Env:     []string{"FLAGPICK_TEST_ENV=present"},
	}, time.Second)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if strings.TrimSpace(out) != "present" {
		t.Errorf("Expected env value in child output, got %q", out)
	}

	if os.Getenv("FLAGPICK_TEST_ENV") != "" {
		t.Error("Child env leaked into the parent process")
	}
}

func TestRun_MissingProgram(t *testing.T) {
	_, err := Run(CommandSpec{Program: "definitely-not-a-real-program-42"}, time.Second)
	if err == nil {
		t.Fatal("Expected an error for a missing program")
	}
	if errors.Is(err, ErrTimeout) || errors.Is(err, ErrCommandFailed) {
		t.Errorf("Expected a start error, got %v", err)
	}
}
