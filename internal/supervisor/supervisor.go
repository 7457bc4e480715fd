// Package supervisor runs external commands with a hard wall-clock timeout.
//
// Asking an arbitrary program for --help is not safe: some programs start an
// interactive or animated display instead of printing a banner, and some
// block waiting for input. The supervisor polls the child at a fixed
// interval and kills it once the timeout is exceeded, so no acquisition call
// can hang the tool for longer than its budget plus one poll interval.
package supervisor

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// PollInterval is how often the child is checked for liveness
const PollInterval = 50 * time.Millisecond

var (
	// ErrTimeout is returned when the child had to be killed because it
	// outlived its time budget
	ErrTimeout = errors.New("command timed out")

	// ErrCommandFailed is returned when the child exited with a non-zero status
	ErrCommandFailed = errors.New("command failed")
)

// CommandSpec describes a child process to supervise
type CommandSpec struct {
	Program string
	Args    []string
	// Env holds extra KEY=value entries appended to the parent's environment
	// for the child only. The parent's own environment is never modified.
	Env []string
}

// Run spawns the command with stdout and stderr captured (never the
// controlling terminal), waits up to timeout for it to exit, and returns the
// captured stdout as text. A child still running when the timeout expires is
// forcibly killed and reaped, so no residual process is left behind.
func Run(spec CommandSpec, timeout time.Duration) (string, error) {
	cmd := exec.Command(spec.Program, spec.Args...)
	if len(spec.Env) > 0 {
		cmd.Env = append(os.Environ(), spec.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("failed to start %s: %w", spec.Program, err)
	}

	// Wait in a goroutine so the controlling loop below stays non-blocking
	// and keeps the ability to intervene with a kill. A plain cmd.Wait()
	// here would remove that option.
	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	for {
		select {
		case err := <-done:
			if err != nil {
				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) {
					return "", fmt.Errorf("%w: %s %s", ErrCommandFailed, spec.Program, exitErr.ProcessState)
				}
				return "", fmt.Errorf("failed to run %s: %w", spec.Program, err)
			}
			return stdout.String(), nil

		case <-ticker.C:
			if time.Now().After(deadline) {
				_ = cmd.Process.Kill()
				<-done // reap so nothing is left behind
				return "", fmt.Errorf("%w: %s did not finish within %s", ErrTimeout, spec.Program, timeout)
			}
		}
	}
}
