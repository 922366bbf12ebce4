// Package exec runs external commands behind an interface so callers can be
// tested with scripted output.
package exec

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner runs a command and returns its standard output.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExitError reports a command that ran to completion with a non-zero status.
type ExitError struct {
	Name   string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
	}
	return fmt.Sprintf("%s exited with status %d: %s", e.Name, e.Code, e.Stderr)
}

// ExitCode returns the status carried by err when the command ran and
// exited non-zero. ok is false for start failures and cancellations.
func ExitCode(err error) (code int, ok bool) {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code, true
	}
	return 0, false
}

// ExecRunner runs real commands with os/exec.
type ExecRunner struct{}

// NewExecRunner creates an ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes name and returns its standard output. The command is killed
// when ctx is done, in which case the context error is returned. A non-zero
// exit is reported as *ExitError.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := execCommand(ctx, name, args...).Output()
	if err == nil {
		return out, nil
	}
	if ctx.Err() != nil {
		return out, fmt.Errorf("%s: %w", name, ctx.Err())
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return out, &ExitError{Name: name, Code: ee.ExitCode(), Stderr: strings.TrimSpace(string(ee.Stderr))}
	}
	return out, fmt.Errorf("run %s: %w", name, err)
}

// execCommand is a variable to allow testing.
var execCommand = func(ctx context.Context, name string, args ...string) outputter {
	return exec.CommandContext(ctx, name, args...)
}

// outputter is the part of exec.Cmd the runner uses.
type outputter interface {
	Output() ([]byte, error)
}
