package exec

import (
	"context"
	"errors"
	"os/exec"
	"reflect"
	"strings"
	"testing"
)

type scriptedCmd struct {
	output []byte
	err    error
}

func (c scriptedCmd) Output() ([]byte, error) {
	return c.output, c.err
}

func withCommand(t *testing.T, cmd scriptedCmd) *[]string {
	t.Helper()
	orig := execCommand
	t.Cleanup(func() { execCommand = orig })

	var got []string
	execCommand = func(ctx context.Context, name string, args ...string) outputter {
		got = append([]string{name}, args...)
		return cmd
	}
	return &got
}

func TestExecRunner_Run(t *testing.T) {
	tests := []struct {
		name     string
		cmd      scriptedCmd
		wantOut  string
		wantCode int
		isExit   bool
		wantErr  bool
	}{
		{
			name:    "successful command",
			cmd:     scriptedCmd{output: []byte("4242\n")},
			wantOut: "4242\n",
		},
		{
			name:     "non-zero exit",
			cmd:      scriptedCmd{err: &exec.ExitError{Stderr: []byte("usage\n")}},
			wantCode: -1,
			isExit:   true,
			wantErr:  true,
		},
		{
			name:    "start failure",
			cmd:     scriptedCmd{err: errors.New("executable file not found")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := withCommand(t, tt.cmd)

			out, err := NewExecRunner().Run(context.Background(), "pgrep", "-x", "zoom.us")

			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(*got, []string{"pgrep", "-x", "zoom.us"}) {
				t.Errorf("command = %v, want pgrep -x zoom.us", *got)
			}
			if string(out) != tt.wantOut {
				t.Errorf("Run() output = %q, want %q", out, tt.wantOut)
			}
			code, ok := ExitCode(err)
			if ok != tt.isExit || code != tt.wantCode {
				t.Errorf("ExitCode = (%d, %v), want (%d, %v)", code, ok, tt.wantCode, tt.isExit)
			}
		})
	}
}

func TestExecRunner_ExitErrorCarriesStderr(t *testing.T) {
	withCommand(t, scriptedCmd{err: &exec.ExitError{Stderr: []byte("pgrep: invalid option\n")}})

	_, err := NewExecRunner().Run(context.Background(), "pgrep", "-x", "zoom.us")

	var ee *ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("error = %v, want *ExitError", err)
	}
	if ee.Name != "pgrep" || ee.Stderr != "pgrep: invalid option" {
		t.Errorf("ExitError = %+v", ee)
	}
	if !strings.Contains(err.Error(), "invalid option") {
		t.Errorf("Error() = %q, want stderr included", err.Error())
	}
}

func TestExecRunner_CancelledContext(t *testing.T) {
	withCommand(t, scriptedCmd{err: &exec.ExitError{}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExecRunner().Run(ctx, "pgrep", "-x", "zoom.us")

	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if _, ok := ExitCode(err); ok {
		t.Error("a killed command should not report an exit code")
	}
}

func TestExitError_Error(t *testing.T) {
	err := &ExitError{Name: "pgrep", Code: 1}
	if got := err.Error(); got != "pgrep exited with status 1" {
		t.Errorf("Error() = %q", got)
	}
}
