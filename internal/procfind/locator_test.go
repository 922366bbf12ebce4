package procfind

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/mj1618/autosave-cli/internal/exec"
)

// scriptedRunner answers pgrep calls from a map keyed by process name.
type scriptedRunner struct {
	outputs map[string]string
	calls   []string
	block   bool
	err     error // returned instead of the no-match exit when set
}

func (r *scriptedRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	target := args[len(args)-1]
	r.calls = append(r.calls, target)
	if r.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if r.err != nil {
		return nil, r.err
	}
	out, ok := r.outputs[target]
	if !ok {
		return nil, &exec.ExitError{Name: name, Code: 1}
	}
	return []byte(out), nil
}

func TestLocate_FirstCandidateWins(t *testing.T) {
	r := &scriptedRunner{outputs: map[string]string{
		"zoom.us":        "101\n",
		"Zoom Workplace": "202\n",
	}}
	l := New(r, time.Second, nil)

	pid, ok := l.Locate(context.Background(), []string{"zoom.us", "Zoom Workplace"})
	if !ok || pid != 101 {
		t.Fatalf("Locate = (%d, %v), want (101, true)", pid, ok)
	}
	if !reflect.DeepEqual(r.calls, []string{"zoom.us"}) {
		t.Errorf("calls = %v, want only the first candidate", r.calls)
	}
}

func TestLocate_FallsThroughCandidates(t *testing.T) {
	r := &scriptedRunner{outputs: map[string]string{"Zoom Workplace": "202\n303\n"}}
	l := New(r, time.Second, nil)

	pid, ok := l.Locate(context.Background(), []string{"zoom.us", "Zoom Workplace"})
	if !ok || pid != 202 {
		t.Fatalf("Locate = (%d, %v), want (202, true)", pid, ok)
	}
	if !reflect.DeepEqual(r.calls, []string{"zoom.us", "Zoom Workplace"}) {
		t.Errorf("calls = %v", r.calls)
	}
}

func TestLocate_NoneRunning(t *testing.T) {
	r := &scriptedRunner{outputs: map[string]string{}}
	l := New(r, time.Second, nil)

	if pid, ok := l.Locate(context.Background(), []string{"zoom.us", "", "Zoom Workplace"}); ok {
		t.Fatalf("Locate = (%d, true), want absent", pid)
	}
	if len(r.calls) != 2 {
		t.Errorf("blank candidates should be skipped, calls = %v", r.calls)
	}
}

func TestLocate_QueriesFreshEachCall(t *testing.T) {
	r := &scriptedRunner{outputs: map[string]string{"zoom.us": "101\n"}}
	l := New(r, time.Second, nil)

	if pid, _ := l.Locate(context.Background(), []string{"zoom.us"}); pid != 101 {
		t.Fatalf("first Locate = %d, want 101", pid)
	}
	// Application restarted under a new PID.
	r.outputs["zoom.us"] = "555\n"
	if pid, _ := l.Locate(context.Background(), []string{"zoom.us"}); pid != 555 {
		t.Errorf("second Locate = %d, want 555", pid)
	}
	if len(r.calls) != 2 {
		t.Errorf("expected two pgrep calls, got %d", len(r.calls))
	}
}

func TestLocate_TimeoutIsAbsent(t *testing.T) {
	r := &scriptedRunner{block: true}
	l := New(r, 20*time.Millisecond, nil)

	start := time.Now()
	if _, ok := l.Locate(context.Background(), []string{"zoom.us"}); ok {
		t.Fatal("expected absent on timeout")
	}
	if time.Since(start) > time.Second {
		t.Errorf("Locate took %v, timeout not applied", time.Since(start))
	}
}

func TestLocate_LookupFailureIsLogged(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantWarn bool
	}{
		{name: "no match", err: &exec.ExitError{Name: "pgrep", Code: 1}},
		{name: "bad invocation", err: &exec.ExitError{Name: "pgrep", Code: 2, Stderr: "invalid option"}, wantWarn: true},
		{name: "pgrep missing", err: errors.New(`run pgrep: exec: "pgrep": executable file not found`), wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			l := New(&scriptedRunner{err: tt.err}, time.Second, logger)

			if _, ok := l.Locate(context.Background(), []string{"zoom.us"}); ok {
				t.Fatal("expected absent")
			}
			if got := strings.Contains(buf.String(), "level=WARN"); got != tt.wantWarn {
				t.Errorf("warned = %v, want %v\n%s", got, tt.wantWarn, buf.String())
			}
		})
	}
}

func TestParsePIDs(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"", nil},
		{"123\n", []int{123}},
		{" 123 \n\n456\n", []int{123, 456}},
		{"abc\n789\n-1\n0\n", []int{789}},
	}
	for _, tt := range tests {
		if got := ParsePIDs([]byte(tt.in)); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParsePIDs(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
