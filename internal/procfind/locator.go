// Package procfind resolves the target application's PID from the live
// process table. Every call queries the table again: an application that
// restarted between polls has a new PID and the old one must not be reused.
package procfind

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mj1618/autosave-cli/internal/exec"
)

// DefaultTimeout bounds each pgrep invocation.
const DefaultTimeout = 2 * time.Second

// Locator finds processes by exact name using pgrep.
type Locator struct {
	runner  exec.CommandRunner
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a Locator. A zero timeout uses DefaultTimeout.
func New(runner exec.CommandRunner, timeout time.Duration, logger *slog.Logger) *Locator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Locator{runner: runner, timeout: timeout, logger: logger}
}

// Locate returns the first PID of the first candidate that is running.
// Candidates are tried in order; exact name equality only.
func (l *Locator) Locate(ctx context.Context, candidates []string) (int, bool) {
	for _, name := range candidates {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if ctx.Err() != nil {
			return 0, false
		}
		pid, ok := l.lookup(ctx, name)
		if ok {
			l.logger.Debug("process found", "name", name, "pid", pid)
			return pid, true
		}
	}
	l.logger.Debug("no candidate process running", "candidates", candidates)
	return 0, false
}

func (l *Locator) lookup(ctx context.Context, name string) (int, bool) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	out, err := l.runner.Run(ctx, "pgrep", "-x", name)
	if err != nil {
		// pgrep exits 1 when nothing matches.
		if code, ok := exec.ExitCode(err); ok && code == 1 {
			l.logger.Debug("no process with that name", "name", name)
		} else {
			l.logger.Warn("process lookup failed", "name", name, "error", err)
		}
		return 0, false
	}
	pids := ParsePIDs(out)
	if len(pids) == 0 {
		return 0, false
	}
	return pids[0], true
}

// ParsePIDs extracts one PID per line from pgrep output, skipping junk lines.
func ParsePIDs(out []byte) []int {
	var pids []int
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		pid, err := strconv.Atoi(line)
		if err != nil || pid <= 0 {
			continue
		}
		pids = append(pids, pid)
	}
	return pids
}
