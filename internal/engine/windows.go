package engine

import (
	"context"
	"errors"
	"time"

	"github.com/mj1618/autosave-cli/internal/platform"
)

// enumerateWindows returns the top-level windows of pid. An empty answer is
// retried opts.WindowRetries times with a linearly growing delay, since an
// application that is still starting reports no windows. Query errors
// (including a stale PID) yield no windows straight away.
func (e *Engine) enumerateWindows(ctx context.Context, pid int, tr *tracer) []platform.Element {
	for attempt := 0; ; attempt++ {
		windows, err := e.ax.Windows(pid)
		if err != nil {
			if errors.Is(err, platform.ErrStaleProcess) {
				tr.add(StageWindows, "pid is stale, application may have restarted", "pid", pid, "error", err)
			} else {
				tr.add(StageWindows, "window query failed", "pid", pid, "error", err)
			}
			return nil
		}
		if len(windows) > 0 {
			tr.add(StageWindows, "windows found", "count", len(windows))
			return windows
		}
		if attempt >= e.opts.WindowRetries {
			tr.add(StageWindows, "no windows after retries", "attempts", attempt+1)
			return nil
		}

		delay := e.opts.WindowBackoff * time.Duration(attempt+1)
		tr.add(StageWindows, "no windows found, retrying", "delay", delay, "retry", attempt+1, "of", e.opts.WindowRetries)
		if err := e.sleep(ctx, delay); err != nil {
			tr.add(StageWindows, "retry abandoned", "error", err)
			return nil
		}
	}
}

// sleepCtx waits for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
