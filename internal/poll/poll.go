// Package poll runs the find-and-press tick on a fixed interval.
package poll

import (
	"context"
	"log/slog"
	"time"
)

// Tick is one unit of work. Its context is not cancelled by the loop's
// context, so a tick that has started always runs to completion.
type Tick func(ctx context.Context)

// Loop sleeps Interval, runs one tick, and repeats until its context is
// cancelled. With Once set it runs a single tick without sleeping first.
// An Interval of zero runs ticks back to back.
type Loop struct {
	Interval time.Duration
	Once     bool
	Logger   *slog.Logger

	wait func(ctx context.Context, d time.Duration) bool
}

// Run blocks until the loop stops and returns the number of ticks run.
// Cancellation is only observed between ticks.
func (l *Loop) Run(ctx context.Context, tick Tick) int {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	wait := l.wait
	if wait == nil {
		wait = sleep
	}

	ticks := 0
	for {
		if l.Interval > 0 && !l.Once {
			if !wait(ctx, l.Interval) {
				logger.Debug("poll loop stopped while waiting", "ticks", ticks)
				return ticks
			}
		}
		if ctx.Err() != nil {
			logger.Debug("poll loop stopped", "ticks", ticks)
			return ticks
		}

		tick(context.WithoutCancel(ctx))
		ticks++

		if l.Once {
			return ticks
		}
	}
}

// sleep waits for d and reports whether it elapsed before ctx was done.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
