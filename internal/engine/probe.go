package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mj1618/autosave-cli/internal/model"
)

// Match decisions reported by Probe.
const (
	DecisionLabel     = "label"
	DecisionNotButton = "text-not-button"
	DecisionFallback  = "last-button"
)

// ProbeReport is a dry run of one attempt: everything up to the press.
type ProbeReport struct {
	Status   model.Status    `yaml:"status"             json:"status"`
	PID      int             `yaml:"pid,omitempty"      json:"pid,omitempty"`
	Windows  []model.Window  `yaml:"windows,omitempty"  json:"windows,omitempty"`
	Scope    string          `yaml:"scope,omitempty"    json:"scope,omitempty"`
	Rule     ScopeRule       `yaml:"rule,omitempty"     json:"rule,omitempty"`
	Target   *model.Element  `yaml:"target,omitempty"   json:"target,omitempty"`
	Elements []model.Element `yaml:"elements,omitempty" json:"elements,omitempty"`
	Trace    []TraceEvent    `yaml:"trace,omitempty"    json:"trace,omitempty"`
}

// Windows locates the process and reports its windows and the scope that
// would be selected. Status is empty when a scope was found.
func (e *Engine) Windows(ctx context.Context, activate bool) ProbeReport {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	tr := &tracer{logger: e.logger.With("probe_id", uuid.NewString()), keep: e.opts.Debug}
	var res Result
	_, status, _ := e.resolveScope(ctx, activate, tr, &res)
	return ProbeReport{
		Status:  status,
		PID:     res.PID,
		Windows: res.Windows,
		Scope:   res.Scope,
		Rule:    res.Rule,
		Trace:   tr.events,
	}
}

// Probe runs locate, select, walk and match without pressing anything.
// Every scanned element is reported with its match decision. Status is the
// one an attempt would return if the press succeeded.
func (e *Engine) Probe(ctx context.Context, activate bool) ProbeReport {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	tr := &tracer{logger: e.logger.With("probe_id", uuid.NewString()), keep: e.opts.Debug}
	var res Result
	window, status, ok := e.resolveScope(ctx, activate, tr, &res)
	report := ProbeReport{
		Status:  status,
		PID:     res.PID,
		Windows: res.Windows,
		Scope:   res.Scope,
		Rule:    res.Rule,
	}
	if !ok {
		report.Trace = tr.events
		return report
	}

	nodes := Walk(ctx, window, e.opts.MaxDepth, func(depth int, err error) {
		tr.add(StageWalk, "children unreadable, skipping branch", "depth", depth, "error", err)
	})

	report.Elements = make([]model.Element, len(nodes))
	for i, n := range nodes {
		ev := e.matcher.Evaluate(n.Element, true)
		el := snapshot(nodes, i, ev.Candidate)
		if ev.TextMatch && !ev.IsButton {
			el.Match = DecisionNotButton
		}
		report.Elements[i] = el
	}

	found, ok := e.matcher.Find(ctx, nodes, nil)
	switch {
	case !ok:
		report.Status = model.StatusNotFound
	case found.ByLabel:
		report.Status = model.StatusOKLabel
		report.Elements[found.Index].Match = DecisionLabel
	default:
		report.Status = model.StatusOKFallback
		report.Elements[found.Index].Match = DecisionFallback
	}
	if ok {
		target := report.Elements[found.Index]
		report.Target = &target
	}
	tr.add(StageMatch, "probe finished", "status", report.Status, "scanned", len(nodes))
	report.Trace = tr.events
	return report
}

func (e *Engine) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.opts.Timeout)
}

// elapsedSince formats a duration the way Result.Elapsed does.
func elapsedSince(start time.Time) string {
	return time.Since(start).Round(time.Millisecond).String()
}
