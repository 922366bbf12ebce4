// Package engine finds a button in the target application's accessibility
// tree and presses it. One Attempt runs the whole chain: locate process,
// enumerate windows, select the scope window, walk, match, press. Each stage
// ends the attempt with a terminal Status when it fails. Nothing is carried
// from one attempt to the next.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mj1618/autosave-cli/internal/model"
	"github.com/mj1618/autosave-cli/internal/platform"
)

// Labels reported for an attempt, depending on whether it requested focus.
const (
	LabelBackground = "BG"
	LabelFocus      = "FOCUS"
)

// Options configures the engine. It is fixed for the life of an Engine.
type Options struct {
	Text          string
	Pane          string
	Apps          []string
	Mode          model.Mode
	ScopePolicy   model.ScopePolicy
	MatchPolicy   model.MatchPolicy
	SessionHint   string
	MaxDepth      int
	WindowRetries int
	WindowBackoff time.Duration
	SettleDelay   time.Duration
	Timeout       time.Duration
	Debug         bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Text:          "save transcript",
		Pane:          "Transcript",
		Apps:          []string{"zoom.us", "Zoom Workplace"},
		Mode:          model.ModeAuto,
		ScopePolicy:   model.ScopeStrict,
		MatchPolicy:   model.MatchLabel,
		SessionHint:   "meeting",
		MaxDepth:      DefaultMaxDepth,
		WindowRetries: 3,
		WindowBackoff: 500 * time.Millisecond,
		SettleDelay:   300 * time.Millisecond,
		Timeout:       10 * time.Second,
	}
}

// Result describes one attempt.
type Result struct {
	ID      string         `yaml:"id"                json:"id"`
	Label   string         `yaml:"label"             json:"label"`
	Status  model.Status   `yaml:"status"            json:"status"`
	PID     int            `yaml:"pid,omitempty"     json:"pid,omitempty"`
	Windows []model.Window `yaml:"windows,omitempty" json:"windows,omitempty"`
	Scope   string         `yaml:"scope,omitempty"   json:"scope,omitempty"`
	Rule    ScopeRule      `yaml:"rule,omitempty"    json:"rule,omitempty"`
	Scanned int            `yaml:"scanned,omitempty" json:"scanned,omitempty"`
	Match   *model.Element `yaml:"match,omitempty"   json:"match,omitempty"`
	Error   string         `yaml:"error,omitempty"   json:"error,omitempty"`
	Elapsed string         `yaml:"elapsed"           json:"elapsed"`
	Trace   []TraceEvent   `yaml:"trace,omitempty"   json:"trace,omitempty"`
}

// Outcome is the result of one poll tick after the mode policy is applied.
// Status and Label are what gets reported; Attempts lists every attempt run.
type Outcome struct {
	Label    string       `yaml:"label"    json:"label"`
	Status   model.Status `yaml:"status"   json:"status"`
	Attempts []Result     `yaml:"attempts" json:"attempts"`
}

// Engine runs find-and-press attempts against a platform provider.
type Engine struct {
	opts      Options
	procs     platform.ProcessLocator
	ax        platform.Accessibility
	activator platform.Activator
	matcher   *Matcher
	logger    *slog.Logger
	sleep     func(ctx context.Context, d time.Duration) error
}

// New creates an Engine. The provider's Activator may be nil, in which case
// focus requests are skipped.
func New(p *platform.Provider, opts Options, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		opts:      opts,
		procs:     p.Processes,
		ax:        p.Accessibility,
		activator: p.Activator,
		matcher:   NewMatcher(opts.Text, opts.MatchPolicy),
		logger:    logger,
		sleep:     sleepCtx,
	}
}

// Options returns the engine's configuration.
func (e *Engine) Options() Options {
	return e.opts
}

// Run performs one poll tick according to the configured mode.
func (e *Engine) Run(ctx context.Context) Outcome {
	return e.RunMode(ctx, e.opts.Mode)
}

// RunMode performs one poll tick with an explicit mode:
//
//   - force-focus: one attempt with activation
//   - background-only: one attempt without activation
//   - auto: one attempt without activation and, if it did not press
//     anything, a second one with activation. The focused attempt is
//     reported when it succeeded, the background attempt otherwise.
func (e *Engine) RunMode(ctx context.Context, mode model.Mode) Outcome {
	switch mode {
	case model.ModeForceFocus:
		r := e.Attempt(ctx, true)
		return Outcome{Label: r.Label, Status: r.Status, Attempts: []Result{r}}
	case model.ModeBackgroundOnly:
		r := e.Attempt(ctx, false)
		return Outcome{Label: r.Label, Status: r.Status, Attempts: []Result{r}}
	}

	bg := e.Attempt(ctx, false)
	if bg.Status.OK() {
		return Outcome{Label: bg.Label, Status: bg.Status, Attempts: []Result{bg}}
	}
	if ctx.Err() != nil {
		return Outcome{Label: bg.Label, Status: bg.Status, Attempts: []Result{bg}}
	}

	e.logger.Debug("background attempt did not press, retrying with focus", "status", bg.Status)
	fg := e.Attempt(ctx, true)
	out := Outcome{Attempts: []Result{bg, fg}}
	if fg.Status.OK() {
		out.Label, out.Status = fg.Label, fg.Status
	} else {
		out.Label, out.Status = bg.Label, bg.Status
	}
	return out
}

// Attempt runs the full chain once. When activate is set the target is
// brought to the foreground (best effort) before its windows are read.
// The attempt is bounded by Options.Timeout.
func (e *Engine) Attempt(ctx context.Context, activate bool) Result {
	start := time.Now()
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	res := Result{ID: uuid.NewString(), Label: LabelBackground}
	if activate {
		res.Label = LabelFocus
	}
	tr := &tracer{logger: e.logger.With("attempt_id", res.ID, "label", res.Label), keep: e.opts.Debug}

	res.Status = e.attempt(ctx, activate, tr, &res)
	res.Elapsed = elapsedSince(start)
	res.Trace = tr.events

	tr.logger.Info("attempt finished", "status", res.Status, "elapsed", res.Elapsed)
	return res
}

func (e *Engine) attempt(ctx context.Context, activate bool, tr *tracer, res *Result) model.Status {
	window, status, ok := e.resolveScope(ctx, activate, tr, res)
	if !ok {
		return status
	}

	nodes := Walk(ctx, window, e.opts.MaxDepth, func(depth int, err error) {
		tr.add(StageWalk, "children unreadable, skipping branch", "depth", depth, "error", err)
	})
	res.Scanned = len(nodes)
	tr.add(StageWalk, "scanning elements", "count", len(nodes), "max_depth", e.opts.MaxDepth)

	found, ok := e.matcher.Find(ctx, nodes, func(idx int, c Candidate) {
		tr.add(StageMatch, "text matched but not a button, skipping", "index", idx, "role", c.Role, "title", c.Title)
	})
	if err := ctx.Err(); err != nil {
		tr.add(StageMatch, "deadline exceeded, not pressing", "error", err, "timeout", e.opts.Timeout)
		return model.StatusNotFound
	}
	if !ok {
		tr.add(StageMatch, "no element matched", "text", e.opts.Text, "policy", e.opts.MatchPolicy)
		return model.StatusNotFound
	}

	el := snapshot(nodes, found.Index, found.Candidate)
	res.Match = &el
	if found.ByLabel {
		tr.add(StageMatch, "matched by label", "title", el.Title, "description", el.Description, "help", el.Help)
	} else {
		tr.add(StageMatch, "no label match, using last button in scope", "title", el.Title, "index", found.Index)
	}

	if err := ctx.Err(); err != nil {
		tr.add(StagePress, "deadline exceeded, not pressing", "error", err, "timeout", e.opts.Timeout)
		return model.StatusNotFound
	}
	if err := Invoke(nodes[found.Index].Element); err != nil {
		res.Error = err.Error()
		tr.add(StagePress, "press failed", "error", err)
		return model.StatusPressFailed
	}
	tr.add(StagePress, "pressed")

	if found.ByLabel {
		return model.StatusOKLabel
	}
	return model.StatusOKFallback
}

// resolveScope runs locate, optional activation, enumerate and select.
// On failure it returns the terminal status for the stage that failed.
func (e *Engine) resolveScope(ctx context.Context, activate bool, tr *tracer, res *Result) (platform.Element, model.Status, bool) {
	pid, ok := e.procs.Locate(ctx, e.opts.Apps)
	if !ok {
		tr.add(StageProcess, "no candidate process running", "candidates", e.opts.Apps)
		return nil, model.StatusNoProcess, false
	}
	res.PID = pid
	tr.add(StageProcess, "process found", "pid", pid)

	if activate {
		e.activate(ctx, pid, tr)
	} else {
		tr.add(StageActivate, "background mode, not activating")
	}

	windows := e.enumerateWindows(ctx, pid, tr)
	if len(windows) == 0 {
		return nil, model.StatusNoWindows, false
	}

	titles := make([]string, len(windows))
	res.Windows = make([]model.Window, len(windows))
	for i, w := range windows {
		titles[i] = w.Attribute(model.AttrTitle).String()
		res.Windows[i] = model.Window{Index: i, Title: titles[i]}
		tr.add(StageWindows, "window", "index", i, "title", titles[i])
	}

	idx, rule, ok := SelectScope(titles, e.opts.Pane, e.opts.SessionHint, e.opts.ScopePolicy)
	if !ok {
		tr.add(StageScope, "no pane or session window found", "pane", e.opts.Pane, "hint", e.opts.SessionHint)
		return nil, model.StatusNoScope, false
	}
	res.Windows[idx].Selected = true
	res.Windows[idx].Rule = string(rule)
	res.Scope = titles[idx]
	res.Rule = rule
	tr.add(StageScope, "scope selected", "title", titles[idx], "rule", rule)

	return windows[idx], "", true
}

// activate requests foreground activation and waits for the UI to settle.
// Failure is logged and otherwise ignored.
func (e *Engine) activate(ctx context.Context, pid int, tr *tracer) {
	if e.activator == nil {
		tr.add(StageActivate, "activation not available on this platform")
		return
	}
	if err := e.activator.Activate(pid); err != nil {
		tr.add(StageActivate, "activation failed, continuing", "pid", pid, "error", err)
		return
	}
	tr.add(StageActivate, "application activated", "settle", e.opts.SettleDelay)
	if err := e.sleep(ctx, e.opts.SettleDelay); err != nil {
		tr.add(StageActivate, "settle delay interrupted", "error", err)
	}
}

// snapshot converts a walked node into a reportable element. Roles of the
// ancestors are read to build the path.
func snapshot(nodes []Node, idx int, c Candidate) model.Element {
	n := nodes[idx]
	if c.Role == "" {
		c.Role = n.Element.Attribute(model.AttrRole).String()
	}
	return model.Element{
		Depth:       n.Depth,
		Role:        model.MapRole(c.Role),
		Title:       c.Title,
		Description: c.Description,
		Help:        c.Help,
		Path:        pathOf(nodes, idx),
	}
}

func pathOf(nodes []Node, idx int) string {
	var roles []string
	for i := idx; i >= 0; i = nodes[i].Parent {
		roles = append(roles, model.MapRole(nodes[i].Element.Attribute(model.AttrRole).String()))
	}
	path := ""
	for i := len(roles) - 1; i >= 0; i-- {
		path = model.JoinPath(path, roles[i])
	}
	return path
}
