package engine

import (
	"fmt"
	"log/slog"
	"strings"
)

// Trace stages.
const (
	StageProcess  = "process"
	StageActivate = "activate"
	StageWindows  = "windows"
	StageScope    = "scope"
	StageWalk     = "walk"
	StageMatch    = "match"
	StagePress    = "press"
)

// TraceEvent is one recorded stage decision.
type TraceEvent struct {
	Stage   string `yaml:"stage" json:"stage"`
	Message string `yaml:"msg"   json:"msg"`
}

// tracer logs stage decisions at debug level and, when keep is set,
// records them for the attempt's Result.
type tracer struct {
	logger *slog.Logger
	keep   bool
	events []TraceEvent
}

func (t *tracer) add(stage, msg string, args ...any) {
	t.logger.Debug(msg, append([]any{"stage", stage}, args...)...)
	if !t.keep {
		return
	}
	t.events = append(t.events, TraceEvent{Stage: stage, Message: formatTrace(msg, args)})
}

// formatTrace renders slog-style key/value pairs after the message.
func formatTrace(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&b, " %v=%q", args[i], fmt.Sprint(args[i+1]))
	}
	return b.String()
}
