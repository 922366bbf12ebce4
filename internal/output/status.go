package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/mj1618/autosave-cli/internal/engine"
	"github.com/mj1618/autosave-cli/internal/model"
)

// Styled enables colored status lines. Set by the root command when stdout
// is a terminal.
var Styled bool

// IsOutputPiped reports whether stdout is not a terminal.
func IsOutputPiped() bool {
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

var styles = struct {
	Label   lipgloss.Style
	OK      lipgloss.Style
	Miss    lipgloss.Style
	Failed  lipgloss.Style
	Faint   lipgloss.Style
	Heading lipgloss.Style
}{
	Label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	OK:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	Miss:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	Failed:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	Faint:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
}

func render(s lipgloss.Style, text string) string {
	if !Styled {
		return text
	}
	return s.Render(text)
}

func statusStyle(s model.Status) lipgloss.Style {
	switch {
	case s.OK():
		return styles.OK
	case s == model.StatusPressFailed:
		return styles.Failed
	default:
		return styles.Miss
	}
}

// StatusLine renders "[BG] OK_LABEL".
func StatusLine(label string, status model.Status) string {
	return render(styles.Label, "["+label+"]") + " " + render(statusStyle(status), status.String())
}

// WriteOutcome prints one poll tick. Normally that is the reported status
// line. With debug set every attempt is printed with its trace.
func WriteOutcome(w io.Writer, out engine.Outcome, debug bool) {
	if !debug {
		fmt.Fprintln(w, StatusLine(out.Label, out.Status))
		return
	}
	for _, r := range out.Attempts {
		for _, ev := range r.Trace {
			fmt.Fprintln(w, render(styles.Faint, fmt.Sprintf("[DBG] %-8s %s", ev.Stage, ev.Message)))
		}
		line := StatusLine(r.Label, r.Status)
		if r.Error != "" {
			line += " " + render(styles.Faint, r.Error)
		}
		fmt.Fprintln(w, line+" "+render(styles.Faint, "("+r.Elapsed+")"))
	}
	if len(out.Attempts) > 1 {
		fmt.Fprintln(w, render(styles.Heading, "[STATUS]")+" "+StatusLine(out.Label, out.Status))
	}
}

// Banner describes a run before the first tick.
type Banner struct {
	Apps     []string
	Text     string
	Pane     string
	Mode     model.Mode
	Interval string
	Once     bool
	Debug    bool
}

// WriteBanner prints the run banner.
func WriteBanner(w io.Writer, b Banner) {
	run := render(styles.Heading, "[RUN]")
	fmt.Fprintf(w, "%s App candidates: %s\n", run, strings.Join(b.Apps, ", "))
	fmt.Fprintf(w, "%s Target text: %q | Pane: %q\n", run, b.Text, b.Pane)

	mode := string(b.Mode)
	if b.Mode == model.ModeAuto {
		mode = "auto (background, then focus)"
	}
	interval := b.Interval
	if b.Once {
		interval = "once"
	}
	fmt.Fprintf(w, "%s Mode: %s | Interval: %s | Debug: %t\n", run, mode, interval, b.Debug)
	fmt.Fprintf(w, "%s Accessibility permission is required for this terminal (System Settings > Privacy & Security > Accessibility).\n",
		render(styles.Miss, "[NOTE]"))
}
