package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mj1618/autosave-cli/internal/engine"
)

// WriteWindows prints the windows of a report and marks the selected scope.
func WriteWindows(w io.Writer, r engine.ProbeReport) error {
	if r.PID != 0 {
		fmt.Fprintf(w, "pid %d\n", r.PID)
	}
	if len(r.Windows) > 0 {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, win := range r.Windows {
			mark := " "
			rule := ""
			if win.Selected {
				mark = "*"
				rule = "<- " + win.Rule
			}
			title := win.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", mark, win.Index, title, render(styles.Faint, rule))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	if r.Status != "" {
		fmt.Fprintln(w, render(statusStyle(r.Status), r.Status.String()))
	}
	return nil
}

// WriteProbe prints every scanned element with its match decision, then
// the status an attempt would report.
func WriteProbe(w io.Writer, r engine.ProbeReport) error {
	if r.Scope != "" {
		fmt.Fprintf(w, "scope %q (%s), pid %d\n", r.Scope, r.Rule, r.PID)
	}
	if len(r.Elements) > 0 {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, el := range r.Elements {
			text := strings.Join(nonEmpty(el.Title, el.Description, el.Help), " | ")
			fmt.Fprintf(tw, "%s%s\t%s\t%s\n",
				strings.Repeat("  ", el.Depth), el.Role, text, decision(el.Match))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, render(statusStyle(r.Status), r.Status.String()))
	return nil
}

func decision(match string) string {
	switch match {
	case "":
		return ""
	case engine.DecisionNotButton:
		return render(styles.Miss, "<- "+match)
	default:
		return render(styles.OK, "<- "+match)
	}
}

func nonEmpty(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
