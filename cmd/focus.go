package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/autosave-cli/internal/output"
	"github.com/mj1618/autosave-cli/internal/platform"
)

// FocusResult is the output of a successful focus.
type FocusResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	PID    int    `yaml:"pid"    json:"pid"`
}

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Bring the target application to the foreground",
	Long: `Locate the target application and activate it, as a focused attempt would.

Examples:
  autosave focus
  autosave focus --app "Zoom Workplace"`,
	RunE: runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	focusCmd.Flags().String(FlagApp, "", "Process name, overriding the configured candidates")
}

func runFocus(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	pid, ok := s.provider.Processes.Locate(cmd.Context(), s.cfg.Target.Apps)
	if !ok {
		return fmt.Errorf("no running process among %v", s.cfg.Target.Apps)
	}
	if s.provider.Activator == nil {
		return fmt.Errorf("activate pid %d: %w", pid, platform.ErrUnsupported)
	}
	if err := s.provider.Activator.Activate(pid); err != nil {
		return err
	}

	if output.OutputFormat == output.FormatText {
		fmt.Fprintf(cmd.OutOrStdout(), "activated pid %d\n", pid)
		return nil
	}
	return output.Fprint(cmd.OutOrStdout(), output.OutputFormat, FocusResult{OK: true, Action: "focus", PID: pid})
}
