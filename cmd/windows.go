package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mj1618/autosave-cli/internal/output"
)

// FlagFocus requests activation before a one-shot inspection.
const FlagFocus = "focus"

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List the target application's windows and the selected scope",
	Long: `Locate the target process, list its windows, and show which window an
attempt would search and which rule selected it. Nothing is pressed.

Examples:
  autosave windows
  autosave windows --focus
  autosave windows --scope-policy permissive --format yaml`,
	RunE: runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
	addTargetFlags(windowsCmd)
	windowsCmd.Flags().Bool(FlagFocus, false, "Activate the application before reading its windows")
}

func runWindows(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	focus, _ := cmd.Flags().GetBool(FlagFocus)
	report := s.engine.Windows(cmd.Context(), focus)
	return printReport(cmd.OutOrStdout(), report, func(w io.Writer) error {
		return output.WriteWindows(w, report)
	})
}
