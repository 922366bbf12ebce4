package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mj1618/autosave-cli/internal/output"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Show what an attempt would press, without pressing",
	Long: `Run the search on the selected window and print every scanned element
with its match decision. Useful for checking --text, --pane and the policies
against a live application.

Examples:
  autosave probe
  autosave probe --match-policy label-or-last-button --depth 5
  autosave probe --format json --pretty`,
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
	addTargetFlags(probeCmd)
	probeCmd.Flags().Bool(FlagFocus, false, "Activate the application before searching")
}

func runProbe(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	focus, _ := cmd.Flags().GetBool(FlagFocus)
	report := s.engine.Probe(cmd.Context(), focus)
	return printReport(cmd.OutOrStdout(), report, func(w io.Writer) error {
		return output.WriteProbe(w, report)
	})
}
