package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mj1618/autosave-cli/internal/output"
	"github.com/mj1618/autosave-cli/internal/poll"
)

// Run flag names.
const (
	FlagInterval       = "interval"
	FlagOnce           = "once"
	FlagBackgroundOnly = "background-only"
	FlagForceFocus     = "force-focus"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Press the save button on a fixed interval",
	Long: `Find the target button and press it, then wait and repeat until interrupted.

Each tick first tries without bringing the application forward. If that does
not press anything, a second attempt activates the application and retries
(auto mode). One status line is printed per tick:

  [BG] OK_LABEL           pressed in the background
  [FOCUS] OK_FALLBACK     pressed after activation, by last-button fallback
  [BG] NO_PROCESS         the application is not running

Examples:
  autosave run
  autosave run --once --debug
  autosave run --interval 30 --background-only
  autosave run --app "Zoom Workplace" --text "save transcript" --pane Transcript`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addTargetFlags(runCmd)
	runCmd.Flags().Int(FlagInterval, 0, "Seconds to wait before each tick (default 60)")
	runCmd.Flags().Bool(FlagOnce, false, "Run a single tick and exit")
	runCmd.Flags().Bool(FlagBackgroundOnly, false, "Never activate the application")
	runCmd.Flags().Bool(FlagForceFocus, false, "Always activate the application before searching")
	runCmd.MarkFlagsMutuallyExclusive(FlagBackgroundOnly, FlagForceFocus)
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	w := cmd.OutOrStdout()
	opts := s.engine.Options()
	if output.OutputFormat == output.FormatText {
		output.WriteBanner(w, output.Banner{
			Apps:     opts.Apps,
			Text:     opts.Text,
			Pane:     opts.Pane,
			Mode:     opts.Mode,
			Interval: s.cfg.Poll.Interval.String(),
			Once:     s.cfg.Poll.Once,
			Debug:    opts.Debug,
		})
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := &poll.Loop{
		Interval: s.cfg.Poll.Interval,
		Once:     s.cfg.Poll.Once,
		Logger:   s.logger,
	}
	var printErr error
	loop.Run(ctx, func(tickCtx context.Context) {
		out := s.engine.Run(tickCtx)
		if output.OutputFormat == output.FormatText {
			output.WriteOutcome(w, out, opts.Debug)
			return
		}
		if err := output.Fprint(w, output.OutputFormat, out); err != nil && printErr == nil {
			printErr = err
		}
	})

	if ctx.Err() != nil && output.OutputFormat == output.FormatText {
		fmt.Fprintln(w, "[STOP] interrupted")
	}
	return printErr
}
