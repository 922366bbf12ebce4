package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mj1618/autosave-cli/internal/config"
	"github.com/mj1618/autosave-cli/internal/output"
	"github.com/mj1618/autosave-cli/internal/version"
)

// Persistent flag names.
const (
	FlagConfig    = "config"
	FlagFormat    = "format"
	FlagDebug     = "debug"
	FlagVerbose   = "verbose"
	FlagLogFile   = "log-file"
	FlagLogFormat = "log-format"
	FlagPretty    = "pretty"
)

var rootCmd = &cobra.Command{
	Use:   "autosave",
	Short: "Press an application's save button on a schedule",
	Long: `autosave finds a button in a running application's accessibility tree and
presses it on a fixed interval, without synthesizing mouse or keyboard input.

By default it looks for "save transcript" in Zoom's Transcript pane or meeting
window once a minute. Accessibility permission is required for the terminal
running it.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)

	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: .autosave/config.yaml)")
	rootCmd.PersistentFlags().String(FlagFormat, "text", "Output format: text, yaml, json")
	rootCmd.PersistentFlags().Bool(FlagPretty, false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().Bool(FlagDebug, false, "Trace every stage decision and log at debug level")
	rootCmd.PersistentFlags().BoolP(FlagVerbose, "v", false, "Log at debug level without tracing")
	rootCmd.PersistentFlags().String(FlagLogFile, "", "Log to a rotating file instead of stderr")
	rootCmd.PersistentFlags().String(FlagLogFormat, "", "Log format: text, json")

	bindConfig(viper.GetViper())

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString(FlagFormat)
		f, err := output.ParseFormat(strings.ToLower(format))
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool(FlagPretty)
		output.Styled = f == output.FormatText && !output.IsOutputPiped()
		return nil
	}
}

// bindConfig prepares v to read AUTOSAVE_* variables and the persistent flags.
func bindConfig(v *viper.Viper) {
	config.ConfigureEnv(v)
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
	})
}
