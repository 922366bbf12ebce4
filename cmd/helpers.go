package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mj1618/autosave-cli/internal/config"
	"github.com/mj1618/autosave-cli/internal/engine"
	"github.com/mj1618/autosave-cli/internal/logging"
	"github.com/mj1618/autosave-cli/internal/output"
	"github.com/mj1618/autosave-cli/internal/platform"
)

// Target flag names shared by run, windows, probe and serve.
const (
	FlagText        = "text"
	FlagPane        = "pane"
	FlagApp         = "app"
	FlagHint        = "hint"
	FlagScopePolicy = "scope-policy"
	FlagMatchPolicy = "match-policy"
	FlagDepth       = "depth"
	FlagTimeout     = "timeout"
)

// newProvider is a variable to allow testing.
var newProvider = platform.NewProvider

// addTargetFlags registers the flags that describe what to search for.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().String(FlagText, "", `Substring to match in title/description/help (default "save transcript")`)
	cmd.Flags().String(FlagPane, "", `Exact title of the pane window to search first (default "Transcript")`)
	cmd.Flags().String(FlagApp, "", "Process name, overriding the configured candidates")
	cmd.Flags().String(FlagHint, "", `Substring identifying the session window (default "meeting")`)
	cmd.Flags().String(FlagScopePolicy, "", "Window selection: strict, permissive")
	cmd.Flags().String(FlagMatchPolicy, "", "Element selection: label, label-or-last-button")
	cmd.Flags().Int(FlagDepth, 0, "Maximum depth below the window to search (default 3)")
	cmd.Flags().Int(FlagTimeout, 0, "Deadline in seconds for one attempt (default 10)")
}

// loadConfig loads files and environment, then applies flags that were
// explicitly set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyFlags copies explicitly set flags into cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed(FlagDebug) {
		cfg.Debug, _ = flags.GetBool(FlagDebug)
	}
	if flags.Changed(FlagLogFile) {
		cfg.Log.File, _ = flags.GetString(FlagLogFile)
	}
	if flags.Changed(FlagLogFormat) {
		cfg.Log.Format, _ = flags.GetString(FlagLogFormat)
	}
	if flags.Changed(FlagText) {
		cfg.Target.Text, _ = flags.GetString(FlagText)
	}
	if flags.Changed(FlagPane) {
		cfg.Target.Pane, _ = flags.GetString(FlagPane)
	}
	if flags.Changed(FlagApp) {
		app, _ := flags.GetString(FlagApp)
		cfg.Target.Apps = []string{app}
	}
	if flags.Changed(FlagHint) {
		cfg.Target.SessionHint, _ = flags.GetString(FlagHint)
	}
	if flags.Changed(FlagScopePolicy) {
		cfg.Search.ScopePolicy, _ = flags.GetString(FlagScopePolicy)
	}
	if flags.Changed(FlagMatchPolicy) {
		cfg.Search.MatchPolicy, _ = flags.GetString(FlagMatchPolicy)
	}
	if flags.Changed(FlagDepth) {
		cfg.Search.MaxDepth, _ = flags.GetInt(FlagDepth)
	}
	if flags.Changed(FlagTimeout) {
		secs, _ := flags.GetInt(FlagTimeout)
		cfg.Poll.Timeout = time.Duration(secs) * time.Second
	}
	if flags.Changed(FlagInterval) {
		secs, _ := flags.GetInt(FlagInterval)
		cfg.Poll.Interval = time.Duration(secs) * time.Second
	}
	if flags.Changed(FlagOnce) {
		cfg.Poll.Once, _ = flags.GetBool(FlagOnce)
	}
	if on, _ := flags.GetBool(FlagBackgroundOnly); on {
		cfg.Poll.Mode = "background-only"
	}
	if on, _ := flags.GetBool(FlagForceFocus); on {
		cfg.Poll.Mode = "force-focus"
	}
	if flags.Changed(FlagTransport) {
		cfg.Serve.Transport, _ = flags.GetString(FlagTransport)
	}
	if flags.Changed(FlagAddr) {
		cfg.Serve.Addr, _ = flags.GetString(FlagAddr)
	}
}

// session is everything a command needs to talk to the target application.
type session struct {
	cfg      *config.Config
	logger   *slog.Logger
	provider *platform.Provider
	engine   *engine.Engine
	logs     *logging.Result
}

func (s *session) Close() error {
	return s.logs.Close()
}

// newSession loads configuration, sets up logging and builds the engine.
// The caller must Close the session.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	verbose, _ := cmd.Flags().GetBool(FlagVerbose)
	if cfg.Debug || verbose {
		level = slog.LevelDebug
	}
	logs, err := logging.Setup(cfg.Log, level)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	slog.SetDefault(logs.Logger)

	if err := platform.CheckPermissions(); err != nil {
		logs.Logger.Warn("accessibility permission missing, attempts will find nothing", "error", err)
	}

	provider, err := newProvider()
	if err != nil {
		_ = logs.Close()
		return nil, err
	}

	return &session{
		cfg:      cfg,
		logger:   logs.Logger,
		provider: provider,
		engine:   engine.New(provider, cfg.EngineOptions(), logs.Logger),
		logs:     logs,
	}, nil
}

// printReport writes a report in the structured format, or with render in
// text format.
func printReport(w io.Writer, v interface{}, render func(io.Writer) error) error {
	if output.OutputFormat == output.FormatText {
		return render(w)
	}
	return output.Fprint(w, output.OutputFormat, v)
}
