// Package config provides configuration types and defaults for autosave.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mj1618/autosave-cli/internal/engine"
	"github.com/mj1618/autosave-cli/internal/model"
)

// Config holds all configuration for autosave.
type Config struct {
	Target  TargetConfig  `yaml:"target" mapstructure:"target"`
	Poll    PollConfig    `yaml:"poll" mapstructure:"poll"`
	Search  SearchConfig  `yaml:"search" mapstructure:"search"`
	Windows WindowsConfig `yaml:"windows" mapstructure:"windows"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Serve   ServeConfig   `yaml:"serve" mapstructure:"serve"`
	Debug   bool          `yaml:"debug" mapstructure:"debug"` // Record a trace of every stage decision
}

// TargetConfig describes what to press and where to look for it.
type TargetConfig struct {
	Text        string   `yaml:"text" mapstructure:"text"`                 // Needle matched against title/description/help
	Pane        string   `yaml:"pane" mapstructure:"pane"`                 // Exact title of the undocked pane window
	Apps        []string `yaml:"apps" mapstructure:"apps"`                 // Process names, tried in order
	SessionHint string   `yaml:"session_hint" mapstructure:"session_hint"` // Substring identifying the session window
}

// PollConfig holds poll loop settings.
type PollConfig struct {
	Interval time.Duration `yaml:"interval" mapstructure:"interval"` // 0 runs ticks back to back
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`   // Deadline for one attempt
	Once     bool          `yaml:"once" mapstructure:"once"`
	Mode     string        `yaml:"mode" mapstructure:"mode"` // auto, background-only, force-focus
}

// SearchConfig holds scope and match policies.
type SearchConfig struct {
	ScopePolicy string `yaml:"scope_policy" mapstructure:"scope_policy"` // strict or permissive
	MatchPolicy string `yaml:"match_policy" mapstructure:"match_policy"` // label or label-or-last-button
	MaxDepth    int    `yaml:"max_depth" mapstructure:"max_depth"`
}

// WindowsConfig holds window enumeration and activation timing.
type WindowsConfig struct {
	Retries     int           `yaml:"retries" mapstructure:"retries"`
	Backoff     time.Duration `yaml:"backoff" mapstructure:"backoff"` // Step of the linear backoff
	SettleDelay time.Duration `yaml:"settle_delay" mapstructure:"settle_delay"`
}

// LogConfig holds logging settings. File output is rotated by lumberjack.
type LogConfig struct {
	Format     string `yaml:"format" mapstructure:"format"` // json or text
	File       string `yaml:"file" mapstructure:"file"`     // Empty logs to stderr
	MaxSizeMB  int    `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
}

// ServeConfig holds MCP server settings.
type ServeConfig struct {
	Transport string `yaml:"transport" mapstructure:"transport"` // stdio or streamable-http
	Addr      string `yaml:"addr" mapstructure:"addr"`
}

// Default returns a Config with the stock behaviour: press "save transcript"
// in Zoom once a minute, never touching a window that is not the transcript
// pane or the meeting.
func Default() *Config {
	opts := engine.DefaultOptions()
	return &Config{
		Target: TargetConfig{
			Text:        opts.Text,
			Pane:        opts.Pane,
			Apps:        append([]string(nil), opts.Apps...),
			SessionHint: opts.SessionHint,
		},
		Poll: PollConfig{
			Interval: 60 * time.Second,
			Timeout:  opts.Timeout,
			Mode:     string(opts.Mode),
		},
		Search: SearchConfig{
			ScopePolicy: string(opts.ScopePolicy),
			MatchPolicy: string(opts.MatchPolicy),
			MaxDepth:    opts.MaxDepth,
		},
		Windows: WindowsConfig{
			Retries:     opts.WindowRetries,
			Backoff:     opts.WindowBackoff,
			SettleDelay: opts.SettleDelay,
		},
		Log: LogConfig{
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Serve: ServeConfig{
			Transport: "stdio",
			Addr:      "localhost:8080",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Target.Text) == "" {
		errs = append(errs, errors.New("target.text must not be empty"))
	}
	if len(c.apps()) == 0 {
		errs = append(errs, errors.New("target.apps must name at least one process"))
	}
	if c.Poll.Interval < 0 {
		errs = append(errs, fmt.Errorf("poll.interval must not be negative, got %s", c.Poll.Interval))
	}
	if c.Poll.Timeout < 0 {
		errs = append(errs, fmt.Errorf("poll.timeout must not be negative, got %s", c.Poll.Timeout))
	}
	if c.Search.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("search.max_depth must not be negative, got %d", c.Search.MaxDepth))
	}
	if c.Windows.Retries < 0 {
		errs = append(errs, fmt.Errorf("windows.retries must not be negative, got %d", c.Windows.Retries))
	}
	if c.Windows.Backoff < 0 || c.Windows.SettleDelay < 0 {
		errs = append(errs, errors.New("windows.backoff and windows.settle_delay must not be negative"))
	}
	if _, err := model.ParseMode(c.Poll.Mode); err != nil {
		errs = append(errs, err)
	}
	if _, err := model.ParseScopePolicy(c.Search.ScopePolicy); err != nil {
		errs = append(errs, err)
	}
	if _, err := model.ParseMatchPolicy(c.Search.MatchPolicy); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	switch c.Serve.Transport {
	case "", "stdio", "streamable-http":
	default:
		errs = append(errs, fmt.Errorf("serve.transport must be stdio or streamable-http, got %q", c.Serve.Transport))
	}
	return errors.Join(errs...)
}

// EngineOptions converts the configuration into engine options.
// Validate must have succeeded.
func (c *Config) EngineOptions() engine.Options {
	mode, _ := model.ParseMode(c.Poll.Mode)
	scope, _ := model.ParseScopePolicy(c.Search.ScopePolicy)
	match, _ := model.ParseMatchPolicy(c.Search.MatchPolicy)
	return engine.Options{
		Text:          c.Target.Text,
		Pane:          c.Target.Pane,
		Apps:          c.apps(),
		Mode:          mode,
		ScopePolicy:   scope,
		MatchPolicy:   match,
		SessionHint:   c.Target.SessionHint,
		MaxDepth:      c.Search.MaxDepth,
		WindowRetries: c.Windows.Retries,
		WindowBackoff: c.Windows.Backoff,
		SettleDelay:   c.Windows.SettleDelay,
		Timeout:       c.Poll.Timeout,
		Debug:         c.Debug,
	}
}

// apps returns the non-blank process candidates.
func (c *Config) apps() []string {
	var out []string
	for _, a := range c.Target.Apps {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
