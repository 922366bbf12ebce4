package config

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/mj1618/autosave-cli/internal/model"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

func TestDefaultTargetConfig(t *testing.T) {
	cfg := Default()

	if cfg.Target.Text != "save transcript" {
		t.Errorf("Target.Text = %q, want %q", cfg.Target.Text, "save transcript")
	}
	if cfg.Target.Pane != "Transcript" {
		t.Errorf("Target.Pane = %q, want %q", cfg.Target.Pane, "Transcript")
	}
	if want := []string{"zoom.us", "Zoom Workplace"}; !reflect.DeepEqual(cfg.Target.Apps, want) {
		t.Errorf("Target.Apps = %v, want %v", cfg.Target.Apps, want)
	}
	if cfg.Target.SessionHint != "meeting" {
		t.Errorf("Target.SessionHint = %q, want %q", cfg.Target.SessionHint, "meeting")
	}
}

func TestDefaultPollConfig(t *testing.T) {
	cfg := Default()

	if cfg.Poll.Interval != 60*time.Second {
		t.Errorf("Poll.Interval = %v, want %v", cfg.Poll.Interval, 60*time.Second)
	}
	if cfg.Poll.Timeout != 10*time.Second {
		t.Errorf("Poll.Timeout = %v, want %v", cfg.Poll.Timeout, 10*time.Second)
	}
	if cfg.Poll.Once {
		t.Error("Poll.Once should default to false")
	}
	if cfg.Poll.Mode != "auto" {
		t.Errorf("Poll.Mode = %q, want auto", cfg.Poll.Mode)
	}
}

func TestDefaultSearchIsStrict(t *testing.T) {
	cfg := Default()

	if cfg.Search.ScopePolicy != "strict" {
		t.Errorf("Search.ScopePolicy = %q, want strict", cfg.Search.ScopePolicy)
	}
	if cfg.Search.MatchPolicy != "label" {
		t.Errorf("Search.MatchPolicy = %q, want label", cfg.Search.MatchPolicy)
	}
	if cfg.Search.MaxDepth != 3 {
		t.Errorf("Search.MaxDepth = %d, want 3", cfg.Search.MaxDepth)
	}
}

func TestDefaultWindowsConfig(t *testing.T) {
	cfg := Default()

	if cfg.Windows.Retries != 3 {
		t.Errorf("Windows.Retries = %d, want 3", cfg.Windows.Retries)
	}
	if cfg.Windows.Backoff != 500*time.Millisecond {
		t.Errorf("Windows.Backoff = %v, want 500ms", cfg.Windows.Backoff)
	}
	if cfg.Windows.SettleDelay != 300*time.Millisecond {
		t.Errorf("Windows.SettleDelay = %v, want 300ms", cfg.Windows.SettleDelay)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty text", func(c *Config) { c.Target.Text = "  " }, "target.text"},
		{"no apps", func(c *Config) { c.Target.Apps = nil }, "target.apps"},
		{"blank apps", func(c *Config) { c.Target.Apps = []string{"", " "} }, "target.apps"},
		{"negative interval", func(c *Config) { c.Poll.Interval = -time.Second }, "poll.interval"},
		{"negative timeout", func(c *Config) { c.Poll.Timeout = -time.Second }, "poll.timeout"},
		{"negative depth", func(c *Config) { c.Search.MaxDepth = -1 }, "search.max_depth"},
		{"negative retries", func(c *Config) { c.Windows.Retries = -1 }, "windows.retries"},
		{"negative backoff", func(c *Config) { c.Windows.Backoff = -time.Second }, "windows.backoff"},
		{"unknown mode", func(c *Config) { c.Poll.Mode = "sometimes" }, "unknown mode"},
		{"unknown scope policy", func(c *Config) { c.Search.ScopePolicy = "loose" }, "unknown scope policy"},
		{"unknown match policy", func(c *Config) { c.Search.MatchPolicy = "any" }, "unknown match policy"},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"unknown transport", func(c *Config) { c.Serve.Transport = "sse" }, "serve.transport"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ZeroIntervalAllowed(t *testing.T) {
	cfg := Default()
	cfg.Poll.Interval = 0
	cfg.Poll.Timeout = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Target.Text = ""
	cfg.Poll.Mode = "nope"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"target.text", "unknown mode"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	cfg.Target.Apps = []string{" zoom.us ", ""}
	cfg.Poll.Mode = "force-focus"
	cfg.Search.ScopePolicy = "permissive"
	cfg.Search.MatchPolicy = "label-or-last-button"
	cfg.Search.MaxDepth = 5
	cfg.Poll.Timeout = 4 * time.Second
	cfg.Debug = true

	opts := cfg.EngineOptions()

	if !reflect.DeepEqual(opts.Apps, []string{"zoom.us"}) {
		t.Errorf("Apps = %v, want [zoom.us]", opts.Apps)
	}
	if opts.Mode != model.ModeForceFocus {
		t.Errorf("Mode = %q", opts.Mode)
	}
	if opts.ScopePolicy != model.ScopePermissive || opts.MatchPolicy != model.MatchLabelOrLastButton {
		t.Errorf("policies = %q/%q", opts.ScopePolicy, opts.MatchPolicy)
	}
	if opts.MaxDepth != 5 || opts.Timeout != 4*time.Second || !opts.Debug {
		t.Errorf("opts = %+v", opts)
	}
	if opts.Text != "save transcript" || opts.Pane != "Transcript" || opts.SessionHint != "meeting" {
		t.Errorf("target fields not carried over: %+v", opts)
	}
	if opts.WindowRetries != 3 || opts.WindowBackoff != 500*time.Millisecond || opts.SettleDelay != 300*time.Millisecond {
		t.Errorf("window timing not carried over: %+v", opts)
	}
}
