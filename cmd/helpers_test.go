package cmd

import (
	"testing"
	"time"

	"github.com/mj1618/autosave-cli/internal/config"
)

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "unchanged flags keep config values",
			args: nil,
			check: func(t *testing.T, cfg *config.Config) {
				def := config.Default()
				if cfg.Poll.Interval != def.Poll.Interval || cfg.Target.Text != def.Target.Text || cfg.Poll.Mode != def.Poll.Mode {
					t.Errorf("config changed without flags: %+v", cfg)
				}
			},
		},
		{
			name: "seconds flags",
			args: []string{"--interval", "30", "--timeout", "5"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Poll.Interval != 30*time.Second {
					t.Errorf("interval = %v, want 30s", cfg.Poll.Interval)
				}
				if cfg.Poll.Timeout != 5*time.Second {
					t.Errorf("timeout = %v, want 5s", cfg.Poll.Timeout)
				}
			},
		},
		{
			name: "zero interval is explicit",
			args: []string{"--interval", "0"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Poll.Interval != 0 {
					t.Errorf("interval = %v, want 0", cfg.Poll.Interval)
				}
			},
		},
		{
			name: "target flags",
			args: []string{"--text", "export", "--pane", "Notes", "--app", "Teams", "--hint", "call"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Target.Text != "export" || cfg.Target.Pane != "Notes" || cfg.Target.SessionHint != "call" {
					t.Errorf("target = %+v", cfg.Target)
				}
				if len(cfg.Target.Apps) != 1 || cfg.Target.Apps[0] != "Teams" {
					t.Errorf("apps = %v, want [Teams]", cfg.Target.Apps)
				}
			},
		},
		{
			name: "search flags",
			args: []string{"--scope-policy", "permissive", "--match-policy", "label-or-last-button", "--depth", "5"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Search.ScopePolicy != "permissive" || cfg.Search.MatchPolicy != "label-or-last-button" || cfg.Search.MaxDepth != 5 {
					t.Errorf("search = %+v", cfg.Search)
				}
			},
		},
		{
			name: "background only",
			args: []string{"--background-only"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Poll.Mode != "background-only" {
					t.Errorf("mode = %q, want background-only", cfg.Poll.Mode)
				}
			},
		},
		{
			name: "force focus and once",
			args: []string{"--force-focus", "--once"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Poll.Mode != "force-focus" || !cfg.Poll.Once {
					t.Errorf("poll = %+v", cfg.Poll)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(rootCmd)
			if err := runCmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("parse flags: %v", err)
			}
			cfg := config.Default()
			applyFlags(runCmd, cfg)
			tt.check(t, cfg)
		})
	}
}

func TestAddTargetFlags(t *testing.T) {
	for _, c := range []string{"run", "windows", "probe", "serve"} {
		cmd, _, err := rootCmd.Find([]string{c})
		if err != nil {
			t.Fatalf("find %s: %v", c, err)
		}
		for _, name := range []string{FlagText, FlagPane, FlagApp, FlagHint, FlagScopePolicy, FlagMatchPolicy, FlagDepth, FlagTimeout} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("%s: missing --%s", c, name)
			}
		}
	}
}

func TestServeFlags(t *testing.T) {
	for _, name := range []string{FlagTransport, FlagAddr} {
		if serveCmd.Flags().Lookup(name) == nil {
			t.Errorf("serve: missing --%s", name)
		}
	}
}
