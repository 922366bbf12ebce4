package model

import (
	"fmt"
	"strings"
)

// Mode selects whether attempts request foreground activation.
type Mode string

const (
	// ModeAuto tries in the background first and retries with focus on failure.
	ModeAuto Mode = "auto"
	// ModeBackgroundOnly never activates the target.
	ModeBackgroundOnly Mode = "background-only"
	// ModeForceFocus always activates the target before searching.
	ModeForceFocus Mode = "force-focus"
)

// ParseMode converts a flag or config value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeBackgroundOnly, "background", "bg":
		return ModeBackgroundOnly, nil
	case ModeForceFocus, "focus":
		return ModeForceFocus, nil
	default:
		return ModeAuto, fmt.Errorf("unknown mode: %q (expected auto, background-only, or force-focus)", s)
	}
}

// ScopePolicy controls how permissive window scope selection is.
type ScopePolicy string

const (
	// ScopeStrict only accepts the exact pane title or a session window.
	ScopeStrict ScopePolicy = "strict"
	// ScopePermissive also falls back to the first titled window, then the last window.
	ScopePermissive ScopePolicy = "permissive"
)

// ParseScopePolicy converts a flag or config value to a ScopePolicy.
func ParseScopePolicy(s string) (ScopePolicy, error) {
	switch ScopePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScopeStrict:
		return ScopeStrict, nil
	case ScopePermissive:
		return ScopePermissive, nil
	default:
		return ScopeStrict, fmt.Errorf("unknown scope policy: %q (expected strict or permissive)", s)
	}
}

// MatchPolicy controls what the matcher may press when no label matches.
type MatchPolicy string

const (
	// MatchLabel only presses a button whose text contains the needle.
	MatchLabel MatchPolicy = "label"
	// MatchLabelOrLastButton presses the last button in scope when no label matches.
	MatchLabelOrLastButton MatchPolicy = "label-or-last-button"
)

// ParseMatchPolicy converts a flag or config value to a MatchPolicy.
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch MatchPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchLabel:
		return MatchLabel, nil
	case MatchLabelOrLastButton:
		return MatchLabelOrLastButton, nil
	default:
		return MatchLabel, fmt.Errorf("unknown match policy: %q (expected label or label-or-last-button)", s)
	}
}
