package engine

import (
	"strings"

	"github.com/mj1618/autosave-cli/internal/model"
)

// ScopeRule names the rule that picked the scope window.
type ScopeRule string

const (
	RuleExactTitle  ScopeRule = "exact-title"
	RuleSessionHint ScopeRule = "session-hint"
	RuleFirstTitled ScopeRule = "first-titled"
	RuleLastWindow  ScopeRule = "last-window"
)

// SelectScope picks the window to search from a list of window titles.
// Rules are tried in order and the first hit wins:
//
//  1. title equals preferred exactly (an undocked pane window)
//  2. title contains hint, case-insensitively (the session window)
//  3. permissive only: the first non-empty title
//  4. permissive only: the last window
//
// Under ScopeStrict only rules 1 and 2 apply and ok is false otherwise.
func SelectScope(titles []string, preferred, hint string, policy model.ScopePolicy) (idx int, rule ScopeRule, ok bool) {
	if preferred != "" {
		for i, t := range titles {
			if t == preferred {
				return i, RuleExactTitle, true
			}
		}
	}

	if hint != "" {
		hintLower := strings.ToLower(hint)
		for i, t := range titles {
			if t != "" && strings.Contains(strings.ToLower(t), hintLower) {
				return i, RuleSessionHint, true
			}
		}
	}

	if policy != model.ScopePermissive || len(titles) == 0 {
		return -1, "", false
	}

	for i, t := range titles {
		if t != "" {
			return i, RuleFirstTitled, true
		}
	}
	return len(titles) - 1, RuleLastWindow, true
}
