package engine

import (
	"testing"

	"github.com/mj1618/autosave-cli/internal/model"
)

func TestSelectScope(t *testing.T) {
	tests := []struct {
		name     string
		titles   []string
		policy   model.ScopePolicy
		wantIdx  int
		wantRule ScopeRule
		wantOK   bool
	}{
		{
			name:     "exact pane title wins over meeting",
			titles:   []string{"Zoom Meeting", "Transcript"},
			policy:   model.ScopeStrict,
			wantIdx:  1,
			wantRule: RuleExactTitle,
			wantOK:   true,
		},
		{
			name:     "exact pane title first in list",
			titles:   []string{"Transcript", "Zoom Meeting"},
			policy:   model.ScopeStrict,
			wantIdx:  0,
			wantRule: RuleExactTitle,
			wantOK:   true,
		},
		{
			name:     "pane title is case sensitive",
			titles:   []string{"transcript", "Zoom Meeting"},
			policy:   model.ScopeStrict,
			wantIdx:  1,
			wantRule: RuleSessionHint,
			wantOK:   true,
		},
		{
			name:     "first meeting window in order",
			titles:   []string{"Zoom Workplace", "Breakout MEETING", "Zoom Meeting"},
			policy:   model.ScopeStrict,
			wantIdx:  1,
			wantRule: RuleSessionHint,
			wantOK:   true,
		},
		{
			name:    "strict gives up",
			titles:  []string{"Zoom Workplace", "Share Screen", ""},
			policy:  model.ScopeStrict,
			wantIdx: -1,
		},
		{
			name:     "permissive takes first titled",
			titles:   []string{"", "Zoom Workplace", "Share Screen"},
			policy:   model.ScopePermissive,
			wantIdx:  1,
			wantRule: RuleFirstTitled,
			wantOK:   true,
		},
		{
			name:     "permissive falls back to last window",
			titles:   []string{"", "", ""},
			policy:   model.ScopePermissive,
			wantIdx:  2,
			wantRule: RuleLastWindow,
			wantOK:   true,
		},
		{
			name:    "permissive with no windows",
			titles:  nil,
			policy:  model.ScopePermissive,
			wantIdx: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, rule, ok := SelectScope(tt.titles, "Transcript", "meeting", tt.policy)
			if idx != tt.wantIdx || rule != tt.wantRule || ok != tt.wantOK {
				t.Errorf("SelectScope() = (%d, %q, %v), want (%d, %q, %v)",
					idx, rule, ok, tt.wantIdx, tt.wantRule, tt.wantOK)
			}
		})
	}
}

func TestSelectScope_EmptyPreferredDoesNotMatchUntitled(t *testing.T) {
	_, _, ok := SelectScope([]string{"", "Home"}, "", "meeting", model.ScopeStrict)
	if ok {
		t.Error("an empty preferred title must not select an untitled window")
	}
}

func TestSelectScope_EmptyHintDisablesRuleTwo(t *testing.T) {
	_, _, ok := SelectScope([]string{"Zoom Meeting"}, "Transcript", "", model.ScopeStrict)
	if ok {
		t.Error("an empty hint must not match every window")
	}
}
