package engine

import (
	"context"
	"strings"

	"github.com/mj1618/autosave-cli/internal/model"
	"github.com/mj1618/autosave-cli/internal/platform"
)

// Candidate holds the attributes of one element the matcher looked at.
type Candidate struct {
	Title       string
	Description string
	Help        string
	Role        string
}

// Evaluation is the matcher's verdict on a single element.
type Evaluation struct {
	Candidate Candidate
	TextMatch bool
	IsButton  bool
}

// Found is a matched element.
type Found struct {
	Index     int // position in the walk output
	Candidate Candidate
	ByLabel   bool // false when chosen by the last-button fallback
}

// Matcher finds the element to press.
type Matcher struct {
	needle string
	policy model.MatchPolicy
}

// NewMatcher creates a matcher for text, compared case-insensitively.
func NewMatcher(text string, policy model.MatchPolicy) *Matcher {
	return &Matcher{needle: strings.ToLower(text), policy: policy}
}

// Haystack is the lower-cased text a candidate is matched against.
func Haystack(c Candidate) string {
	return strings.ToLower(c.Title + "|" + c.Description + "|" + c.Help)
}

// Evaluate reads an element's text attributes and checks them against the
// needle. The role is read when the text matches or when withRole is set.
// Failed attribute queries count as empty values.
func (m *Matcher) Evaluate(el platform.Element, withRole bool) Evaluation {
	ev := Evaluation{Candidate: Candidate{
		Title:       el.Attribute(model.AttrTitle).String(),
		Description: el.Attribute(model.AttrDescription).String(),
		Help:        el.Attribute(model.AttrHelp).String(),
	}}
	ev.TextMatch = m.needle != "" && strings.Contains(Haystack(ev.Candidate), m.needle)
	if ev.TextMatch || withRole {
		ev.Candidate.Role = el.Attribute(model.AttrRole).String()
		ev.IsButton = model.IsButtonRole(ev.Candidate.Role)
	}
	return ev
}

// Find scans nodes in walk order and returns the first button whose text
// contains the needle. A text match on a non-button is passed to onReject
// and the scan continues. Under MatchLabelOrLastButton the last button seen
// is returned when nothing matched by label.
//
// The scan stops with no result once ctx is done.
func (m *Matcher) Find(ctx context.Context, nodes []Node, onReject func(idx int, c Candidate)) (Found, bool) {
	fallback := m.policy == model.MatchLabelOrLastButton
	lastButton := -1
	var lastCandidate Candidate

	for i, n := range nodes {
		if ctx.Err() != nil {
			return Found{}, false
		}
		ev := m.Evaluate(n.Element, fallback)
		if ev.TextMatch {
			if ev.IsButton {
				return Found{Index: i, Candidate: ev.Candidate, ByLabel: true}, true
			}
			if onReject != nil {
				onReject(i, ev.Candidate)
			}
		}
		if fallback && ev.IsButton {
			lastButton = i
			lastCandidate = ev.Candidate
		}
	}

	if lastButton >= 0 {
		return Found{Index: lastButton, Candidate: lastCandidate}, true
	}
	return Found{}, false
}
