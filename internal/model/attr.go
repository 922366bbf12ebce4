package model

// Attr names an accessibility attribute.
type Attr string

const (
	AttrTitle       Attr = "AXTitle"
	AttrDescription Attr = "AXDescription"
	AttrHelp        Attr = "AXHelp"
	AttrRole        Attr = "AXRole"
)

// AttrState is the outcome class of an attribute query.
type AttrState int

const (
	// AttrPresent means the query succeeded and returned a value.
	AttrPresent AttrState = iota
	// AttrAbsent means the query succeeded but the element has no value.
	AttrAbsent
	// AttrFailed means the query itself failed (stale element, host error).
	AttrFailed
)

// AttrResult is the typed result of a single attribute query.
type AttrResult struct {
	State AttrState
	Value string
	Err   error
}

// Present builds a successful result carrying value.
func Present(value string) AttrResult {
	return AttrResult{State: AttrPresent, Value: value}
}

// Absent builds a successful result with no value.
func Absent() AttrResult {
	return AttrResult{State: AttrAbsent}
}

// Failed builds a result for a query that errored.
func Failed(err error) AttrResult {
	return AttrResult{State: AttrFailed, Err: err}
}

// String returns the value, or "" when the attribute is absent or the query failed.
func (r AttrResult) String() string {
	if r.State != AttrPresent {
		return ""
	}
	return r.Value
}
