package model

// Status is the terminal outcome of one find-and-press attempt.
type Status string

const (
	StatusNoProcess   Status = "NO_PROCESS"
	StatusNoWindows   Status = "NO_WINDOWS"
	StatusNoScope     Status = "NO_SCOPE"
	StatusNotFound    Status = "NOT_FOUND"
	StatusOKLabel     Status = "OK_LABEL"
	StatusOKFallback  Status = "OK_FALLBACK"
	StatusPressFailed Status = "PRESS_FAILED"
)

// OK reports whether the status means the target was pressed.
func (s Status) OK() bool {
	return s == StatusOKLabel || s == StatusOKFallback
}

func (s Status) String() string {
	return string(s)
}
