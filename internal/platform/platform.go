package platform

import (
	"context"

	"github.com/mj1618/autosave-cli/internal/model"
)

// Element is a live handle to one node of the accessibility tree: a window
// or any of its descendants. Handles are only valid for the attempt that
// produced them.
type Element interface {
	// Attribute queries a single attribute. Failures are reported in the
	// result, never as a panic or separate error.
	Attribute(name model.Attr) model.AttrResult

	// Children returns the element's direct children in tree order.
	Children() ([]Element, error)

	// Press triggers the element's primary action.
	Press() error
}

// Accessibility reads the top-level windows of an application.
type Accessibility interface {
	// Windows returns the application's windows in the order the OS reports
	// them. ErrStaleProcess is returned when pid no longer names a live app.
	Windows(pid int) ([]Element, error)
}

// Activator brings an application to the foreground.
type Activator interface {
	Activate(pid int) error
}

// ProcessLocator resolves a live process from ordered name candidates.
type ProcessLocator interface {
	// Locate returns the PID of the first candidate that is running.
	// ok is false when none is; that is not an error.
	Locate(ctx context.Context, candidates []string) (pid int, ok bool)
}
