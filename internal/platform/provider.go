package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// Provider bundles the platform backends the engine needs.
type Provider struct {
	Processes     ProcessLocator
	Accessibility Accessibility
	Activator     Activator
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("autosave is not supported on %s/%s; supported: darwin/amd64, darwin/arm64", runtime.GOOS, runtime.GOARCH)

var (
	// ErrStaleProcess means the PID no longer refers to a running application,
	// typically because it restarted between locate and enumerate.
	ErrStaleProcess = errors.New("process handle is stale")

	// ErrActionRejected means the element refused the requested action.
	ErrActionRejected = errors.New("action rejected by element")

	// ErrNotTrusted means the process lacks accessibility permission.
	ErrNotTrusted = errors.New("accessibility permission required")
)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// CheckPermissionsFunc is set by platform-specific packages via init().
// It returns ErrNotTrusted (wrapped) when accessibility access is missing.
var CheckPermissionsFunc func() error

// CheckPermissions reports whether the process may read and act on other
// applications' accessibility trees. Platforms without a check report nil.
func CheckPermissions() error {
	if CheckPermissionsFunc == nil {
		return nil
	}
	return CheckPermissionsFunc()
}

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
