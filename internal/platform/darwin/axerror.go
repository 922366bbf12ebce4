package darwin

import (
	"fmt"

	"github.com/mj1618/autosave-cli/internal/platform"
)

// AXError codes from HIServices/AXError.h.
const (
	axSuccess              = 0
	axFailure              = -25200
	axIllegalArgument      = -25201
	axInvalidUIElement     = -25202
	axCannotComplete       = -25204
	axAttributeUnsupported = -25205
	axActionUnsupported    = -25206
	axAPIDisabled          = -25211
	axNoValue              = -25212
)

// axAbsent reports whether an attribute query code means "no value" rather
// than a failure.
func axAbsent(code int) bool {
	return code == axNoValue || code == axAttributeUnsupported
}

// axErr converts a non-success AXError code into an error wrapping the
// matching platform sentinel, if there is one.
func axErr(op string, code int) error {
	switch code {
	case axSuccess:
		return nil
	case axInvalidUIElement, axCannotComplete:
		return fmt.Errorf("%s: AXError %d: %w", op, code, platform.ErrStaleProcess)
	case axAPIDisabled:
		return fmt.Errorf("%s: AXError %d: %w", op, code, platform.ErrNotTrusted)
	case axActionUnsupported:
		return fmt.Errorf("%s: AXError %d: %w", op, code, platform.ErrActionRejected)
	default:
		return fmt.Errorf("%s: AXError %d", op, code)
	}
}

// pressErr converts the result of a press. Any failure is a rejection
// unless the element or the permission went away.
func pressErr(code int) error {
	err := axErr("press", code)
	if err == nil {
		return nil
	}
	switch code {
	case axInvalidUIElement, axCannotComplete, axAPIDisabled, axActionUnsupported:
		return err
	}
	return fmt.Errorf("%w: %w", platform.ErrActionRejected, err)
}
