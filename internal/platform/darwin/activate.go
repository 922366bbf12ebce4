//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>

// ns_activate_app brings the application with the given pid to the front.
// Returns -1 when no such application is running, -2 when AppKit refused.
static int ns_activate_app(pid_t pid) {
    @autoreleasepool {
        NSRunningApplication *app = [NSRunningApplication runningApplicationWithProcessIdentifier:pid];
        if (app == nil) {
            return -1;
        }
        return [app activateWithOptions:NSApplicationActivateIgnoringOtherApps] ? 0 : -2;
    }
}
*/
import "C"

import (
	"fmt"

	"github.com/mj1618/autosave-cli/internal/platform"
)

// Activator implements platform.Activator with NSRunningApplication.
type Activator struct{}

// NewActivator creates a macOS activator.
func NewActivator() *Activator {
	return &Activator{}
}

// Activate brings the application to the foreground.
func (a *Activator) Activate(pid int) error {
	switch C.ns_activate_app(C.pid_t(pid)) {
	case 0:
		return nil
	case -1:
		return fmt.Errorf("activate pid %d: %w", pid, platform.ErrStaleProcess)
	default:
		return fmt.Errorf("failed to activate app with PID %d", pid)
	}
}
