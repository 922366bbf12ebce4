//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdlib.h>

static CFStringRef ax_name(const char *attr) {
    return CFStringCreateWithCString(NULL, attr, kCFStringEncodingUTF8);
}

static AXUIElementRef ax_app(pid_t pid, float timeout) {
    AXUIElementRef app = AXUIElementCreateApplication(pid);
    if (app != NULL && timeout > 0) {
        AXUIElementSetMessagingTimeout(app, timeout);
    }
    return app;
}

// ax_copy_string reads a string attribute into a malloc'd UTF-8 buffer.
// *out stays NULL when the value exists but is not a string.
static int ax_copy_string(AXUIElementRef el, const char *attr, char **out) {
    *out = NULL;
    CFStringRef name = ax_name(attr);
    CFTypeRef value = NULL;
    AXError err = AXUIElementCopyAttributeValue(el, name, &value);
    CFRelease(name);
    if (err != kAXErrorSuccess) {
        return err;
    }
    if (value == NULL) {
        return kAXErrorNoValue;
    }
    if (CFGetTypeID(value) == CFStringGetTypeID()) {
        CFIndex size = CFStringGetMaximumSizeForEncoding(CFStringGetLength((CFStringRef)value), kCFStringEncodingUTF8) + 1;
        char *buf = malloc(size);
        if (buf != NULL && CFStringGetCString((CFStringRef)value, buf, size, kCFStringEncodingUTF8)) {
            *out = buf;
        } else {
            free(buf);
        }
    }
    CFRelease(value);
    return kAXErrorSuccess;
}

// ax_copy_elements reads an element-array attribute such as AXWindows or
// AXChildren. Returned elements are retained and carry the messaging
// timeout; the array is malloc'd.
static int ax_copy_elements(AXUIElementRef el, const char *attr, float timeout, AXUIElementRef **out, int *count) {
    *out = NULL;
    *count = 0;
    CFStringRef name = ax_name(attr);
    CFTypeRef value = NULL;
    AXError err = AXUIElementCopyAttributeValue(el, name, &value);
    CFRelease(name);
    if (err != kAXErrorSuccess) {
        return err;
    }
    if (value == NULL) {
        return kAXErrorSuccess;
    }
    if (CFGetTypeID(value) != CFArrayGetTypeID()) {
        CFRelease(value);
        return kAXErrorSuccess;
    }
    CFIndex n = CFArrayGetCount((CFArrayRef)value);
    if (n > 0) {
        AXUIElementRef *items = malloc(sizeof(AXUIElementRef) * n);
        int k = 0;
        for (CFIndex i = 0; i < n; i++) {
            CFTypeRef item = CFArrayGetValueAtIndex((CFArrayRef)value, i);
            if (item != NULL && CFGetTypeID(item) == AXUIElementGetTypeID()) {
                CFRetain(item);
                if (timeout > 0) {
                    AXUIElementSetMessagingTimeout((AXUIElementRef)item, timeout);
                }
                items[k++] = (AXUIElementRef)item;
            }
        }
        *out = items;
        *count = k;
    }
    CFRelease(value);
    return kAXErrorSuccess;
}

static int ax_press(AXUIElementRef el) {
    return AXUIElementPerformAction(el, kAXPressAction);
}

static void ax_release(AXUIElementRef el) {
    if (el != NULL) {
        CFRelease(el);
    }
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"github.com/mj1618/autosave-cli/internal/model"
	"github.com/mj1618/autosave-cli/internal/platform"
)

// DefaultMessagingTimeout bounds each accessibility IPC call.
const DefaultMessagingTimeout = 2 * time.Second

// Accessibility implements platform.Accessibility with the AX API.
type Accessibility struct {
	timeout time.Duration
}

// NewAccessibility creates an Accessibility whose per-call messaging
// timeout is timeout (DefaultMessagingTimeout when zero).
func NewAccessibility(timeout time.Duration) *Accessibility {
	if timeout <= 0 {
		timeout = DefaultMessagingTimeout
	}
	return &Accessibility{timeout: timeout}
}

// Windows returns the AXWindows of the application with the given pid.
func (a *Accessibility) Windows(pid int) ([]platform.Element, error) {
	if err := CheckAccessibilityPermission(); err != nil {
		return nil, err
	}
	app := C.ax_app(C.pid_t(pid), C.float(a.timeout.Seconds()))
	if app == 0 {
		return nil, fmt.Errorf("windows of pid %d: %w", pid, platform.ErrStaleProcess)
	}
	defer C.ax_release(app)

	windows, code := copyElements(app, "AXWindows", a.timeout)
	if err := axErr(fmt.Sprintf("windows of pid %d", pid), code); err != nil {
		return nil, err
	}
	return windows, nil
}

// axElement is a retained AXUIElementRef. The reference is released when
// the Go value is collected. timeout is passed on to its children.
type axElement struct {
	ref     C.AXUIElementRef
	timeout time.Duration
}

func newElement(ref C.AXUIElementRef, timeout time.Duration) *axElement {
	el := &axElement{ref: ref, timeout: timeout}
	runtime.SetFinalizer(el, func(e *axElement) { C.ax_release(e.ref) })
	return el
}

// Attribute implements platform.Element.
func (e *axElement) Attribute(name model.Attr) model.AttrResult {
	cName := C.CString(string(name))
	defer C.free(unsafe.Pointer(cName))

	var out *C.char
	code := int(C.ax_copy_string(e.ref, cName, &out))
	runtime.KeepAlive(e)
	switch {
	case code == axSuccess && out != nil:
		defer C.free(unsafe.Pointer(out))
		v := C.GoString(out)
		if v == "" {
			return model.Absent()
		}
		return model.Present(v)
	case code == axSuccess, axAbsent(code):
		return model.Absent()
	default:
		return model.Failed(axErr(string(name), code))
	}
}

// Children implements platform.Element.
func (e *axElement) Children() ([]platform.Element, error) {
	kids, code := copyElements(e.ref, "AXChildren", e.timeout)
	runtime.KeepAlive(e)
	if axAbsent(code) {
		return nil, nil
	}
	if err := axErr("children", code); err != nil {
		return nil, err
	}
	return kids, nil
}

// Press implements platform.Element.
func (e *axElement) Press() error {
	code := int(C.ax_press(e.ref))
	runtime.KeepAlive(e)
	return pressErr(code)
}

// copyElements reads an element-array attribute and wraps each element.
// Every element gets the messaging timeout.
func copyElements(ref C.AXUIElementRef, attr string, timeout time.Duration) ([]platform.Element, int) {
	cAttr := C.CString(attr)
	defer C.free(unsafe.Pointer(cAttr))

	var items *C.AXUIElementRef
	var count C.int
	code := int(C.ax_copy_elements(ref, cAttr, C.float(timeout.Seconds()), &items, &count))
	if code != axSuccess {
		return nil, code
	}
	if items == nil || count == 0 {
		if items != nil {
			C.free(unsafe.Pointer(items))
		}
		return nil, axSuccess
	}
	defer C.free(unsafe.Pointer(items))

	refs := unsafe.Slice(items, int(count))
	out := make([]platform.Element, len(refs))
	for i, r := range refs {
		out[i] = newElement(r, timeout)
	}
	return out, axSuccess
}
