// Package darwin provides macOS platform support using the Accessibility
// and AppKit APIs. All functionality requires CGo (Objective-C frameworks).
// On other platforms, or when CGo is disabled, the package compiles to the
// error mapping only and registers no provider.
package darwin
