//go:build darwin && cgo

package darwin

import (
	"log/slog"

	"github.com/mj1618/autosave-cli/internal/exec"
	"github.com/mj1618/autosave-cli/internal/platform"
	"github.com/mj1618/autosave-cli/internal/procfind"
)

func init() {
	platform.CheckPermissionsFunc = CheckAccessibilityPermission
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Processes:     procfind.New(exec.NewExecRunner(), procfind.DefaultTimeout, slog.Default()),
			Accessibility: NewAccessibility(DefaultMessagingTimeout),
			Activator:     NewActivator(),
		}, nil
	}
}
