package engine

import (
	"fmt"

	"github.com/mj1618/autosave-cli/internal/platform"
)

// Invoke triggers the element's primary action. The call is made exactly
// once; a rejection is returned to the caller and never retried here.
func Invoke(el platform.Element) error {
	if err := el.Press(); err != nil {
		return fmt.Errorf("press: %w", err)
	}
	return nil
}
