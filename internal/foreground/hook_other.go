//go:build !windows

package foreground

import (
	"fmt"
	"runtime"

	"github.com/bnema/cursorlock/internal/errs"
)

// NewHook reports that foreground notifications are unavailable
func NewHook() (Hook, error) {
	return nil, fmt.Errorf("foreground notifications on %s: %w", runtime.GOOS, errs.ErrUnsupported)
}
