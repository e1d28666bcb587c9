//go:build !windows

package hotkey

import (
	"fmt"
	"runtime"

	"github.com/bnema/cursorlock/internal/errs"
)

func newRegisterBackend() (Backend, error) {
	return nil, fmt.Errorf("global hotkeys on %s: %w", runtime.GOOS, errs.ErrUnsupported)
}

func newHookBackend() (Backend, error) {
	return nil, fmt.Errorf("keyboard hook on %s: %w", runtime.GOOS, errs.ErrUnsupported)
}
