//go:build !windows

package clip

import (
	"fmt"
	"runtime"

	"github.com/bnema/cursorlock/internal/errs"
)

// NewClipper reports that pointer confinement is unavailable
func NewClipper() (Clipper, error) {
	return nil, fmt.Errorf("pointer confinement on %s: %w", runtime.GOOS, errs.ErrUnsupported)
}
