//go:build windows

package clip

import "github.com/bnema/cursorlock/internal/winapi"

type cursorClipper struct{}

// NewClipper returns the ClipCursor backed clipper
func NewClipper() (Clipper, error) {
	return cursorClipper{}, nil
}

func (cursorClipper) Clip(r Region) error {
	return winapi.ClipCursor(winapi.RECT{
		Left:   r.Left,
		Top:    r.Top,
		Right:  r.Right,
		Bottom: r.Bottom,
	})
}

func (cursorClipper) Release() error {
	return winapi.ReleaseCursor()
}
