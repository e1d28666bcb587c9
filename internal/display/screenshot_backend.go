package display

import (
	"fmt"

	"github.com/kbinani/screenshot"

	"github.com/bnema/cursorlock/internal/errs"
)

// screenshotBackend reads display bounds through kbinani/screenshot. It has
// no model names, so monitors are labelled by index.
type screenshotBackend struct{}

func newScreenshotBackend() (Backend, error) {
	return &screenshotBackend{}, nil
}

func (s *screenshotBackend) GetMonitors() ([]*Monitor, error) {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return nil, errs.ErrNoDisplay
	}

	monitors := make([]*Monitor, 0, n)
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		if b.Empty() {
			continue
		}
		monitors = append(monitors, &Monitor{
			ID:     fmt.Sprintf("display-%d", i),
			Name:   fmt.Sprintf("Display %d", i+1),
			X:      int32(b.Min.X),
			Y:      int32(b.Min.Y),
			Width:  int32(b.Dx()),
			Height: int32(b.Dy()),
		})
	}
	return monitors, nil
}

func (s *screenshotBackend) Close() error {
	return nil
}
