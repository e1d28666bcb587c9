//go:build windows

package display

import "github.com/bnema/cursorlock/internal/winapi"

// win32Backend enumerates monitors with EnumDisplayMonitors and resolves
// their model names
type win32Backend struct{}

func newWin32Backend() (Backend, error) {
	return &win32Backend{}, nil
}

func (w *win32Backend) GetMonitors() ([]*Monitor, error) {
	infos, err := winapi.EnumMonitors()
	if err != nil {
		return nil, err
	}

	monitors := make([]*Monitor, 0, len(infos))
	for _, info := range infos {
		monitors = append(monitors, &Monitor{
			ID:      info.Device,
			Name:    info.Name,
			X:       info.Bounds.Left,
			Y:       info.Bounds.Top,
			Width:   info.Bounds.Right - info.Bounds.Left,
			Height:  info.Bounds.Bottom - info.Bounds.Top,
			Primary: info.Primary,
		})
	}
	return monitors, nil
}

func (w *win32Backend) Close() error {
	return nil
}

func backends() []namedBackend {
	return []namedBackend{
		{"win32", newWin32Backend},
		{"screenshot", newScreenshotBackend},
	}
}
