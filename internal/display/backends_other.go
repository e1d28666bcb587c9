//go:build !windows

package display

func backends() []namedBackend {
	return []namedBackend{
		{"screenshot", newScreenshotBackend},
	}
}
