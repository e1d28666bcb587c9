// Package display handles monitor detection and selection
package display

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bnema/cursorlock/internal/clip"
	"github.com/bnema/cursorlock/internal/errs"
	"github.com/bnema/cursorlock/internal/logger"
)

// Monitor represents a physical display
type Monitor struct {
	ID      string
	Name    string
	X       int32 // Position in global coordinate space
	Y       int32
	Width   int32
	Height  int32
	Primary bool
}

// Bounds returns the monitor's boundaries
func (m *Monitor) Bounds() (x1, y1, x2, y2 int32) {
	return m.X, m.Y, m.X + m.Width, m.Y + m.Height
}

// Region returns the clip region covering the whole monitor
func (m *Monitor) Region() (clip.Region, error) {
	return clip.RegionFromBounds(m.X, m.Y, m.Width, m.Height)
}

// Describe returns the one-line summary shown when confinement starts
func (m *Monitor) Describe() string {
	return fmt.Sprintf("%s (%dx%d, pos: %dx%d)", m.Name, m.Width, m.Height, m.X, m.Y)
}

// Display holds the detected monitors in selection order
type Display struct {
	monitors []*Monitor
	backend  Backend
}

// Backend interface for different display detection methods
type Backend interface {
	GetMonitors() ([]*Monitor, error)
	Close() error
}

// New creates a display manager from the first backend that works
func New() (*Display, error) {
	var lastErr error
	for _, b := range backends() {
		backend, err := b.create()
		if err != nil {
			logger.Debugf("Display backend %s unavailable: %v", b.name, err)
			lastErr = err
			continue
		}

		d, err := NewWithBackend(backend)
		if err != nil {
			logger.Debugf("Display backend %s failed: %v", b.name, err)
			lastErr = err
			continue
		}
		logger.Debugf("Using display backend %s", b.name)
		return d, nil
	}

	if lastErr == nil {
		lastErr = errs.ErrNoDisplay
	}
	return nil, fmt.Errorf("no display backend available: %w", lastErr)
}

// NewWithBackend queries backend once and sorts the result
func NewWithBackend(backend Backend) (*Display, error) {
	monitors, err := backend.GetMonitors()
	if err != nil {
		backend.Close()
		return nil, err
	}
	if len(monitors) == 0 {
		backend.Close()
		return nil, errs.ErrNoDisplay
	}

	SortMonitors(monitors)
	determinePrimaryMonitor(monitors)

	return &Display{
		monitors: monitors,
		backend:  backend,
	}, nil
}

type namedBackend struct {
	name   string
	create func() (Backend, error)
}

// GetMonitors returns all detected monitors, left to right
func (d *Display) GetMonitors() []*Monitor {
	return d.monitors
}

// GetPrimaryMonitor returns the primary monitor
func (d *Display) GetPrimaryMonitor() *Monitor {
	for _, m := range d.monitors {
		if m.Primary {
			return m
		}
	}
	// Fallback to first monitor
	if len(d.monitors) > 0 {
		return d.monitors[0]
	}
	return nil
}

// Select returns the monitor at a 1-based index
func (d *Display) Select(index int) (*Monitor, error) {
	if index < 1 || index > len(d.monitors) {
		return nil, fmt.Errorf("%w: %d is not between 1 and %d", errs.ErrInvalidSelection, index, len(d.monitors))
	}
	return d.monitors[index-1], nil
}

// Close cleans up resources
func (d *Display) Close() error {
	if d.backend != nil {
		return d.backend.Close()
	}
	return nil
}

// SortMonitors orders monitors left to right, then top to bottom
func SortMonitors(monitors []*Monitor) {
	sort.SliceStable(monitors, func(i, j int) bool {
		if monitors[i].X != monitors[j].X {
			return monitors[i].X < monitors[j].X
		}
		return monitors[i].Y < monitors[j].Y
	})
}

// ParseSelection validates a typed 1-based monitor number against count
func ParseSelection(input string, count int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidSelection, strings.TrimSpace(input))
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("%w: %d is not between 1 and %d", errs.ErrInvalidSelection, n, count)
	}
	return n, nil
}

// determinePrimaryMonitor keeps the OS primary flag when a backend reports
// one, otherwise the monitor at (0,0) is primary, with fallback to the first
func determinePrimaryMonitor(monitors []*Monitor) {
	for _, monitor := range monitors {
		if monitor.Primary {
			return
		}
	}

	for _, monitor := range monitors {
		if monitor.X == 0 && monitor.Y == 0 {
			monitor.Primary = true
			return
		}
	}

	if len(monitors) > 0 {
		monitors[0].Primary = true
	}
}
