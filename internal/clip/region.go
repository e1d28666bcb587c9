// Package clip applies and removes pointer confinement
package clip

import "fmt"

// Region is the rectangle the pointer is confined to. Right and Bottom are
// exclusive, matching the Win32 RECT convention.
type Region struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// RegionFromBounds builds a region from a display origin and size
func RegionFromBounds(x, y, width, height int32) (Region, error) {
	if width <= 0 || height <= 0 {
		return Region{}, fmt.Errorf("invalid display size %dx%d", width, height)
	}
	return Region{
		Left:   x,
		Top:    y,
		Right:  x + width,
		Bottom: y + height,
	}, nil
}

// Width returns the horizontal extent
func (r Region) Width() int32 {
	return r.Right - r.Left
}

// Height returns the vertical extent
func (r Region) Height() int32 {
	return r.Bottom - r.Top
}

// Valid reports whether the region has a positive area
func (r Region) Valid() bool {
	return r.Right > r.Left && r.Bottom > r.Top
}

func (r Region) String() string {
	return fmt.Sprintf("%dx%d at %d,%d", r.Width(), r.Height(), r.Left, r.Top)
}
