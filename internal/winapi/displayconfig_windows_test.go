//go:build windows

package winapi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestDisplayConfigLayouts(t *testing.T) {
	assert.Equal(t, uintptr(72), unsafe.Sizeof(displayConfigPathInfo{}))
	assert.Equal(t, uintptr(64), unsafe.Sizeof(displayConfigModeInfo{}))
	assert.Equal(t, uintptr(20), unsafe.Sizeof(displayConfigDeviceInfoHeader{}))
	assert.Equal(t, uintptr(84), unsafe.Sizeof(displayConfigSourceDeviceName{}))
	assert.Equal(t, uintptr(420), unsafe.Sizeof(displayConfigTargetDeviceName{}))
}
