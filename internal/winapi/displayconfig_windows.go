//go:build windows

package winapi

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	procGetDisplayConfigBufferSizes = user32.NewProc("GetDisplayConfigBufferSizes")
	procQueryDisplayConfig          = user32.NewProc("QueryDisplayConfig")
	procDisplayConfigGetDeviceInfo  = user32.NewProc("DisplayConfigGetDeviceInfo")
)

const (
	QDC_ONLY_ACTIVE_PATHS = 0x00000002

	DISPLAYCONFIG_DEVICE_INFO_GET_SOURCE_NAME = 1
	DISPLAYCONFIG_DEVICE_INFO_GET_TARGET_NAME = 2

	errorInsufficientBuffer = 122
)

type luid struct {
	LowPart  uint32
	HighPart int32
}

type displayConfigPathSourceInfo struct {
	AdapterID   luid
	ID          uint32
	ModeInfoIdx uint32
	StatusFlags uint32
}

type displayConfigPathTargetInfo struct {
	AdapterID        luid
	ID               uint32
	ModeInfoIdx      uint32
	OutputTechnology uint32
	Rotation         uint32
	Scaling          uint32
	RefreshRate      [2]uint32
	ScanLineOrdering uint32
	TargetAvailable  int32
	StatusFlags      uint32
}

type displayConfigPathInfo struct {
	Source displayConfigPathSourceInfo
	Target displayConfigPathTargetInfo
	Flags  uint32
}

type displayConfigModeInfo struct {
	InfoType  uint32
	ID        uint32
	AdapterID luid
	Mode      [48]byte
}

type displayConfigDeviceInfoHeader struct {
	Type      uint32
	Size      uint32
	AdapterID luid
	ID        uint32
}

type displayConfigSourceDeviceName struct {
	Header            displayConfigDeviceInfoHeader
	ViewGdiDeviceName [32]uint16
}

type displayConfigTargetDeviceName struct {
	Header                    displayConfigDeviceInfoHeader
	Flags                     uint32
	OutputTechnology          uint32
	EdidManufactureID         uint16
	EdidProductCodeID         uint16
	ConnectorInstance         uint32
	MonitorFriendlyDeviceName [64]uint16
	MonitorDevicePath         [128]uint16
}

// activePaths returns the active display paths. The buffer sizes can change
// between the two calls when a monitor is plugged in, so it retries.
func activePaths() ([]displayConfigPathInfo, error) {
	for {
		var numPaths, numModes uint32
		ret, _, _ := procGetDisplayConfigBufferSizes.Call(
			QDC_ONLY_ACTIVE_PATHS,
			uintptr(unsafe.Pointer(&numPaths)),
			uintptr(unsafe.Pointer(&numModes)),
		)
		if ret != 0 {
			return nil, callErr("GetDisplayConfigBufferSizes", windows.Errno(ret))
		}
		if numPaths == 0 {
			return nil, nil
		}

		paths := make([]displayConfigPathInfo, numPaths)
		modes := make([]displayConfigModeInfo, numModes)
		ret, _, _ = procQueryDisplayConfig.Call(
			QDC_ONLY_ACTIVE_PATHS,
			uintptr(unsafe.Pointer(&numPaths)),
			uintptr(unsafe.Pointer(&paths[0])),
			uintptr(unsafe.Pointer(&numModes)),
			uintptr(unsafe.Pointer(&modes[0])),
			0,
		)
		switch ret {
		case 0:
			return paths[:numPaths], nil
		case errorInsufficientBuffer:
			continue
		default:
			return nil, callErr("QueryDisplayConfig", windows.Errno(ret))
		}
	}
}

// targetNames maps each active source GDI device name (\\.\DISPLAY1) to the
// EDID friendly name of the monitor it drives
func targetNames() (map[string]string, error) {
	paths, err := activePaths()
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(paths))
	for _, p := range paths {
		var source displayConfigSourceDeviceName
		source.Header = displayConfigDeviceInfoHeader{
			Type:      DISPLAYCONFIG_DEVICE_INFO_GET_SOURCE_NAME,
			Size:      uint32(unsafe.Sizeof(source)),
			AdapterID: p.Source.AdapterID,
			ID:        p.Source.ID,
		}
		if ret, _, _ := procDisplayConfigGetDeviceInfo.Call(uintptr(unsafe.Pointer(&source.Header))); ret != 0 {
			continue
		}

		var target displayConfigTargetDeviceName
		target.Header = displayConfigDeviceInfoHeader{
			Type:      DISPLAYCONFIG_DEVICE_INFO_GET_TARGET_NAME,
			Size:      uint32(unsafe.Sizeof(target)),
			AdapterID: p.Target.AdapterID,
			ID:        p.Target.ID,
		}
		if ret, _, _ := procDisplayConfigGetDeviceInfo.Call(uintptr(unsafe.Pointer(&target.Header))); ret != 0 {
			continue
		}

		gdi := windows.UTF16ToString(source.ViewGdiDeviceName[:])
		// mirrored outputs share a source; keep the first named one
		if _, seen := names[gdi]; seen {
			continue
		}
		if friendly := windows.UTF16ToString(target.MonitorFriendlyDeviceName[:]); friendly != "" {
			names[gdi] = friendly
		}
	}
	return names, nil
}
