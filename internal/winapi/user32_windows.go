//go:build windows

package winapi

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procClipCursor          = user32.NewProc("ClipCursor")
	procRegisterHotKey      = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey    = user32.NewProc("UnregisterHotKey")
	procGetMessageW         = user32.NewProc("GetMessageW")
	procPeekMessageW        = user32.NewProc("PeekMessageW")
	procTranslateMessage    = user32.NewProc("TranslateMessage")
	procDispatchMessageW    = user32.NewProc("DispatchMessageW")
	procPostThreadMessageW  = user32.NewProc("PostThreadMessageW")
	procSetWinEventHook     = user32.NewProc("SetWinEventHook")
	procUnhookWinEvent      = user32.NewProc("UnhookWinEvent")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
	procEnumDisplayDevicesW = user32.NewProc("EnumDisplayDevicesW")
)

const (
	WM_QUIT   = 0x0012
	WM_HOTKEY = 0x0312
	WM_USER   = 0x0400

	PM_NOREMOVE = 0x0000

	MOD_ALT      = 0x0001
	MOD_CONTROL  = 0x0002
	MOD_SHIFT    = 0x0004
	MOD_WIN      = 0x0008
	MOD_NOREPEAT = 0x4000

	EVENT_SYSTEM_FOREGROUND = 0x0003
	WINEVENT_OUTOFCONTEXT   = 0x0000
	WINEVENT_SKIPOWNPROCESS = 0x0002

	MONITORINFOF_PRIMARY = 0x1

	ERROR_HOTKEY_ALREADY_REGISTERED = windows.Errno(1409)
)

// RECT mirrors the Win32 RECT layout
type RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// POINT mirrors the Win32 POINT layout
type POINT struct {
	X int32
	Y int32
}

// MSG mirrors the Win32 MSG layout
type MSG struct {
	HWnd     uintptr
	Message  uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       POINT
	LPrivate uint32
}

type monitorInfoExW struct {
	Size    uint32
	Monitor RECT
	Work    RECT
	Flags   uint32
	Device  [32]uint16
}

type displayDeviceW struct {
	Cb           uint32
	DeviceName   [32]uint16
	DeviceString [128]uint16
	StateFlags   uint32
	DeviceID     [128]uint16
	DeviceKey    [128]uint16
}

// callErr picks the errno reported by a failed proc call, falling back to a
// generic error when the call left it at zero
func callErr(name string, err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) && errno != 0 {
		return errno
	}
	return fmt.Errorf("%s failed", name)
}

// ClipCursor confines the pointer to r
func ClipCursor(r RECT) error {
	ret, _, err := procClipCursor.Call(uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return callErr("ClipCursor", err)
	}
	return nil
}

// ReleaseCursor removes any pointer confinement
func ReleaseCursor() error {
	ret, _, err := procClipCursor.Call(0)
	if ret == 0 {
		return callErr("ClipCursor", err)
	}
	return nil
}

// RegisterHotKey binds a thread hotkey. WM_HOTKEY is posted to the calling
// thread's queue because no window is attached.
func RegisterHotKey(id int32, modifiers, vk uint32) error {
	ret, _, err := procRegisterHotKey.Call(0, uintptr(id), uintptr(modifiers), uintptr(vk))
	if ret == 0 {
		return callErr("RegisterHotKey", err)
	}
	return nil
}

// UnregisterHotKey releases a thread hotkey registered with id
func UnregisterHotKey(id int32) error {
	ret, _, err := procUnregisterHotKey.Call(0, uintptr(id))
	if ret == 0 {
		return callErr("UnregisterHotKey", err)
	}
	return nil
}

// GetMessage blocks until a message arrives on the calling thread. It returns
// false when WM_QUIT is received.
func GetMessage(m *MSG) (bool, error) {
	ret, _, err := procGetMessageW.Call(uintptr(unsafe.Pointer(m)), 0, 0, 0)
	switch int32(ret) {
	case -1:
		return false, callErr("GetMessageW", err)
	case 0:
		return false, nil
	default:
		return true, nil
	}
}

// EnsureMessageQueue forces the OS to create a message queue for the calling
// thread so PostThreadMessage succeeds before the first GetMessage call
func EnsureMessageQueue() {
	var m MSG
	procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, WM_USER, WM_USER, PM_NOREMOVE)
}

// DispatchMessage translates and dispatches a message to its window procedure
func DispatchMessage(m *MSG) {
	procTranslateMessage.Call(uintptr(unsafe.Pointer(m)))
	procDispatchMessageW.Call(uintptr(unsafe.Pointer(m)))
}

// PostQuit posts WM_QUIT to the thread identified by tid
func PostQuit(tid uint32) error {
	ret, _, err := procPostThreadMessageW.Call(uintptr(tid), WM_QUIT, 0, 0)
	if ret == 0 {
		return callErr("PostThreadMessageW", err)
	}
	return nil
}

// CurrentThreadID returns the OS thread id of the caller
func CurrentThreadID() uint32 {
	return windows.GetCurrentThreadId()
}

// WinEventProc is the callback shape for SetWinEventHook
type WinEventProc func(hook, event, hwnd uintptr, idObject, idChild int32, thread, timeMs uint32) uintptr

// SetForegroundHook installs an out-of-context hook for foreground changes.
// The callback runs on the installing thread while it pumps messages.
func SetForegroundHook(fn WinEventProc) (uintptr, error) {
	cb := windows.NewCallback(func(hook, event, hwnd, idObject, idChild, thread, timeMs uintptr) uintptr {
		return fn(hook, event, hwnd, int32(idObject), int32(idChild), uint32(thread), uint32(timeMs))
	})

	h, _, err := procSetWinEventHook.Call(
		EVENT_SYSTEM_FOREGROUND,
		EVENT_SYSTEM_FOREGROUND,
		0,
		cb,
		0,
		0,
		WINEVENT_OUTOFCONTEXT|WINEVENT_SKIPOWNPROCESS,
	)
	if h == 0 {
		return 0, callErr("SetWinEventHook", err)
	}
	return h, nil
}

// UnhookWinEvent removes a hook installed by SetForegroundHook
func UnhookWinEvent(h uintptr) error {
	ret, _, err := procUnhookWinEvent.Call(h)
	if ret == 0 {
		return callErr("UnhookWinEvent", err)
	}
	return nil
}

// MonitorInfo describes one attached display as reported by GetMonitorInfoW
type MonitorInfo struct {
	Device  string
	Name    string
	Bounds  RECT
	Primary bool
}

// EnumMonitors lists the attached displays in OS order. Names come from the
// display configuration when it can be queried.
func EnumMonitors() ([]MonitorInfo, error) {
	var monitors []MonitorInfo

	// older drivers may not answer; the adapter lookup still names them
	friendly, _ := targetNames()

	cb := windows.NewCallback(func(hMonitor, hdc, lprc, data uintptr) uintptr {
		var mi monitorInfoExW
		mi.Size = uint32(unsafe.Sizeof(mi))

		ret, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&mi)))
		if ret != 0 {
			device := windows.UTF16ToString(mi.Device[:])
			monitors = append(monitors, MonitorInfo{
				Device:  device,
				Name:    monitorName(device, friendly, driverName),
				Bounds:  mi.Monitor,
				Primary: mi.Flags&MONITORINFOF_PRIMARY != 0,
			})
		}
		return 1
	})

	ret, _, err := procEnumDisplayMonitors.Call(0, 0, cb, 0)
	if ret == 0 {
		return nil, callErr("EnumDisplayMonitors", err)
	}
	return monitors, nil
}

// driverName returns the monitor driver description for an adapter device
// such as \\.\DISPLAY1, or "" when there is none
func driverName(device string) string {
	name, err := windows.UTF16PtrFromString(device)
	if err != nil {
		return ""
	}

	var dd displayDeviceW
	dd.Cb = uint32(unsafe.Sizeof(dd))
	ret, _, _ := procEnumDisplayDevicesW.Call(uintptr(unsafe.Pointer(name)), 0, uintptr(unsafe.Pointer(&dd)), 0)
	if ret == 0 {
		return ""
	}

	return windows.UTF16ToString(dd.DeviceString[:])
}
