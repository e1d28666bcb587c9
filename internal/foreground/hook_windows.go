//go:build windows

package foreground

import (
	"sync/atomic"

	"github.com/bnema/cursorlock/internal/errs"
	"github.com/bnema/cursorlock/internal/winapi"
)

// winEventHook subscribes to EVENT_SYSTEM_FOREGROUND out of context. The
// callback closure carries the watcher, so several hooks can coexist.
type winEventHook struct {
	handle uintptr
	tid    atomic.Uint32
}

// NewHook returns the SetWinEventHook backed hook
func NewHook() (Hook, error) {
	return &winEventHook{}, nil
}

func (h *winEventHook) Install(onChange func()) error {
	winapi.EnsureMessageQueue()
	h.tid.Store(winapi.CurrentThreadID())

	handle, err := winapi.SetForegroundHook(func(_, _, _ uintptr, _, _ int32, _, _ uint32) uintptr {
		onChange()
		return 0
	})
	if err != nil {
		return errs.OsCall("SetWinEventHook", err)
	}
	h.handle = handle
	return nil
}

func (h *winEventHook) Pump() error {
	var m winapi.MSG
	for {
		ok, err := winapi.GetMessage(&m)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		winapi.DispatchMessage(&m)
	}
}

func (h *winEventHook) Wake() {
	if tid := h.tid.Load(); tid != 0 {
		_ = winapi.PostQuit(tid)
	}
}

func (h *winEventHook) Uninstall() error {
	if h.handle == 0 {
		return nil
	}
	err := winapi.UnhookWinEvent(h.handle)
	h.handle = 0
	return errs.OsCall("UnhookWinEvent", err)
}
