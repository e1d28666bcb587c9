//go:build windows

package hotkey

import (
	"errors"
	"sync/atomic"

	"github.com/bnema/cursorlock/internal/errs"
	"github.com/bnema/cursorlock/internal/winapi"
)

const hotkeyID = 1

// registerBackend uses RegisterHotKey with the hotkey bound to the listener
// thread, so WM_HOTKEY lands in that thread's queue
type registerBackend struct {
	tid atomic.Uint32
}

func newRegisterBackend() (Backend, error) {
	return &registerBackend{}, nil
}

func (b *registerBackend) Register(binding Binding) error {
	winapi.EnsureMessageQueue()
	b.tid.Store(winapi.CurrentThreadID())

	err := winapi.RegisterHotKey(hotkeyID, binding.Modifiers|winapi.MOD_NOREPEAT, binding.Key)
	if errors.Is(err, winapi.ERROR_HOTKEY_ALREADY_REGISTERED) {
		return errs.OsCall("RegisterHotKey", errs.ErrHotkeyConflict)
	}
	return errs.OsCall("RegisterHotKey", err)
}

func (b *registerBackend) Wait() (EventKind, error) {
	var m winapi.MSG
	for {
		ok, err := winapi.GetMessage(&m)
		if err != nil {
			return EventQuit, err
		}
		if !ok {
			return EventQuit, nil
		}
		if m.Message == winapi.WM_HOTKEY && m.WParam == hotkeyID {
			return EventTrigger, nil
		}
		winapi.DispatchMessage(&m)
	}
}

func (b *registerBackend) Unregister() error {
	return winapi.UnregisterHotKey(hotkeyID)
}

func (b *registerBackend) Wake() {
	if tid := b.tid.Load(); tid != 0 {
		_ = winapi.PostQuit(tid)
	}
}
