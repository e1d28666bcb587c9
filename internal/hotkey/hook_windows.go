//go:build windows

package hotkey

import (
	"sync"

	hook "github.com/robotn/gohook"
)

// hookBackend watches every key through a low-level keyboard hook. It never
// conflicts with other applications' registrations.
type hookBackend struct {
	events  chan hook.Event
	tracker *keyTracker

	wakeOnce sync.Once
	done     chan struct{}
}

func newHookBackend() (Backend, error) {
	return &hookBackend{done: make(chan struct{})}, nil
}

func (b *hookBackend) Register(binding Binding) error {
	b.tracker = newKeyTracker(binding)
	b.events = hook.Start()
	return nil
}

func (b *hookBackend) Wait() (EventKind, error) {
	for {
		select {
		case <-b.done:
			return EventQuit, nil
		case ev, ok := <-b.events:
			if !ok {
				return EventQuit, nil
			}
			switch ev.Kind {
			case hook.KeyDown, hook.KeyHold:
				if b.tracker.press(ev.Rawcode) {
					return EventTrigger, nil
				}
			case hook.KeyUp:
				b.tracker.release(ev.Rawcode)
			}
		}
	}
}

func (b *hookBackend) Unregister() error {
	hook.End()
	return nil
}

func (b *hookBackend) Wake() {
	b.wakeOnce.Do(func() { close(b.done) })
}
