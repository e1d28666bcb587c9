package hotkey

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/bnema/cursorlock/internal/clip"
	"github.com/bnema/cursorlock/internal/errs"
	"github.com/bnema/cursorlock/internal/logger"
	"github.com/bnema/cursorlock/internal/toggle"
)

var errLoopEnded = errors.New("loop ended while still listening")

// EventKind is what a backend wait returned
type EventKind int

const (
	EventTrigger EventKind = iota
	EventQuit
)

// Backend owns the OS side of a global hotkey. Register, Wait and Unregister
// are called from the same locked OS thread. Wake may be called from any
// goroutine and makes a pending Wait return EventQuit.
type Backend interface {
	Register(b Binding) error
	Wait() (EventKind, error)
	Unregister() error
	Wake()
}

// Phase is the listener lifecycle position
type Phase int32

const (
	PhaseIdle Phase = iota
	PhaseRegistered
	PhaseListening
	PhaseUnregistering
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRegistered:
		return "registered"
	case PhaseListening:
		return "listening"
	case PhaseUnregistering:
		return "unregistering"
	case PhaseStopped:
		return "stopped"
	default:
		return fmt.Sprintf("phase(%d)", int32(p))
	}
}

// Controller is the subset of clip.Controller the listener drives
type Controller interface {
	Activate(r clip.Region) error
	Deactivate() error
}

// Listener flips the toggle state and confinement on each hotkey press
type Listener struct {
	backend    Backend
	binding    Binding
	state      *toggle.State
	controller Controller
	region     clip.Region

	phase atomic.Int32
	log   *log.Logger

	// OnToggle is called after each press with the new state. Optional.
	OnToggle func(enabled bool)
}

// NewListener creates a listener in the idle phase
func NewListener(backend Backend, binding Binding, state *toggle.State, controller Controller, region clip.Region) *Listener {
	return &Listener{
		backend:    backend,
		binding:    binding,
		state:      state,
		controller: controller,
		region:     region,
		log:        logger.WithPrefix("hotkey"),
	}
}

// Phase returns the current lifecycle phase
func (l *Listener) Phase() Phase {
	return Phase(l.phase.Load())
}

func (l *Listener) setPhase(p Phase) {
	l.phase.Store(int32(p))
	l.log.Debug("Phase changed", "phase", p)
}

// Run registers the binding and blocks until ctx is cancelled. A registration
// failure is returned as *errs.InitializationError. A quit the backend reports
// while ctx is still live is returned as *errs.OsCallError.
func (l *Listener) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer l.setPhase(PhaseStopped)

	if err := l.backend.Register(l.binding); err != nil {
		return errs.Init("hotkey registration", err)
	}
	l.setPhase(PhaseRegistered)
	l.log.Info("Toggle key registered", "key", l.binding)

	stop := context.AfterFunc(ctx, l.backend.Wake)
	defer stop()

	var loopErr error
	l.setPhase(PhaseListening)
	for {
		kind, err := l.backend.Wait()
		if err != nil {
			loopErr = errs.OsCall("hotkey message loop", err)
			break
		}
		if kind == EventQuit {
			if ctx.Err() == nil {
				loopErr = errs.OsCall("hotkey message loop", errLoopEnded)
			}
			break
		}
		l.handlePress()
	}

	l.setPhase(PhaseUnregistering)
	if err := l.backend.Unregister(); err != nil {
		l.log.Warn("Failed to unregister toggle key", "err", err)
	}

	if loopErr != nil && ctx.Err() == nil {
		return loopErr
	}
	return nil
}

// handlePress flips the state and applies the matching confinement. Errors
// stay inside the loop.
func (l *Listener) handlePress() {
	enabled := l.state.Flip()

	var err error
	if enabled {
		err = l.controller.Activate(l.region)
	} else {
		err = l.controller.Deactivate()
	}
	if err != nil {
		l.log.Error("Toggle failed", "enabled", enabled, "err", err)
	} else {
		l.log.Info("Toggled", "enabled", enabled)
	}

	if l.OnToggle != nil {
		l.OnToggle(enabled)
	}
}

// NewBackend builds the named backend: "register" or "hook"
func NewBackend(kind string) (Backend, error) {
	switch kind {
	case "", "register":
		return newRegisterBackend()
	case "hook":
		return newHookBackend()
	default:
		return nil, errors.New("unknown hotkey backend " + kind)
	}
}
