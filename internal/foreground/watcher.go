// Package foreground reasserts pointer confinement whenever another window
// takes the foreground
package foreground

import (
	"context"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/bnema/cursorlock/internal/clip"
	"github.com/bnema/cursorlock/internal/errs"
	"github.com/bnema/cursorlock/internal/logger"
	"github.com/bnema/cursorlock/internal/toggle"
)

// Hook is an OS foreground-change subscription. Install, Pump and Uninstall
// run on the same locked OS thread; Pump dispatches callbacks until Wake is
// called from any goroutine.
type Hook interface {
	Install(onChange func()) error
	Pump() error
	Wake()
	Uninstall() error
}

// Reasserter reapplies confinement without side effects
type Reasserter interface {
	Reassert(r clip.Region) error
}

// Watcher listens for foreground changes and reapplies the clip while enabled
type Watcher struct {
	hook       Hook
	state      *toggle.State
	reasserter Reasserter
	region     clip.Region
	log        *log.Logger
}

// NewWatcher creates a watcher bound to one region
func NewWatcher(hook Hook, state *toggle.State, reasserter Reasserter, region clip.Region) *Watcher {
	return &Watcher{
		hook:       hook,
		state:      state,
		reasserter: reasserter,
		region:     region,
		log:        logger.WithPrefix("foreground"),
	}
}

// Run installs the hook and pumps events until ctx is cancelled. Hook
// installation failure is returned as *errs.InitializationError.
func (w *Watcher) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := w.hook.Install(w.onForeground); err != nil {
		return errs.Init("foreground hook", err)
	}
	defer func() {
		if err := w.hook.Uninstall(); err != nil {
			w.log.Warn("Failed to remove foreground hook", "err", err)
		}
	}()
	w.log.Debug("Foreground hook installed")

	stop := context.AfterFunc(ctx, w.hook.Wake)
	defer stop()

	if err := w.hook.Pump(); err != nil && ctx.Err() == nil {
		return errs.OsCall("foreground message loop", err)
	}
	return nil
}

// onForeground runs inside the OS callback. Nothing escapes it.
func (w *Watcher) onForeground() {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("Recovered panic in foreground callback", "panic", r)
		}
	}()

	if !w.state.Read() {
		return
	}
	if err := w.reasserter.Reassert(w.region); err != nil {
		w.log.Warn("Failed to reassert confinement", "err", err)
	}
}
