// Package app composes the confinement controller, the listeners and the
// shutdown handler into one run
package app

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/cursorlock/internal/clip"
	"github.com/bnema/cursorlock/internal/errs"
	"github.com/bnema/cursorlock/internal/foreground"
	"github.com/bnema/cursorlock/internal/hotkey"
	"github.com/bnema/cursorlock/internal/logger"
	"github.com/bnema/cursorlock/internal/shutdown"
	"github.com/bnema/cursorlock/internal/toggle"
)

// Options are the capability flags chosen at startup
type Options struct {
	Region          clip.Region
	Binding         hotkey.Binding
	Reassert        bool
	ShutdownTimeout time.Duration

	// OnToggle is called after each hotkey press. Optional.
	OnToggle func(enabled bool)
}

// Platform bundles the OS facing pieces so tests can substitute them
type Platform struct {
	Clipper  clip.Clipper
	Notifier clip.Notifier
	Hotkey   hotkey.Backend
	// Foreground may be nil when reassertion is off
	Foreground foreground.Hook
	Signals    <-chan os.Signal
}

// App is one confinement session
type App struct {
	opts       Options
	platform   Platform
	state      *toggle.State
	controller *clip.Controller
	shutdown   *shutdown.Handler
	log        *log.Logger
}

// New wires an app. Nothing touches the OS until Run.
func New(opts Options, platform Platform) *App {
	state := toggle.New(true)
	controller := clip.NewController(platform.Clipper, platform.Notifier)

	return &App{
		opts:       opts,
		platform:   platform,
		state:      state,
		controller: controller,
		shutdown:   shutdown.NewHandler(state, controller, opts.ShutdownTimeout),
		log:        logger.WithPrefix("app"),
	}
}

// State exposes the shared toggle
func (a *App) State() *toggle.State {
	return a.state
}

// Run activates confinement, starts the listeners and blocks until a signal
// arrives (returns nil) or a listener fails (returns its error). Confinement
// is released on both paths.
func (a *App) Run(ctx context.Context) error {
	if !a.opts.Region.Valid() {
		return errs.Init("region", errs.ErrNoDisplay)
	}

	if err := a.controller.Activate(a.opts.Region); err != nil {
		return errs.Init("initial activation", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	listener := hotkey.NewListener(a.platform.Hotkey, a.opts.Binding, a.state, a.controller, a.opts.Region)
	listener.OnToggle = a.opts.OnToggle
	g.Go(func() error {
		return listener.Run(gctx)
	})

	if a.opts.Reassert && a.platform.Foreground != nil {
		watcher := foreground.NewWatcher(a.platform.Foreground, a.state, a.controller, a.opts.Region)
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}

	groupDone := make(chan error, 1)
	go func() {
		groupDone <- g.Wait()
	}()

	// Listeners stop before the release so none of them can clip again
	// after it.
	select {
	case sig := <-a.platform.Signals:
		cancel()
		a.waitListeners(groupDone)
		a.shutdown.Handle(sig.String())
		return nil

	case err := <-groupDone:
		// both listeners have returned here
		if ctx.Err() != nil {
			a.shutdown.Handle("context cancelled")
			return nil
		}
		switch {
		case errs.IsFatal(err):
			a.log.Error("Listener failed to start", "err", err)
		case err != nil:
			a.log.Error("Listener stopped", "err", err)
		}
		a.shutdown.Handle("listener stopped")
		return err

	case <-ctx.Done():
		a.waitListeners(groupDone)
		a.shutdown.Handle("context cancelled")
		return nil
	}
}

// Released reports whether the pointer was left free at shutdown
func (a *App) Released() bool {
	return a.shutdown.Released()
}

// waitListeners gives the listeners a bounded window to unregister
func (a *App) waitListeners(groupDone <-chan error) {
	timeout := a.opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = shutdown.DefaultTimeout
	}

	select {
	case err := <-groupDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			a.log.Warn("Listener stopped with error", "err", err)
		}
	case <-time.After(timeout):
		a.log.Warn("Listeners did not stop in time", "timeout", timeout)
	}
}
