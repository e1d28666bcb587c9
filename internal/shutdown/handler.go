// Package shutdown releases pointer confinement before the process exits
package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bnema/cursorlock/internal/logger"
	"github.com/bnema/cursorlock/internal/toggle"
)

// DefaultTimeout bounds how long the release may hold up exit
const DefaultTimeout = 2 * time.Second

// Deactivator removes confinement
type Deactivator interface {
	Deactivate() error
}

// Handler releases confinement once, only if it is currently enabled
type Handler struct {
	state       *toggle.State
	deactivator Deactivator
	timeout     time.Duration
	once        sync.Once
	released    atomic.Bool
	log         *log.Logger
}

// NewHandler creates a handler. A non-positive timeout uses DefaultTimeout.
func NewHandler(state *toggle.State, deactivator Deactivator, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Handler{
		state:       state,
		deactivator: deactivator,
		timeout:     timeout,
		log:         logger.WithPrefix("shutdown"),
	}
}

// Handle runs the release on the first call and is a no-op afterwards. It
// returns within the handler timeout even if the OS call hangs.
func (h *Handler) Handle(reason string) {
	h.once.Do(func() {
		h.log.Info("Shutting down", "reason", reason)

		if !h.state.Read() {
			h.log.Debug("Confinement already off")
			h.released.Store(true)
			return
		}

		done := make(chan error, 1)
		go func() {
			done <- h.deactivator.Deactivate()
		}()

		select {
		case err := <-done:
			if err != nil {
				h.log.Error("Failed to release confinement", "err", err)
				return
			}
			h.log.Info("Confinement released")
			h.released.Store(true)
		case <-time.After(h.timeout):
			h.log.Warn("Gave up waiting for confinement release", "timeout", h.timeout)
		}
	})
}

// Released reports whether Handle left the pointer free. It is false before
// Handle runs and after a failed or abandoned release.
func (h *Handler) Released() bool {
	return h.released.Load()
}

// Notify returns a channel receiving interrupt and termination signals, and
// a function that stops delivery. Console close, logoff and system shutdown
// arrive as SIGTERM on Windows.
func Notify() (<-chan os.Signal, func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	return sigChan, func() { signal.Stop(sigChan) }
}
