package clip

import (
	"github.com/charmbracelet/log"

	"github.com/bnema/cursorlock/internal/chime"
	"github.com/bnema/cursorlock/internal/errs"
	"github.com/bnema/cursorlock/internal/logger"
)

// Clipper is the OS primitive for pointer confinement
type Clipper interface {
	Clip(r Region) error
	Release() error
}

// Notifier plays a chime for a transition
type Notifier interface {
	Notify(kind chime.Kind) error
}

// Controller applies and removes confinement and announces each change.
// It holds no state of its own, so every call reaches the OS.
type Controller struct {
	clipper  Clipper
	notifier Notifier
	log      *log.Logger
}

// NewController creates a controller. notifier may be nil for silent operation.
func NewController(clipper Clipper, notifier Notifier) *Controller {
	return &Controller{
		clipper:  clipper,
		notifier: notifier,
		log:      logger.WithPrefix("clip"),
	}
}

// Activate confines the pointer to r and plays the activation chime
func (c *Controller) Activate(r Region) error {
	if err := c.clipper.Clip(r); err != nil {
		return errs.OsCall("apply confinement", err)
	}
	c.log.Debug("Confinement applied", "region", r)
	c.notify(chime.Activated)
	return nil
}

// Deactivate removes confinement and plays the deactivation chime
func (c *Controller) Deactivate() error {
	if err := c.clipper.Release(); err != nil {
		return errs.OsCall("remove confinement", err)
	}
	c.log.Debug("Confinement removed")
	c.notify(chime.Deactivated)
	return nil
}

// Reassert reapplies confinement without a chime. The OS drops the clip on
// some focus changes, so this runs on every foreground switch.
func (c *Controller) Reassert(r Region) error {
	if err := c.clipper.Clip(r); err != nil {
		return errs.OsCall("reassert confinement", err)
	}
	return nil
}

func (c *Controller) notify(kind chime.Kind) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.Notify(kind); err != nil {
		c.log.Warn("Chime failed", "err", err)
	}
}
