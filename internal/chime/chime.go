// Package chime plays the short audio cues for confinement changes
package chime

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/bnema/cursorlock/internal/errs"
)

// Kind identifies which transition a chime announces
type Kind int

const (
	Activated Kind = iota
	Deactivated
)

func (k Kind) String() string {
	switch k {
	case Activated:
		return "activated"
	case Deactivated:
		return "deactivated"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// tone is one beep of a chime
type tone struct {
	freq     float64
	duration int
}

// Rising pair for activation, falling pair for deactivation
var tones = map[Kind][]tone{
	Activated: {
		{beeep.DefaultFreq, beeep.DefaultDuration / 4},
		{beeep.DefaultFreq * 2, beeep.DefaultDuration / 3},
	},
	Deactivated: {
		{beeep.DefaultFreq * 2, beeep.DefaultDuration / 4},
		{beeep.DefaultFreq, beeep.DefaultDuration / 3},
	},
}

// Player plays chimes synchronously. A disabled player is silent.
type Player struct {
	enabled bool
	beep    func(freq float64, duration int) error
}

// NewPlayer creates a player backed by the system speaker
func NewPlayer(enabled bool) *Player {
	return &Player{
		enabled: enabled,
		beep:    beeep.Beep,
	}
}

// Enabled reports whether the player makes any sound
func (p *Player) Enabled() bool {
	return p.enabled
}

// Notify plays the chime for kind. Failures come back as *errs.NotificationError.
func (p *Player) Notify(kind Kind) error {
	if !p.enabled {
		return nil
	}

	seq, ok := tones[kind]
	if !ok {
		return &errs.NotificationError{Kind: kind.String(), Err: fmt.Errorf("unknown chime")}
	}

	for _, t := range seq {
		if err := p.beep(t.freq, t.duration); err != nil {
			return &errs.NotificationError{Kind: kind.String(), Err: err}
		}
	}
	return nil
}
