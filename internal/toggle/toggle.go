// Package toggle holds the shared enabled flag that the listeners coordinate through
package toggle

import "sync/atomic"

// State is the confinement on/off flag. The zero value is disabled.
type State struct {
	enabled atomic.Bool
	flips   atomic.Uint64
}

// New creates a state with the given initial value
func New(enabled bool) *State {
	s := &State{}
	s.enabled.Store(enabled)
	return s
}

// Read returns the current value
func (s *State) Read() bool {
	return s.enabled.Load()
}

// Flip inverts the flag and returns the new value. Concurrent flips never
// collapse into one: each caller observes a distinct transition.
func (s *State) Flip() bool {
	for {
		old := s.enabled.Load()
		if s.enabled.CompareAndSwap(old, !old) {
			s.flips.Add(1)
			return !old
		}
	}
}

// Flips returns how many transitions have been applied
func (s *State) Flips() uint64 {
	return s.flips.Load()
}
