// Package hotkey registers the global toggle key and runs the listener loop
// that flips confinement on every press
package hotkey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/cursorlock/internal/errs"
)

// Modifier masks, identical to the RegisterHotKey MOD_* flags
const (
	ModAlt   uint32 = 0x1
	ModCtrl  uint32 = 0x2
	ModShift uint32 = 0x4
	ModWin   uint32 = 0x8
)

// Virtual key codes used by bindings
const (
	VKSpace  uint32 = 0x20
	VKPause  uint32 = 0x13
	VKScroll uint32 = 0x91
	VKInsert uint32 = 0x2D
	VKHome   uint32 = 0x24
	VKEnd    uint32 = 0x23
	VKF1     uint32 = 0x70
	VKF9     uint32 = 0x78
	VKF12    uint32 = 0x7B
	VKF24    uint32 = 0x87
)

var namedKeys = map[string]uint32{
	"SPACE":      VKSpace,
	"PAUSE":      VKPause,
	"SCROLLLOCK": VKScroll,
	"INSERT":     VKInsert,
	"HOME":       VKHome,
	"END":        VKEnd,
}

var modifierNames = map[string]uint32{
	"CTRL":    ModCtrl,
	"CONTROL": ModCtrl,
	"ALT":     ModAlt,
	"SHIFT":   ModShift,
	"WIN":     ModWin,
	"SUPER":   ModWin,
}

// Binding is a key plus the modifiers that must be held with it
type Binding struct {
	Modifiers uint32
	Key       uint32
}

// DefaultBinding is F9 with no modifiers
var DefaultBinding = Binding{Key: VKF9}

// ParseKey resolves a key name such as "F9", "K" or "Pause" to a virtual key
func ParseKey(name string) (uint32, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if n == "" {
		return 0, fmt.Errorf("empty key name")
	}

	if vk, ok := namedKeys[n]; ok {
		return vk, nil
	}

	if len(n) > 1 && n[0] == 'F' {
		num, err := strconv.Atoi(n[1:])
		if err == nil && num >= 1 && num <= 24 {
			vk := VKF1 + uint32(num-1)
			if vk == VKF12 {
				return 0, fmt.Errorf("F12: %w", errs.ErrReservedKey)
			}
			return vk, nil
		}
	}

	if len(n) == 1 {
		c := n[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return uint32(c), nil
		}
	}

	return 0, fmt.Errorf("unknown key %q", name)
}

// ParseModifiers resolves a "ctrl+alt" style list. Empty means no modifiers.
func ParseModifiers(s string) (uint32, error) {
	var mods uint32
	for _, part := range strings.Split(s, "+") {
		p := strings.ToUpper(strings.TrimSpace(part))
		if p == "" {
			continue
		}
		m, ok := modifierNames[p]
		if !ok {
			return 0, fmt.Errorf("unknown modifier %q", part)
		}
		mods |= m
	}
	return mods, nil
}

// ParseBinding parses a full combination such as "Ctrl+Alt+F9". The last
// element is the key.
func ParseBinding(s string) (Binding, error) {
	parts := strings.Split(s, "+")
	key, err := ParseKey(parts[len(parts)-1])
	if err != nil {
		return Binding{}, err
	}
	mods, err := ParseModifiers(strings.Join(parts[:len(parts)-1], "+"))
	if err != nil {
		return Binding{}, err
	}
	return Binding{Modifiers: mods, Key: key}, nil
}

// KeyName returns the display name for a virtual key
func KeyName(vk uint32) string {
	switch {
	case vk >= VKF1 && vk <= VKF24:
		return fmt.Sprintf("F%d", vk-VKF1+1)
	case (vk >= 'A' && vk <= 'Z') || (vk >= '0' && vk <= '9'):
		return string(rune(vk))
	}
	for name, code := range namedKeys {
		if code == vk {
			return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
		}
	}
	return fmt.Sprintf("0x%02X", vk)
}

func (b Binding) String() string {
	var parts []string
	if b.Modifiers&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if b.Modifiers&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if b.Modifiers&ModShift != 0 {
		parts = append(parts, "Shift")
	}
	if b.Modifiers&ModWin != 0 {
		parts = append(parts, "Win")
	}
	parts = append(parts, KeyName(b.Key))
	return strings.Join(parts, "+")
}
