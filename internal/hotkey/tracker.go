package hotkey

// Windows virtual key rawcodes for the modifier keys, including the
// left/right variants low-level hooks report
var modifierRawcodes = map[uint16]uint32{
	16: ModShift, 160: ModShift, 161: ModShift,
	17: ModCtrl, 162: ModCtrl, 163: ModCtrl,
	18: ModAlt, 164: ModAlt, 165: ModAlt,
	91: ModWin, 92: ModWin,
}

// keyTracker turns a raw key down/up stream into binding triggers. Auto
// repeat produces repeated downs, which only count once until the key is
// released.
type keyTracker struct {
	binding Binding
	down    map[uint16]bool
}

func newKeyTracker(b Binding) *keyTracker {
	return &keyTracker{binding: b, down: make(map[uint16]bool)}
}

func (t *keyTracker) modifiers() uint32 {
	var mods uint32
	for raw := range t.down {
		mods |= modifierRawcodes[raw]
	}
	return mods
}

// press records a key down and reports whether the binding fired
func (t *keyTracker) press(raw uint16) bool {
	if t.down[raw] {
		return false
	}
	t.down[raw] = true

	if uint32(raw) != t.binding.Key {
		return false
	}
	return t.modifiers() == t.binding.Modifiers
}

func (t *keyTracker) release(raw uint16) {
	delete(t.down, raw)
}
