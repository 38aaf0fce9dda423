package keys

import "strings"

// Modifier is a bitmask over the four modifier groups. None is the zero
// value.
type Modifier uint8

const (
	None  Modifier = 0
	Shift Modifier = 1 << 0
	Ctrl  Modifier = 1 << 1
	Alt   Modifier = 1 << 2
	Super Modifier = 1 << 3

	// AllModifiers is the union of every modifier bit.
	AllModifiers = Shift | Ctrl | Alt | Super
)

// Has reports whether every bit in m is set in mod.
func (mod Modifier) Has(m Modifier) bool {
	return mod&m == m
}

// With returns mod with the bits of m added.
func (mod Modifier) With(m Modifier) Modifier {
	return mod | m
}

// Without returns mod with the bits of m cleared.
func (mod Modifier) Without(m Modifier) Modifier {
	return mod &^ m
}

// Key returns the canonical key used to press the modifier, preferring the
// left-side variant. Returns KeyUnknown for None or multi-bit masks.
func (mod Modifier) Key() Key {
	switch mod {
	case Shift:
		return KeyShiftLeft
	case Ctrl:
		return KeyCtrlLeft
	case Alt:
		return KeyAltLeft
	case Super:
		return KeySuperLeft
	default:
		return KeyUnknown
	}
}

func (mod Modifier) String() string {
	if mod == None {
		return "none"
	}
	var parts []string
	if mod.Has(Shift) {
		parts = append(parts, "shift")
	}
	if mod.Has(Ctrl) {
		parts = append(parts, "ctrl")
	}
	if mod.Has(Alt) {
		parts = append(parts, "alt")
	}
	if mod.Has(Super) {
		parts = append(parts, "super")
	}
	return strings.Join(parts, "+")
}

// ParseModifier parses a "+"-separated modifier list such as "ctrl+alt".
// Unknown names are ignored; an empty string yields None.
func ParseModifier(s string) Modifier {
	mod := None
	for _, part := range strings.Split(s, "+") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "shift":
			mod = mod.With(Shift)
		case "ctrl", "control":
			mod = mod.With(Ctrl)
		case "alt":
			mod = mod.With(Alt)
		case "super", "meta", "win", "cmd":
			mod = mod.With(Super)
		}
	}
	return mod
}
