// Package xkb compiles the active keyboard layout into a stream of
// (physical keycode, symbol) pairs. The real compiler binds libxkbcommon
// through cgo; a stub under !cgo yields an empty stream so callers fall back
// to their static tables.
package xkb

// Symbol is an X11/xkbcommon keysym value.
type Symbol uint32

// Entry is one compiled keymap slot: the symbol a physical keycode produces
// under the active layout with no modifiers held. Code is in the xkb keycode
// space (kernel evdev code + 8).
type Entry struct {
	Code uint32
	Sym  Symbol
	Name string // canonical keysym name, empty when unavailable
}

// Rune returns the Unicode codepoint a symbol produces, or 0 when it has
// none. Latin-1 keysyms map directly; keysyms of the form 0x01xxxxxx carry
// the codepoint in their low 24 bits.
func (s Symbol) Rune() rune {
	switch {
	case s >= 0x20 && s <= 0x7e, s >= 0xa0 && s <= 0xff:
		return rune(s)
	case s&0xff000000 == 0x01000000:
		return rune(s & 0x00ffffff)
	case s == SymReturn, s == SymKPEnter:
		return '\n'
	case s == SymTab:
		return '\t'
	default:
		return 0
	}
}
