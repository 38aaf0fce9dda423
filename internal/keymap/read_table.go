package keymap

import (
	"github.com/keywire/keywire/internal/xkb"
	"github.com/keywire/keywire/keys"
)

// ReadTable is the read-path counterpart of Table: it maps observed evdev
// codes back to logical keys and the Unicode codepoints they produce under
// the active layout with no modifiers held.
type ReadTable struct {
	keys  map[int]keys.Key
	runes map[int]rune
}

// BuildRead constructs the observation table from a compiled symbol stream,
// falling back to the static table for codes discovery missed. Like the
// write path, the first discovered entry per code wins.
func BuildRead(entries []xkb.Entry) *ReadTable {
	t := &ReadTable{
		keys:  make(map[int]keys.Key, len(fallbackCodes)),
		runes: make(map[int]rune, len(entries)),
	}

	for _, e := range entries {
		code := int(e.Code) - xkbEvdevOffset
		if code <= 0 {
			continue
		}
		if k := KeyForSymbol(e.Sym, e.Name); k != keys.KeyUnknown {
			if _, ok := t.keys[code]; !ok {
				t.keys[code] = k
			}
		}
		if r := e.Sym.Rune(); r != 0 {
			if _, ok := t.runes[code]; !ok {
				t.runes[code] = r
			}
		}
	}

	for k, code := range fallbackCodes {
		if _, ok := t.keys[code]; !ok {
			t.keys[code] = k
		}
	}

	return t
}

// Key returns the logical key an evdev code maps to, or KeyUnknown.
func (t *ReadTable) Key(code int) keys.Key {
	if k, ok := t.keys[code]; ok {
		return k
	}
	return keys.KeyUnknown
}

// Rune returns the codepoint an evdev code produces, or 0 when it has none
// or the layout was not discovered.
func (t *ReadTable) Rune(code int) rune {
	return t.runes[code]
}
