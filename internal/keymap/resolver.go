// Package keymap resolves compiled layout symbols into logical keys and
// builds the keycode tables consumed by the sender (write path) and the
// listener (read path). Dynamic discovery wins over the static fallback
// table; the fallback only fills keys discovery missed.
package keymap

import (
	"github.com/keywire/keywire/internal/logger"
	"github.com/keywire/keywire/internal/xkb"
	"github.com/keywire/keywire/keys"
)

// xkbEvdevOffset separates the xkb keycode space from the kernel evdev code
// space on Linux. Transports on other platforms consume their native codes
// directly with no offset.
const xkbEvdevOffset = 8

// Table maps logical keys to the evdev codes the virtual device expects.
// Built once per sender instance; read-only afterward.
type Table struct {
	codes map[keys.Key]int
}

// Code returns the evdev code for a logical key. The second result is false
// when the key has no mapping; callers must treat that as a defined
// per-call failure, never substitute a default code.
func (t *Table) Code(k keys.Key) (int, bool) {
	code, ok := t.codes[k]
	return code, ok
}

// Len returns the number of mapped logical keys.
func (t *Table) Len() int {
	return len(t.codes)
}

// Build constructs the injection table from a compiled symbol stream.
// Discovered entries are inserted first-wins per logical key; the static
// fallback then covers everything discovery missed. An empty or nil stream
// (compiler unavailable or failed) yields the pure fallback table.
func Build(entries []xkb.Entry) *Table {
	t := &Table{codes: make(map[keys.Key]int, len(fallbackCodes))}

	discovered := 0
	for _, e := range entries {
		k := KeyForSymbol(e.Sym, e.Name)
		if k == keys.KeyUnknown {
			continue
		}
		code := int(e.Code) - xkbEvdevOffset
		if code <= 0 {
			continue
		}
		if _, ok := t.codes[k]; !ok {
			t.codes[k] = code
			discovered++
		}
	}

	filled := 0
	for k, code := range fallbackCodes {
		if _, ok := t.codes[k]; !ok {
			t.codes[k] = code
			filled++
		}
	}

	logger.Debugf("keymap: table built, discovered=%d fallback=%d", discovered, filled)
	return t
}

// directSymbols maps non-range keysyms straight to logical keys.
var directSymbols = map[xkb.Symbol]keys.Key{
	xkb.SymReturn:     keys.KeyEnter,
	xkb.SymEscape:     keys.KeyEscape,
	xkb.SymBackSpace:  keys.KeyBackspace,
	xkb.SymTab:        keys.KeyTab,
	xkb.SymSpace:      keys.KeySpace,
	xkb.SymCapsLock:   keys.KeyCapsLock,
	xkb.SymPrint:      keys.KeyPrintScreen,
	xkb.SymScrollLock: keys.KeyScrollLock,
	xkb.SymPause:      keys.KeyPause,
	xkb.SymInsert:     keys.KeyInsert,
	xkb.SymDelete:     keys.KeyDelete,
	xkb.SymHome:       keys.KeyHome,
	xkb.SymEnd:        keys.KeyEnd,
	xkb.SymPageUp:     keys.KeyPageUp,
	xkb.SymPageDown:   keys.KeyPageDown,

	xkb.SymLeft:  keys.KeyLeft,
	xkb.SymRight: keys.KeyRight,
	xkb.SymUp:    keys.KeyUp,
	xkb.SymDown:  keys.KeyDown,

	xkb.SymNumLock:    keys.KeyNumLock,
	xkb.SymKPDivide:   keys.KeyNumpadDivide,
	xkb.SymKPMultiply: keys.KeyNumpadMultiply,
	xkb.SymKPSubtract: keys.KeyNumpadMinus,
	xkb.SymKPAdd:      keys.KeyNumpadPlus,
	xkb.SymKPEnter:    keys.KeyNumpadEnter,
	xkb.SymKPDecimal:  keys.KeyNumpadDecimal,

	xkb.SymGrave:        keys.KeyGrave,
	xkb.SymMinus:        keys.KeyMinus,
	xkb.SymEqual:        keys.KeyEqual,
	xkb.SymBracketLeft:  keys.KeyLeftBracket,
	xkb.SymBracketRight: keys.KeyRightBracket,
	xkb.SymBackslash:    keys.KeyBackslash,
	xkb.SymSemicolon:    keys.KeySemicolon,
	xkb.SymApostrophe:   keys.KeyApostrophe,
	xkb.SymComma:        keys.KeyComma,
	xkb.SymPeriod:       keys.KeyPeriod,
	xkb.SymSlash:        keys.KeySlash,

	xkb.SymShiftL:   keys.KeyShiftLeft,
	xkb.SymShiftR:   keys.KeyShiftRight,
	xkb.SymControlL: keys.KeyCtrlLeft,
	xkb.SymControlR: keys.KeyCtrlRight,
	xkb.SymAltL:     keys.KeyAltLeft,
	xkb.SymAltR:     keys.KeyAltRight,
	xkb.SymSuperL:   keys.KeySuperLeft,
	xkb.SymSuperR:   keys.KeySuperRight,
	xkb.SymMenu:     keys.KeyMenu,

	xkb.SymAudioMute:        keys.KeyMute,
	xkb.SymAudioLowerVolume: keys.KeyVolumeDown,
	xkb.SymAudioRaiseVolume: keys.KeyVolumeUp,
	xkb.SymAudioPlay:        keys.KeyMediaPlayPause,
	xkb.SymAudioStop:        keys.KeyMediaStop,
	xkb.SymAudioNext:        keys.KeyMediaNext,
	xkb.SymAudioPrev:        keys.KeyMediaPrevious,
}

// KeyForSymbol resolves a layout symbol to a logical key. Resolution is
// layered: contiguous ranges first (letters fold case, digits, function
// keys), then the direct symbol table, then the symbol's textual name
// through the key-name parser. Unresolvable symbols yield KeyUnknown.
func KeyForSymbol(sym xkb.Symbol, name string) keys.Key {
	switch {
	case sym >= xkb.Syma && sym <= xkb.Symz:
		return keys.KeyA + keys.Key(sym-xkb.Syma)
	case sym >= xkb.SymA && sym <= xkb.SymZ:
		return keys.KeyA + keys.Key(sym-xkb.SymA)
	case sym >= xkb.Sym0 && sym <= xkb.Sym9:
		return keys.KeyNum0 + keys.Key(sym-xkb.Sym0)
	case sym >= xkb.SymF1 && sym <= xkb.SymF20:
		return keys.KeyF1 + keys.Key(sym-xkb.SymF1)
	case sym >= xkb.SymKP0 && sym <= xkb.SymKP9:
		return keys.KeyNumpad0 + keys.Key(sym-xkb.SymKP0)
	}
	if k, ok := directSymbols[sym]; ok {
		return k
	}
	if name != "" {
		return keys.Parse(name)
	}
	return keys.KeyUnknown
}
