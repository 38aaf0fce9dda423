// Package keys defines the platform-independent logical key and modifier
// model shared by the sender and listener.
package keys

// Key identifies a logical keyboard key, independent of layout and platform.
// The zero value is KeyA; KeyUnknown marks anything that could not be
// resolved.
type Key int

const (
	// Letters. Contiguous so resolvers can do range arithmetic.
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Top-row digits.
	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9

	// Function keys.
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20

	// Control and editing.
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyCapsLock
	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrows.
	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	// Numpad.
	KeyNumLock
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadDivide
	KeyNumpadMultiply
	KeyNumpadMinus
	KeyNumpadPlus
	KeyNumpadEnter
	KeyNumpadDecimal

	// Punctuation (US-layout reference positions).
	KeyGrave
	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyComma
	KeyPeriod
	KeySlash

	// Modifier keys.
	KeyShiftLeft
	KeyShiftRight
	KeyCtrlLeft
	KeyCtrlRight
	KeyAltLeft
	KeyAltRight
	KeySuperLeft
	KeySuperRight
	KeyMenu

	// Media keys.
	KeyMute
	KeyVolumeDown
	KeyVolumeUp
	KeyMediaPlayPause
	KeyMediaStop
	KeyMediaNext
	KeyMediaPrevious

	KeyUnknown
)

// keyCount is the number of logical keys, KeyUnknown included.
const keyCount = int(KeyUnknown) + 1

// All returns every logical key except KeyUnknown, in enumeration order.
func All() []Key {
	out := make([]Key, 0, keyCount-1)
	for k := KeyA; k < KeyUnknown; k++ {
		out = append(out, k)
	}
	return out
}

// IsModifier reports whether k is one of the eight modifier-side keys.
func (k Key) IsModifier() bool {
	return k.Modifier() != None
}

// Modifier returns the modifier bit a key contributes to the active modifier
// state, or None for non-modifier keys. Left and right variants fold to the
// same bit.
func (k Key) Modifier() Modifier {
	switch k {
	case KeyShiftLeft, KeyShiftRight:
		return Shift
	case KeyCtrlLeft, KeyCtrlRight:
		return Ctrl
	case KeyAltLeft, KeyAltRight:
		return Alt
	case KeySuperLeft, KeySuperRight:
		return Super
	default:
		return None
	}
}
