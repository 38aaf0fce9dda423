package keymap

import (
	evdev "github.com/gvalkov/golang-evdev"

	"github.com/keywire/keywire/keys"
)

// fallbackCodes is the compiled-in table of well-known evdev codes covering
// every logical key. It only fills table slots that layout discovery left
// absent. Adding a logical key without an entry here is a defect; a test
// enumerates the full key set against this table.
var fallbackCodes = map[keys.Key]int{
	keys.KeyA: evdev.KEY_A,
	keys.KeyB: evdev.KEY_B,
	keys.KeyC: evdev.KEY_C,
	keys.KeyD: evdev.KEY_D,
	keys.KeyE: evdev.KEY_E,
	keys.KeyF: evdev.KEY_F,
	keys.KeyG: evdev.KEY_G,
	keys.KeyH: evdev.KEY_H,
	keys.KeyI: evdev.KEY_I,
	keys.KeyJ: evdev.KEY_J,
	keys.KeyK: evdev.KEY_K,
	keys.KeyL: evdev.KEY_L,
	keys.KeyM: evdev.KEY_M,
	keys.KeyN: evdev.KEY_N,
	keys.KeyO: evdev.KEY_O,
	keys.KeyP: evdev.KEY_P,
	keys.KeyQ: evdev.KEY_Q,
	keys.KeyR: evdev.KEY_R,
	keys.KeyS: evdev.KEY_S,
	keys.KeyT: evdev.KEY_T,
	keys.KeyU: evdev.KEY_U,
	keys.KeyV: evdev.KEY_V,
	keys.KeyW: evdev.KEY_W,
	keys.KeyX: evdev.KEY_X,
	keys.KeyY: evdev.KEY_Y,
	keys.KeyZ: evdev.KEY_Z,

	keys.KeyNum0: evdev.KEY_0,
	keys.KeyNum1: evdev.KEY_1,
	keys.KeyNum2: evdev.KEY_2,
	keys.KeyNum3: evdev.KEY_3,
	keys.KeyNum4: evdev.KEY_4,
	keys.KeyNum5: evdev.KEY_5,
	keys.KeyNum6: evdev.KEY_6,
	keys.KeyNum7: evdev.KEY_7,
	keys.KeyNum8: evdev.KEY_8,
	keys.KeyNum9: evdev.KEY_9,

	keys.KeyF1:  evdev.KEY_F1,
	keys.KeyF2:  evdev.KEY_F2,
	keys.KeyF3:  evdev.KEY_F3,
	keys.KeyF4:  evdev.KEY_F4,
	keys.KeyF5:  evdev.KEY_F5,
	keys.KeyF6:  evdev.KEY_F6,
	keys.KeyF7:  evdev.KEY_F7,
	keys.KeyF8:  evdev.KEY_F8,
	keys.KeyF9:  evdev.KEY_F9,
	keys.KeyF10: evdev.KEY_F10,
	keys.KeyF11: evdev.KEY_F11,
	keys.KeyF12: evdev.KEY_F12,
	keys.KeyF13: evdev.KEY_F13,
	keys.KeyF14: evdev.KEY_F14,
	keys.KeyF15: evdev.KEY_F15,
	keys.KeyF16: evdev.KEY_F16,
	keys.KeyF17: evdev.KEY_F17,
	keys.KeyF18: evdev.KEY_F18,
	keys.KeyF19: evdev.KEY_F19,
	keys.KeyF20: evdev.KEY_F20,

	keys.KeyEnter:       evdev.KEY_ENTER,
	keys.KeyEscape:      evdev.KEY_ESC,
	keys.KeyBackspace:   evdev.KEY_BACKSPACE,
	keys.KeyTab:         evdev.KEY_TAB,
	keys.KeySpace:       evdev.KEY_SPACE,
	keys.KeyCapsLock:    evdev.KEY_CAPSLOCK,
	keys.KeyPrintScreen: evdev.KEY_SYSRQ,
	keys.KeyScrollLock:  evdev.KEY_SCROLLLOCK,
	keys.KeyPause:       evdev.KEY_PAUSE,
	keys.KeyInsert:      evdev.KEY_INSERT,
	keys.KeyDelete:      evdev.KEY_DELETE,
	keys.KeyHome:        evdev.KEY_HOME,
	keys.KeyEnd:         evdev.KEY_END,
	keys.KeyPageUp:      evdev.KEY_PAGEUP,
	keys.KeyPageDown:    evdev.KEY_PAGEDOWN,

	keys.KeyLeft:  evdev.KEY_LEFT,
	keys.KeyRight: evdev.KEY_RIGHT,
	keys.KeyUp:    evdev.KEY_UP,
	keys.KeyDown:  evdev.KEY_DOWN,

	keys.KeyNumLock:        evdev.KEY_NUMLOCK,
	keys.KeyNumpad0:        evdev.KEY_KP0,
	keys.KeyNumpad1:        evdev.KEY_KP1,
	keys.KeyNumpad2:        evdev.KEY_KP2,
	keys.KeyNumpad3:        evdev.KEY_KP3,
	keys.KeyNumpad4:        evdev.KEY_KP4,
	keys.KeyNumpad5:        evdev.KEY_KP5,
	keys.KeyNumpad6:        evdev.KEY_KP6,
	keys.KeyNumpad7:        evdev.KEY_KP7,
	keys.KeyNumpad8:        evdev.KEY_KP8,
	keys.KeyNumpad9:        evdev.KEY_KP9,
	keys.KeyNumpadDivide:   evdev.KEY_KPSLASH,
	keys.KeyNumpadMultiply: evdev.KEY_KPASTERISK,
	keys.KeyNumpadMinus:    evdev.KEY_KPMINUS,
	keys.KeyNumpadPlus:     evdev.KEY_KPPLUS,
	keys.KeyNumpadEnter:    evdev.KEY_KPENTER,
	keys.KeyNumpadDecimal:  evdev.KEY_KPDOT,

	keys.KeyGrave:        evdev.KEY_GRAVE,
	keys.KeyMinus:        evdev.KEY_MINUS,
	keys.KeyEqual:        evdev.KEY_EQUAL,
	keys.KeyLeftBracket:  evdev.KEY_LEFTBRACE,
	keys.KeyRightBracket: evdev.KEY_RIGHTBRACE,
	keys.KeyBackslash:    evdev.KEY_BACKSLASH,
	keys.KeySemicolon:    evdev.KEY_SEMICOLON,
	keys.KeyApostrophe:   evdev.KEY_APOSTROPHE,
	keys.KeyComma:        evdev.KEY_COMMA,
	keys.KeyPeriod:       evdev.KEY_DOT,
	keys.KeySlash:        evdev.KEY_SLASH,

	keys.KeyShiftLeft:  evdev.KEY_LEFTSHIFT,
	keys.KeyShiftRight: evdev.KEY_RIGHTSHIFT,
	keys.KeyCtrlLeft:   evdev.KEY_LEFTCTRL,
	keys.KeyCtrlRight:  evdev.KEY_RIGHTCTRL,
	keys.KeyAltLeft:    evdev.KEY_LEFTALT,
	keys.KeyAltRight:   evdev.KEY_RIGHTALT,
	keys.KeySuperLeft:  evdev.KEY_LEFTMETA,
	keys.KeySuperRight: evdev.KEY_RIGHTMETA,
	keys.KeyMenu:       evdev.KEY_MENU,

	keys.KeyMute:           evdev.KEY_MUTE,
	keys.KeyVolumeDown:     evdev.KEY_VOLUMEDOWN,
	keys.KeyVolumeUp:       evdev.KEY_VOLUMEUP,
	keys.KeyMediaPlayPause: evdev.KEY_PLAYPAUSE,
	keys.KeyMediaStop:      evdev.KEY_STOPCD,
	keys.KeyMediaNext:      evdev.KEY_NEXTSONG,
	keys.KeyMediaPrevious:  evdev.KEY_PREVIOUSSONG,
}

// FallbackCode returns the static evdev code for a logical key, independent
// of layout discovery.
func FallbackCode(k keys.Key) (int, bool) {
	code, ok := fallbackCodes[k]
	return code, ok
}
