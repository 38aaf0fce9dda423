package keys

import "strings"

// keyNames holds the canonical textual name for every logical key.
var keyNames = map[Key]string{
	KeyA: "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f",
	KeyG: "g", KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l",
	KeyM: "m", KeyN: "n", KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r",
	KeyS: "s", KeyT: "t", KeyU: "u", KeyV: "v", KeyW: "w", KeyX: "x",
	KeyY: "y", KeyZ: "z",

	KeyNum0: "0", KeyNum1: "1", KeyNum2: "2", KeyNum3: "3", KeyNum4: "4",
	KeyNum5: "5", KeyNum6: "6", KeyNum7: "7", KeyNum8: "8", KeyNum9: "9",

	KeyF1: "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4", KeyF5: "f5",
	KeyF6: "f6", KeyF7: "f7", KeyF8: "f8", KeyF9: "f9", KeyF10: "f10",
	KeyF11: "f11", KeyF12: "f12", KeyF13: "f13", KeyF14: "f14",
	KeyF15: "f15", KeyF16: "f16", KeyF17: "f17", KeyF18: "f18",
	KeyF19: "f19", KeyF20: "f20",

	KeyEnter:       "enter",
	KeyEscape:      "escape",
	KeyBackspace:   "backspace",
	KeyTab:         "tab",
	KeySpace:       "space",
	KeyCapsLock:    "capslock",
	KeyPrintScreen: "printscreen",
	KeyScrollLock:  "scrolllock",
	KeyPause:       "pause",
	KeyInsert:      "insert",
	KeyDelete:      "delete",
	KeyHome:        "home",
	KeyEnd:         "end",
	KeyPageUp:      "pageup",
	KeyPageDown:    "pagedown",

	KeyLeft:  "left",
	KeyRight: "right",
	KeyUp:    "up",
	KeyDown:  "down",

	KeyNumLock:        "numlock",
	KeyNumpad0:        "numpad0",
	KeyNumpad1:        "numpad1",
	KeyNumpad2:        "numpad2",
	KeyNumpad3:        "numpad3",
	KeyNumpad4:        "numpad4",
	KeyNumpad5:        "numpad5",
	KeyNumpad6:        "numpad6",
	KeyNumpad7:        "numpad7",
	KeyNumpad8:        "numpad8",
	KeyNumpad9:        "numpad9",
	KeyNumpadDivide:   "numpaddivide",
	KeyNumpadMultiply: "numpadmultiply",
	KeyNumpadMinus:    "numpadminus",
	KeyNumpadPlus:     "numpadplus",
	KeyNumpadEnter:    "numpadenter",
	KeyNumpadDecimal:  "numpaddecimal",

	KeyGrave:        "grave",
	KeyMinus:        "minus",
	KeyEqual:        "equal",
	KeyLeftBracket:  "leftbracket",
	KeyRightBracket: "rightbracket",
	KeyBackslash:    "backslash",
	KeySemicolon:    "semicolon",
	KeyApostrophe:   "apostrophe",
	KeyComma:        "comma",
	KeyPeriod:       "period",
	KeySlash:        "slash",

	KeyShiftLeft:  "shiftleft",
	KeyShiftRight: "shiftright",
	KeyCtrlLeft:   "ctrlleft",
	KeyCtrlRight:  "ctrlright",
	KeyAltLeft:    "altleft",
	KeyAltRight:   "altright",
	KeySuperLeft:  "superleft",
	KeySuperRight: "superright",
	KeyMenu:       "menu",

	KeyMute:           "mute",
	KeyVolumeDown:     "volumedown",
	KeyVolumeUp:       "volumeup",
	KeyMediaPlayPause: "mediaplaypause",
	KeyMediaStop:      "mediastop",
	KeyMediaNext:      "medianext",
	KeyMediaPrevious:  "mediaprevious",

	KeyUnknown: "unknown",
}

// keyAliases maps additional accepted spellings to keys. Keys are stored in
// normalized form (lower case, separators stripped) so that X11 keysym names
// like "Page_Up" or "Shift_L" resolve through the same path as user input.
var keyAliases = map[string]Key{
	"return": KeyEnter,
	"esc":    KeyEscape,
	"del":    KeyDelete,
	"prior":  KeyPageUp,
	"next":   KeyPageDown,
	"print":  KeyPrintScreen,
	"sysreq": KeyPrintScreen,

	"shiftl":   KeyShiftLeft,
	"shiftr":   KeyShiftRight,
	"lshift":   KeyShiftLeft,
	"rshift":   KeyShiftRight,
	"shift":    KeyShiftLeft,
	"controll": KeyCtrlLeft,
	"controlr": KeyCtrlRight,
	"control":  KeyCtrlLeft,
	"ctrl":     KeyCtrlLeft,
	"lctrl":    KeyCtrlLeft,
	"rctrl":    KeyCtrlRight,
	"altl":     KeyAltLeft,
	"altr":     KeyAltRight,
	"alt":      KeyAltLeft,
	"lalt":     KeyAltLeft,
	"ralt":     KeyAltRight,
	"superl":   KeySuperLeft,
	"superr":   KeySuperRight,
	"super":    KeySuperLeft,
	"meta":     KeySuperLeft,
	"metal":    KeySuperLeft,
	"metar":    KeySuperRight,
	"win":      KeySuperLeft,

	"kpdivide":   KeyNumpadDivide,
	"kpmultiply": KeyNumpadMultiply,
	"kpsubtract": KeyNumpadMinus,
	"kpadd":      KeyNumpadPlus,
	"kpenter":    KeyNumpadEnter,
	"kpdecimal":  KeyNumpadDecimal,
	"kp0":        KeyNumpad0,
	"kp1":        KeyNumpad1,
	"kp2":        KeyNumpad2,
	"kp3":        KeyNumpad3,
	"kp4":        KeyNumpad4,
	"kp5":        KeyNumpad5,
	"kp6":        KeyNumpad6,
	"kp7":        KeyNumpad7,
	"kp8":        KeyNumpad8,
	"kp9":        KeyNumpad9,

	"bracketleft":  KeyLeftBracket,
	"bracketright": KeyRightBracket,

	"audiomute":            KeyMute,
	"xf86audiomute":        KeyMute,
	"audiolowervolume":     KeyVolumeDown,
	"xf86audiolowervolume": KeyVolumeDown,
	"audioraisevolume":     KeyVolumeUp,
	"xf86audioraisevolume": KeyVolumeUp,
	"audioplay":            KeyMediaPlayPause,
	"xf86audioplay":        KeyMediaPlayPause,
	"playpause":            KeyMediaPlayPause,
	"audiostop":            KeyMediaStop,
	"xf86audiostop":        KeyMediaStop,
	"audionext":            KeyMediaNext,
	"xf86audionext":        KeyMediaNext,
	"audioprev":            KeyMediaPrevious,
	"xf86audioprev":        KeyMediaPrevious,
}

// nameToKey is the inverse of keyNames, built once at init.
var nameToKey = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = k
	}
	return m
}()

// String returns the canonical name of the key, or "unknown" for values
// outside the enumeration.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// normalizeName lowers the case and strips separator characters so that
// "Page_Up", "page-up" and "PageUp" all compare equal.
func normalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case '_', '-', ' ':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse resolves a key name (canonical, alias, or X11 keysym spelling) to a
// Key. Unrecognized names yield KeyUnknown.
func Parse(s string) Key {
	name := normalizeName(s)
	if name == "" {
		return KeyUnknown
	}
	if k, ok := nameToKey[name]; ok {
		return k
	}
	if k, ok := keyAliases[name]; ok {
		return k
	}
	return KeyUnknown
}
