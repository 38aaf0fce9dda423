package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCanonicalNamesRoundTrip(t *testing.T) {
	for _, k := range All() {
		parsed := Parse(k.String())
		assert.Equal(t, k, parsed, "round trip failed for %s", k)
	}
}

func TestParseIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, KeyEnter, Parse("ENTER"))
	assert.Equal(t, KeyEnter, Parse("Enter"))
	assert.Equal(t, KeyA, Parse("A"))
	assert.Equal(t, KeyA, Parse("a"))
	assert.Equal(t, KeyPageUp, Parse("PageUp"))
}

func TestParseKeysymSpellings(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"Return", KeyEnter},
		{"BackSpace", KeyBackspace},
		{"space", KeySpace},
		{"Page_Up", KeyPageUp},
		{"Page_Down", KeyPageDown},
		{"Shift_L", KeyShiftLeft},
		{"Shift_R", KeyShiftRight},
		{"Control_L", KeyCtrlLeft},
		{"Alt_R", KeyAltRight},
		{"Super_L", KeySuperLeft},
		{"Caps_Lock", KeyCapsLock},
		{"Num_Lock", KeyNumLock},
		{"Scroll_Lock", KeyScrollLock},
		{"KP_Enter", KeyNumpadEnter},
		{"KP_7", KeyNumpad7},
		{"bracketleft", KeyLeftBracket},
		{"XF86AudioMute", KeyMute},
		{"XF86AudioPlay", KeyMediaPlayPause},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.name))
		})
	}
}

func TestParseUnknown(t *testing.T) {
	assert.Equal(t, KeyUnknown, Parse(""))
	assert.Equal(t, KeyUnknown, Parse("no-such-key"))
	assert.Equal(t, KeyUnknown, Parse("dead_acute"))
}

func TestKeyModifierBits(t *testing.T) {
	assert.Equal(t, Shift, KeyShiftLeft.Modifier())
	assert.Equal(t, Shift, KeyShiftRight.Modifier())
	assert.Equal(t, Ctrl, KeyCtrlLeft.Modifier())
	assert.Equal(t, Ctrl, KeyCtrlRight.Modifier())
	assert.Equal(t, Alt, KeyAltLeft.Modifier())
	assert.Equal(t, Alt, KeyAltRight.Modifier())
	assert.Equal(t, Super, KeySuperLeft.Modifier())
	assert.Equal(t, Super, KeySuperRight.Modifier())

	assert.Equal(t, None, KeyA.Modifier())
	assert.Equal(t, None, KeyCapsLock.Modifier())
	assert.Equal(t, None, KeyMenu.Modifier())

	assert.True(t, KeyShiftLeft.IsModifier())
	assert.False(t, KeyEnter.IsModifier())
}

func TestModifierMaskOps(t *testing.T) {
	m := None.With(Shift).With(Ctrl)
	assert.True(t, m.Has(Shift))
	assert.True(t, m.Has(Ctrl))
	assert.False(t, m.Has(Alt))

	m = m.Without(Shift)
	assert.False(t, m.Has(Shift))
	assert.True(t, m.Has(Ctrl))

	assert.Equal(t, None, None.Without(Super))
	assert.Equal(t, AllModifiers, Shift|Ctrl|Alt|Super)
}

func TestModifierCanonicalKey(t *testing.T) {
	assert.Equal(t, KeyShiftLeft, Shift.Key())
	assert.Equal(t, KeyCtrlLeft, Ctrl.Key())
	assert.Equal(t, KeyAltLeft, Alt.Key())
	assert.Equal(t, KeySuperLeft, Super.Key())
	assert.Equal(t, KeyUnknown, None.Key())
	assert.Equal(t, KeyUnknown, (Shift | Ctrl).Key())
}

func TestParseModifier(t *testing.T) {
	assert.Equal(t, Ctrl|Alt, ParseModifier("ctrl+alt"))
	assert.Equal(t, Shift, ParseModifier("SHIFT"))
	assert.Equal(t, Super, ParseModifier("win"))
	assert.Equal(t, Ctrl, ParseModifier("control"))
	assert.Equal(t, None, ParseModifier(""))
	assert.Equal(t, None, ParseModifier("bogus"))
}

func TestModifierString(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "shift+ctrl", (Shift | Ctrl).String())
	assert.Equal(t, "shift+ctrl+alt+super", AllModifiers.String())
}

func TestAllExcludesUnknown(t *testing.T) {
	all := All()
	assert.NotEmpty(t, all)
	for _, k := range all {
		assert.NotEqual(t, KeyUnknown, k)
	}
	assert.Equal(t, int(KeyUnknown), len(all))
}
