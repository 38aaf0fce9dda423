package keymap

import (
	"testing"

	evdev "github.com/gvalkov/golang-evdev"
	"github.com/stretchr/testify/assert"

	"github.com/keywire/keywire/internal/xkb"
	"github.com/keywire/keywire/keys"
)

func TestBuildReadDiscovery(t *testing.T) {
	entries := []xkb.Entry{
		{Code: evdev.KEY_A + 8, Sym: xkb.Syma},
		{Code: evdev.KEY_ENTER + 8, Sym: xkb.SymReturn, Name: "Return"},
		{Code: evdev.KEY_GRAVE + 8, Sym: xkb.Symbol(0xfe50), Name: "dead_grave"},
	}
	table := BuildRead(entries)

	assert.Equal(t, keys.KeyA, table.Key(evdev.KEY_A))
	assert.Equal(t, 'a', table.Rune(evdev.KEY_A))

	assert.Equal(t, keys.KeyEnter, table.Key(evdev.KEY_ENTER))
	assert.Equal(t, '\n', table.Rune(evdev.KEY_ENTER))

	// Unresolvable symbol falls back to the static mapping but exposes no
	// codepoint.
	assert.Equal(t, keys.KeyGrave, table.Key(evdev.KEY_GRAVE))
	assert.Equal(t, rune(0), table.Rune(evdev.KEY_GRAVE))
}

func TestBuildReadFirstEntryWins(t *testing.T) {
	entries := []xkb.Entry{
		{Code: evdev.KEY_Q + 8, Sym: xkb.Syma},
		{Code: evdev.KEY_Q + 8, Sym: xkb.Symbol('b')},
	}
	table := BuildRead(entries)

	assert.Equal(t, keys.KeyA, table.Key(evdev.KEY_Q))
	assert.Equal(t, 'a', table.Rune(evdev.KEY_Q))
}

func TestBuildReadFallbackOnly(t *testing.T) {
	table := BuildRead(nil)

	assert.Equal(t, keys.KeyA, table.Key(evdev.KEY_A))
	assert.Equal(t, keys.KeySpace, table.Key(evdev.KEY_SPACE))
	assert.Equal(t, keys.KeyUnknown, table.Key(0x7fffffff))

	// Codepoints require a discovered layout.
	assert.Equal(t, rune(0), table.Rune(evdev.KEY_A))
}
