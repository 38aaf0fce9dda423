package listener

import (
	"context"
	"os"
	"testing"
	"time"

	evdev "github.com/gvalkov/golang-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keywire/keywire/internal/keymap"
	"github.com/keywire/keywire/internal/xkb"
	"github.com/keywire/keywire/keys"
)

type captured struct {
	cp      rune
	key     keys.Key
	mods    keys.Modifier
	pressed bool
}

func recordInto(events *[]captured) Callback {
	return func(cp rune, key keys.Key, mods keys.Modifier, pressed bool) {
		*events = append(*events, captured{cp, key, mods, pressed})
	}
}

func testListener() *Listener {
	entries := []xkb.Entry{
		{Code: evdev.KEY_A + 8, Sym: xkb.Syma},
	}
	return &Listener{table: keymap.BuildRead(entries)}
}

func TestDeliverResolvesKeyAndRune(t *testing.T) {
	l := testListener()
	var got []captured

	l.deliver(evdev.KEY_A, true, recordInto(&got))
	l.deliver(evdev.KEY_A, false, recordInto(&got))

	require.Len(t, got, 2)
	assert.Equal(t, captured{'a', keys.KeyA, keys.None, true}, got[0])
	assert.Equal(t, captured{'a', keys.KeyA, keys.None, false}, got[1])
}

func TestDeliverTracksModifiers(t *testing.T) {
	l := testListener()
	var got []captured
	cb := recordInto(&got)

	l.deliver(evdev.KEY_LEFTSHIFT, true, cb)
	l.deliver(evdev.KEY_A, true, cb)
	l.deliver(evdev.KEY_A, false, cb)
	l.deliver(evdev.KEY_LEFTSHIFT, false, cb)

	require.Len(t, got, 4)
	// The shift press itself already carries the bit.
	assert.Equal(t, keys.Shift, got[0].mods)
	assert.Equal(t, keys.Shift, got[1].mods)
	assert.Equal(t, keys.Shift, got[2].mods)
	assert.Equal(t, keys.None, got[3].mods)
}

func TestDeliverUnknownCode(t *testing.T) {
	l := testListener()
	var got []captured

	l.deliver(0x7ffffff, true, recordInto(&got))

	require.Len(t, got, 1)
	assert.Equal(t, keys.KeyUnknown, got[0].key)
	assert.Equal(t, rune(0), got[0].cp)
}

func TestStartRejectsNilCallback(t *testing.T) {
	l := New()
	err := l.Start(context.Background(), nil)
	assert.ErrorContains(t, err, "nil callback")
	assert.False(t, l.IsListening())
}

func TestStopBeforeStartIsNoop(t *testing.T) {
	l := New()
	l.Stop()
	assert.False(t, l.IsListening())
}

// Stop must close the device to unblock the read loop and must not return
// before the loop has exited, so no callback can fire afterwards.
func TestStopClosesDeviceAndJoinsReadLoop(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer w.Close()

	dev := &evdev.InputDevice{Name: "fake keyboard", File: r}

	l := &Listener{table: keymap.BuildRead(nil)}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.dev = dev
	l.listening = true
	l.wg.Add(1)
	go l.readLoop(ctx, dev, func(rune, keys.Key, keys.Modifier, bool) {})

	done := make(chan struct{})
	go func() {
		l.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not terminate the read loop")
	}
	assert.False(t, l.IsListening())

	// The device file was closed on the way out.
	_, err = dev.File.Read(make([]byte, 1))
	assert.Error(t, err)

	// A second Stop is a no-op.
	l.Stop()
}

func TestIsKeyboard(t *testing.T) {
	tests := []struct {
		name string
		dev  *evdev.InputDevice
		want bool
	}{
		{
			"full_keyboard",
			&evdev.InputDevice{
				Name: "AT Translated Set 2 keyboard",
				CapabilitiesFlat: map[int][]int{
					evdev.EV_KEY: {evdev.KEY_Q, evdev.KEY_W, evdev.KEY_E},
				},
			},
			true,
		},
		{
			"power_button",
			&evdev.InputDevice{
				Name: "Power Button",
				CapabilitiesFlat: map[int][]int{
					evdev.EV_KEY: {evdev.KEY_Q},
				},
			},
			false,
		},
		{
			"video_bus",
			&evdev.InputDevice{
				Name:             "Video Bus",
				CapabilitiesFlat: map[int][]int{evdev.EV_KEY: {evdev.KEY_Q}},
			},
			false,
		},
		{
			"mouse_without_letter_keys",
			&evdev.InputDevice{
				Name: "Logitech USB Mouse",
				CapabilitiesFlat: map[int][]int{
					evdev.EV_KEY: {evdev.BTN_LEFT, evdev.BTN_RIGHT},
				},
			},
			false,
		},
		{
			"no_key_capability",
			&evdev.InputDevice{
				Name:             "Some Sensor",
				CapabilitiesFlat: map[int][]int{},
			},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isKeyboard(tt.dev))
		})
	}
}
