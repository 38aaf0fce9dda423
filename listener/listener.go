// Package listener observes global keyboard activity by reading kernel
// evdev devices and resolving observed codes back into logical keys and
// Unicode codepoints. Observation shares the symbol-resolution path with
// the sender but runs on its own tables: no ordering is guaranteed between
// injected events and what a concurrently running listener observes.
package listener

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	evdev "github.com/gvalkov/golang-evdev"

	"github.com/keywire/keywire/internal/config"
	"github.com/keywire/keywire/internal/keymap"
	"github.com/keywire/keywire/internal/layout"
	"github.com/keywire/keywire/internal/logger"
	"github.com/keywire/keywire/internal/xkb"
	"github.com/keywire/keywire/keys"
)

// Callback receives one observed key event: the produced codepoint (0 when
// none), the logical key (KeyUnknown when unresolved), the modifier state
// at the time of the event, and whether it was a press. Invoked from the
// listener's internal goroutine.
type Callback func(cp rune, key keys.Key, mods keys.Modifier, pressed bool)

// Listener monitors a keyboard evdev device.
type Listener struct {
	mu        sync.Mutex
	dev       *evdev.InputDevice
	table     *keymap.ReadTable
	mods      keys.Modifier
	listening bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// New builds a Listener with the observation table resolved for the active
// layout, applying the same config overrides the sender uses.
func New() *Listener {
	names := layout.Resolve(config.Get().Layout.RuleNames())
	return &Listener{
		table: keymap.BuildRead(xkb.Compile(names)),
	}
}

// Start opens the keyboard device and begins delivering events to cb from
// an internal goroutine. Fails when no keyboard device is accessible
// (missing permissions on /dev/input) or when already listening.
func (l *Listener) Start(ctx context.Context, cb Callback) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.listening {
		return fmt.Errorf("listener already started")
	}
	if cb == nil {
		return fmt.Errorf("nil callback")
	}

	dev, err := openKeyboardDevice(config.Get().Listener.DevicePath)
	if err != nil {
		return err
	}
	l.dev = dev
	l.mods = keys.None
	l.listening = true

	ctx, l.cancel = context.WithCancel(ctx)
	l.wg.Add(1)
	go l.readLoop(ctx, dev, cb)

	logger.Infof("listener: monitoring %s (%s)", dev.Name, dev.Fn)
	return nil
}

// Stop ends monitoring, closes the device and waits for the internal
// goroutine to exit, so no callback fires after Stop returns. Safe to call
// from any thread; a no-op when the listener never started.
func (l *Listener) Stop() {
	l.mu.Lock()
	if !l.listening {
		l.mu.Unlock()
		return
	}
	l.cancel()
	dev := l.dev
	l.listening = false
	l.dev = nil
	l.mu.Unlock()

	// Read has no timeout; closing the file is what unblocks the loop.
	if dev.File != nil {
		dev.File.Close()
	}
	l.wg.Wait()
	logger.Debug("listener: stopped")
}

// IsListening reports whether the listener is currently active.
func (l *Listener) IsListening() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.listening
}

func (l *Listener) readLoop(ctx context.Context, dev *evdev.InputDevice, cb Callback) {
	defer l.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("listener: capture panic: %v", r)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		events, err := dev.Read()
		if err != nil {
			select {
			case <-ctx.Done():
				// Stop closed the device to unblock this read.
				return
			default:
			}
			if strings.Contains(err.Error(), "resource temporarily unavailable") {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			logger.Errorf("listener: read failed: %v", err)
			return
		}

		for _, ev := range events {
			if ev.Type != evdev.EV_KEY || ev.Value > 1 {
				continue // ignore autorepeat
			}
			l.deliver(int(ev.Code), ev.Value == 1, cb)
		}
	}
}

func (l *Listener) deliver(code int, pressed bool, cb Callback) {
	key := l.table.Key(code)

	l.mu.Lock()
	if m := key.Modifier(); m != keys.None {
		if pressed {
			l.mods = l.mods.With(m)
		} else {
			l.mods = l.mods.Without(m)
		}
	}
	mods := l.mods
	l.mu.Unlock()

	cb(l.table.Rune(code), key, mods, pressed)
}

// openKeyboardDevice opens the configured device path, or scans
// /dev/input/event* for the first device exposing alphabetic keys.
func openKeyboardDevice(path string) (*evdev.InputDevice, error) {
	if path != "" {
		dev, err := evdev.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open configured keyboard %s: %w", path, err)
		}
		return dev, nil
	}

	devices, err := evdev.ListInputDevices("/dev/input/event*")
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}
	for _, dev := range devices {
		if isKeyboard(dev) {
			return dev, nil
		}
	}
	return nil, fmt.Errorf("no keyboard device found")
}

func isKeyboard(dev *evdev.InputDevice) bool {
	name := strings.ToLower(dev.Name)
	if strings.Contains(name, "power") || strings.Contains(name, "video") ||
		strings.Contains(name, "button") {
		return false
	}
	codes, ok := dev.CapabilitiesFlat[evdev.EV_KEY]
	if !ok {
		return false
	}
	for _, code := range codes {
		if code >= evdev.KEY_Q && code <= evdev.KEY_P {
			return true
		}
	}
	return false
}
