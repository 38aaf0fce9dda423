// Package sender injects synthesized keyboard input through a virtual input
// device. A Sender owns its device handle and keycode table exclusively and
// tracks the modifier state produced by its own key events.
//
// A Sender is not internally synchronized: concurrent calls on one instance
// require external locking by the caller.
package sender

import (
	"errors"
	"time"

	"github.com/keywire/keywire/internal/config"
	"github.com/keywire/keywire/internal/device"
	"github.com/keywire/keywire/internal/keymap"
	"github.com/keywire/keywire/internal/layout"
	"github.com/keywire/keywire/internal/logger"
	"github.com/keywire/keywire/internal/xkb"
	"github.com/keywire/keywire/keys"
)

var (
	// ErrDeviceNotReady means the virtual device could not be created.
	// Permanent for the instance's lifetime.
	ErrDeviceNotReady = errors.New("sender: virtual device not ready")

	// ErrKeyNotMapped means the requested logical key has no entry in the
	// keycode table.
	ErrKeyNotMapped = errors.New("sender: no keycode mapping for key")

	// ErrTextInjectionUnsupported means the transport has no Unicode
	// injection primitive. uinput injects physical keys only.
	ErrTextInjectionUnsupported = errors.New("sender: text injection not supported by this backend")
)

// Capabilities describes what the live device supports. Computed from
// actual device readiness, not assumed statically.
type Capabilities struct {
	CanInjectKeys     bool
	CanInjectText     bool
	CanSimulateHID    bool
	SupportsKeyRepeat bool
	NeedsUinputAccess bool
}

// Sender sequences key-down/key-up/modifier events into the kernel input
// stack.
type Sender struct {
	dev     device.Device
	backend string
	table   *keymap.Table
	mods    keys.Modifier
	delay   time.Duration
}

// New builds a Sender from the active configuration: discovers the layout,
// compiles and resolves the keycode table, and creates the virtual device.
// Device creation failure is not an error here: the instance is returned
// permanently not-ready and every injection call fails.
func New() *Sender {
	cfg := config.Get()

	names := layout.Resolve(cfg.Layout.RuleNames())
	table := keymap.Build(xkb.Compile(names))

	s := &Sender{
		backend: cfg.Device.Backend,
		table:   table,
		delay:   time.Duration(cfg.Device.KeyDelayMs) * time.Millisecond,
	}

	dev, err := device.Create(cfg.Device.Backend, cfg.Device.Name)
	if err != nil {
		logger.Errorf("sender: device creation failed: %v", err)
		return s
	}
	s.dev = dev
	logger.Infof("sender: ready, %d keys mapped", table.Len())
	return s
}

// Type returns the configured backend name.
func (s *Sender) Type() string {
	return s.backend
}

// IsReady reports whether the virtual device was created successfully.
func (s *Sender) IsReady() bool {
	return s.dev != nil
}

// RequestPermissions re-probes readiness. uinput access cannot be requested
// at runtime (it needs udev rules or root), so this only reports the
// current state.
func (s *Sender) RequestPermissions() bool {
	return s.IsReady()
}

// Capabilities reports what the live device supports.
func (s *Sender) Capabilities() Capabilities {
	ready := s.IsReady()
	return Capabilities{
		CanInjectKeys:     ready,
		CanInjectText:     false,
		CanSimulateHID:    ready,
		SupportsKeyRepeat: ready,
		NeedsUinputAccess: true,
	}
}

// ActiveModifiers returns the modifiers currently held by this instance's
// own key events.
func (s *Sender) ActiveModifiers() keys.Modifier {
	return s.mods
}

// SetKeyDelay sets the pause between down and up in Tap and between the
// stages of Combo. Zero disables the pause.
func (s *Sender) SetKeyDelay(d time.Duration) {
	s.delay = d
}

// KeyDown presses a key and keeps it pressed until KeyUp. If the key is a
// modifier-side key, the corresponding modifier bit is set. Fails with no
// event emitted when the device is not ready or the key is unmapped.
func (s *Sender) KeyDown(k keys.Key) error {
	if err := s.emitKey(k, device.Press); err != nil {
		return err
	}
	if m := k.Modifier(); m != keys.None {
		s.mods = s.mods.With(m)
	}
	return nil
}

// KeyUp releases a key. The modifier bit clears even when the release event
// fails: the caller's intent was release.
func (s *Sender) KeyUp(k keys.Key) error {
	if m := k.Modifier(); m != keys.None {
		s.mods = s.mods.Without(m)
	}
	return s.emitKey(k, device.Release)
}

// Tap presses and releases a key with the configured delay in between.
// Fails fast when the press fails; no release is attempted then.
func (s *Sender) Tap(k keys.Key) error {
	if err := s.KeyDown(k); err != nil {
		return err
	}
	s.pause()
	return s.KeyUp(k)
}

// HoldModifier presses the canonical (left-side) key of every modifier in
// the mask. Partial failure leaves the successful presses in effect; there
// is no rollback.
func (s *Sender) HoldModifier(mod keys.Modifier) error {
	var errs []error
	for _, m := range []keys.Modifier{keys.Shift, keys.Ctrl, keys.Alt, keys.Super} {
		if mod.Has(m) {
			if err := s.KeyDown(m.Key()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// ReleaseModifier releases the canonical key of every modifier in the mask,
// with the same partial-failure policy as HoldModifier.
func (s *Sender) ReleaseModifier(mod keys.Modifier) error {
	var errs []error
	for _, m := range []keys.Modifier{keys.Shift, keys.Ctrl, keys.Alt, keys.Super} {
		if mod.Has(m) {
			if err := s.KeyUp(m.Key()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// ReleaseAllModifiers releases every modifier.
func (s *Sender) ReleaseAllModifiers() error {
	return s.ReleaseModifier(keys.AllModifiers)
}

// Combo holds the modifiers, taps the key, and releases the modifiers. The
// release always runs even when the tap failed; the result reflects only
// the hold and the tap.
func (s *Sender) Combo(mod keys.Modifier, k keys.Key) error {
	if err := s.HoldModifier(mod); err != nil {
		return err
	}
	s.pause()
	tapErr := s.Tap(k)
	s.pause()
	if err := s.ReleaseModifier(mod); err != nil {
		logger.Warnf("sender: combo cleanup release failed: %v", err)
	}
	return tapErr
}

// TypeText reports text injection as unsupported: uinput has no Unicode
// primitive and approximating one through the layout is out of scope.
// No event is emitted.
func (s *Sender) TypeText(text string) error {
	_ = text
	return ErrTextInjectionUnsupported
}

// TypeCharacter reports single-codepoint injection as unsupported, like
// TypeText.
func (s *Sender) TypeCharacter(cp rune) error {
	_ = cp
	return ErrTextInjectionUnsupported
}

// Flush forces delivery ordering of previously emitted events. On the raw
// uinput backend this writes a synchronization marker with no key event; the
// library backend synchronizes after every key event already, so there Flush
// succeeds without writing anything.
func (s *Sender) Flush() error {
	if s.dev == nil {
		return ErrDeviceNotReady
	}
	return s.dev.Sync()
}

// Close destroys the virtual device. The instance is permanently not-ready
// afterward; Close is idempotent.
func (s *Sender) Close() error {
	if s.dev == nil {
		return nil
	}
	dev := s.dev
	s.dev = nil
	s.mods = keys.None
	return dev.Close()
}

func (s *Sender) emitKey(k keys.Key, value int32) error {
	if s.dev == nil {
		return ErrDeviceNotReady
	}
	code, ok := s.table.Code(k)
	if !ok {
		logger.Debugf("sender: no mapping for key=%s", k)
		return ErrKeyNotMapped
	}
	if err := s.dev.Emit(device.EvKey, uint16(code), value); err != nil {
		return err
	}
	return s.dev.Sync()
}

func (s *Sender) pause() {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}
