package device

import (
	"fmt"

	"github.com/ThomasT75/uinput"

	"github.com/keywire/keywire/internal/logger"
)

// libDevice adapts a library-managed virtual keyboard to the Device
// interface. The library issues its own sync after every key event, so
// Sync is a no-op here; capability-wise it behaves the same as the raw
// backend.
type libDevice struct {
	kb     uinput.Keyboard
	closed bool
}

func newLibDevice(name string) (*libDevice, error) {
	kb, err := uinput.CreateKeyboard(uinputPath, []byte(name))
	if err != nil {
		return nil, fmt.Errorf("create virtual keyboard: %w", err)
	}
	logger.Debugf("device: library uinput keyboard created name=%q", name)
	return &libDevice{kb: kb}, nil
}

func (d *libDevice) Emit(typ, code uint16, value int32) error {
	if d.closed {
		return fmt.Errorf("device closed")
	}
	if typ != EvKey {
		return nil
	}
	if value == Press {
		return d.kb.KeyDown(int(code))
	}
	return d.kb.KeyUp(int(code))
}

func (d *libDevice) Sync() error {
	if d.closed {
		return fmt.Errorf("device closed")
	}
	return nil
}

func (d *libDevice) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.kb.Close()
}
