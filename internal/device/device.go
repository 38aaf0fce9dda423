// Package device owns the virtual-input transport. A Device is a byte
// oriented event stream to the kernel input stack: emit one event, emit a
// synchronization marker, destroy. Two backends exist behind the same
// interface, a raw /dev/uinput implementation and one on top of the uinput
// library, so everything above this package is backend-agnostic.
package device

import (
	"fmt"

	"github.com/keywire/keywire/internal/logger"
)

// Linux input event types and codes used on the wire.
const (
	EvSyn uint16 = 0x00
	EvKey uint16 = 0x01

	SynReport uint16 = 0x00

	// Event values for EvKey.
	Press   int32 = 1
	Release int32 = 0
)

// DefaultName is the device name registered with the kernel.
const DefaultName = "keywire virtual keyboard"

// Device is an exclusive handle to one virtual input device. A Device is
// owned by exactly one sender for its whole lifetime and is not safe for
// concurrent use.
type Device interface {
	// Emit writes one input event record.
	Emit(typ, code uint16, value int32) error

	// Sync forces delivery ordering of emitted events. Backends that
	// synchronize implicitly after every event report success without
	// writing anything.
	Sync() error

	// Close destroys the virtual device. Safe to call twice.
	Close() error
}

// Backend names accepted by Create.
const (
	BackendAuto      = "auto"
	BackendUinput    = "uinput"
	BackendUinputLib = "uinput-lib"
)

// Create opens a virtual keyboard device using the requested backend.
// BackendAuto prefers the raw uinput backend and falls back to the library
// one. Creation failure is permanent for the caller: there is no retry.
func Create(backend, name string) (Device, error) {
	if name == "" {
		name = DefaultName
	}

	switch backend {
	case BackendUinput:
		return newRawDevice(name)
	case BackendUinputLib:
		return newLibDevice(name)
	case BackendAuto, "":
		if dev, err := newRawDevice(name); err == nil {
			logger.Debug("device: using raw uinput backend")
			return dev, nil
		}
		dev, err := newLibDevice(name)
		if err != nil {
			return nil, fmt.Errorf("no usable uinput backend: %w", err)
		}
		logger.Debug("device: using uinput library backend")
		return dev, nil
	default:
		return nil, fmt.Errorf("unknown device backend %q", backend)
	}
}
