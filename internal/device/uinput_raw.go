package device

import (
	"fmt"
	"time"
	"unsafe"

	evdev "github.com/gvalkov/golang-evdev"
	"golang.org/x/sys/unix"

	"github.com/keywire/keywire/internal/logger"
)

const uinputPath = "/dev/uinput"

// uinput ioctl requests (linux/uinput.h).
const (
	uiSetEvBit   = 0x40045564 // UI_SET_EVBIT
	uiSetKeyBit  = 0x40045565 // UI_SET_KEYBIT
	uiDevSetup   = 0x405c5503 // UI_DEV_SETUP
	uiDevCreate  = 0x00005501 // UI_DEV_CREATE
	uiDevDestroy = 0x00005502 // UI_DEV_DESTROY
)

// inputID mirrors struct input_id.
type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// uinputSetup mirrors struct uinput_setup (92 bytes).
type uinputSetup struct {
	ID           inputID
	Name         [80]byte
	FFEffectsMax uint32
}

// inputEvent mirrors struct input_event on 64-bit Linux (24 bytes).
type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// rawDevice writes input_event records straight to /dev/uinput.
type rawDevice struct {
	fd     int
	closed bool
}

func newRawDevice(name string) (*rawDevice, error) {
	fd, err := unix.Open(uinputPath, unix.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", uinputPath, err)
	}

	if err := unix.IoctlSetInt(fd, uiSetEvBit, int(EvKey)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("UI_SET_EVBIT: %w", err)
	}
	for code := 1; code < evdev.KEY_MAX; code++ {
		if err := unix.IoctlSetInt(fd, uiSetKeyBit, code); err != nil {
			unix.Close(fd)
			return nil, fmt.Errorf("UI_SET_KEYBIT %d: %w", code, err)
		}
	}

	var setup uinputSetup
	setup.ID = inputID{Bustype: 0x03 /* BUS_USB */, Vendor: 0x1d50, Product: 0x6123, Version: 1}
	copy(setup.Name[:len(setup.Name)-1], name)

	if err := ioctlPtr(fd, uiDevSetup, unsafe.Pointer(&setup)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("UI_DEV_SETUP: %w", err)
	}
	if err := ioctlPtr(fd, uiDevCreate, nil); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("UI_DEV_CREATE: %w", err)
	}

	// Give udev time to create and chown the event node before anyone
	// starts reading from it.
	time.Sleep(100 * time.Millisecond)

	logger.Debugf("device: raw uinput created fd=%d name=%q", fd, name)
	return &rawDevice{fd: fd}, nil
}

func (d *rawDevice) Emit(typ, code uint16, value int32) error {
	if d.closed {
		return fmt.Errorf("device closed")
	}
	ev := inputEvent{Type: typ, Code: code, Value: value}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&ev)), int(unsafe.Sizeof(ev)))
	if _, err := unix.Write(d.fd, buf); err != nil {
		return fmt.Errorf("write event (type=%d code=%d value=%d): %w", typ, code, value, err)
	}
	return nil
}

func (d *rawDevice) Sync() error {
	return d.Emit(EvSyn, SynReport, 0)
}

func (d *rawDevice) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if err := ioctlPtr(d.fd, uiDevDestroy, nil); err != nil {
		logger.Warnf("device: UI_DEV_DESTROY failed: %v", err)
	}
	err := unix.Close(d.fd)
	d.fd = -1
	logger.Debug("device: raw uinput destroyed")
	return err
}

func ioctlPtr(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
