//go:build uart
// +build uart

package bluefruit

import (
	"time"

	"github.com/ecc1/serial"
)

const (
	serialDevice = "/dev/serial0"
	serialSpeed  = 9600

	readPollInterval = 1 * time.Millisecond
	readPollLimit    = 100
)

// UARTTransport moves SDEP frames over a serial port. With no IRQ line
// available, pending receive data stands in for the ready signal.
type UARTTransport struct {
	port    *serial.Port
	pending []byte
}

// Open opens the Bluefruit module on the serial port.
// (The module cannot be hardware-reset over the serial port alone.)
func Open() *Device {
	t, err := OpenUART()
	if err != nil {
		return &Device{err: err}
	}
	return NewDevice(t, t)
}

// OpenUART opens the serial port.
func OpenUART() (*UARTTransport, error) {
	port, err := serial.Open(serialDevice, serialSpeed)
	if err != nil {
		return nil, err
	}
	return &UARTTransport{port: port}, nil
}

// Device returns the pathname of the transport's serial device.
func (t *UARTTransport) Device() string {
	return serialDevice
}

// WriteFrame writes one frame to the serial port.
func (t *UARTTransport) WriteFrame(f Frame) error {
	return t.port.Write(f[:])
}

// ReadFrame reads one frame, polling until a full frame has arrived.
func (t *UARTTransport) ReadFrame(f *Frame) error {
	buf := make([]byte, FrameSize)
	for tries := 0; len(t.pending) < FrameSize; tries++ {
		if tries >= readPollLimit {
			return ErrResponseTimeout
		}
		n, err := t.port.ReadAvailable(buf)
		if err != nil {
			return err
		}
		if n == 0 {
			time.Sleep(readPollInterval)
			continue
		}
		t.pending = append(t.pending, buf[:n]...)
	}
	copy(f[:], t.pending)
	t.pending = t.pending[FrameSize:]
	return nil
}

// Close closes the serial port.
func (t *UARTTransport) Close() error {
	return t.port.Close()
}

// Asserted reports whether response data is pending on the serial port.
func (t *UARTTransport) Asserted() (bool, error) {
	if len(t.pending) > 0 {
		return true, nil
	}
	buf := make([]byte, FrameSize)
	n, err := t.port.ReadAvailable(buf)
	if err != nil {
		return false, err
	}
	t.pending = append(t.pending, buf[:n]...)
	return len(t.pending) > 0, nil
}
