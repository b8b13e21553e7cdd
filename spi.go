//go:build !uart
// +build !uart

package bluefruit

import (
	"time"

	"github.com/ecc1/gpio"
	"github.com/ecc1/spi"
)

// SPITransport moves SDEP frames over the SPI bus and exposes the
// module's IRQ line as the ready signal.
type SPITransport struct {
	device   *spi.Device
	irqPin   gpio.InputPin
	resetPin gpio.OutputPin
}

// Open opens the Bluefruit module on the SPI bus configured for this
// platform and resets it.
func Open() *Device {
	t, err := OpenSPI()
	if err != nil {
		return &Device{err: err}
	}
	d := NewDevice(t, t)
	d.Reset()
	return d
}

// OpenSPI opens the SPI bus and claims the IRQ and reset pins.
func OpenSPI() (*SPITransport, error) {
	const spiSpeed = 4000000 // Hz
	t := &SPITransport{}
	var err error
	t.device, err = spi.Open(spiDevice, spiSpeed, 0)
	if err != nil {
		return nil, err
	}
	t.irqPin, err = gpio.Input(irqPin, false)
	if err != nil {
		_ = t.device.Close()
		return nil, err
	}
	// The reset line is active low.
	t.resetPin, err = gpio.Output(resetPin, true, false)
	if err != nil {
		_ = t.device.Close()
		return nil, err
	}
	return t, nil
}

// Device returns the pathname of the transport's SPI device.
func (t *SPITransport) Device() string {
	return spiDevice
}

// WriteFrame writes one frame to the bus.
func (t *SPITransport) WriteFrame(f Frame) error {
	var rcv Frame
	return t.device.Transfer(f[:], rcv[:])
}

// ReadFrame reads one frame from the bus by clocking out zeros.
func (t *SPITransport) ReadFrame(f *Frame) error {
	var snd Frame
	return t.device.Transfer(snd[:], f[:])
}

// Asserted reports whether the module's IRQ line is high.
func (t *SPITransport) Asserted() (bool, error) {
	return t.irqPin.Read()
}

// Reset pulses the module's reset line and waits for it to reboot.
func (t *SPITransport) Reset() error {
	if err := t.resetPin.Write(true); err != nil {
		return err
	}
	time.Sleep(10 * time.Millisecond)
	if err := t.resetPin.Write(false); err != nil {
		return err
	}
	time.Sleep(500 * time.Millisecond)
	return nil
}

// Close closes the SPI device.
func (t *SPITransport) Close() error {
	return t.device.Close()
}
