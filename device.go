// Package bluefruit drives the Adafruit Bluefruit LE SPI Friend, which runs
// AT-command firmware behind the SDEP fixed-frame protocol.
package bluefruit

import (
	"bytes"
	"fmt"
	"log"
	"time"
)

const (
	defaultResponseTimeout = 200 * time.Millisecond
	defaultPollInterval    = 10 * time.Millisecond
	defaultQueueLen        = 20

	verbose = false
)

func init() {
	if verbose {
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.LUTC)
	}
}

// Device represents an open Bluefruit module.
type Device struct {
	transport Transport
	ready     ReadySignal
	queue     *FrameQueue
	keycode   [keycodeFrames]Frame
	parser    PacketParser
	stats     Statistics
	err       error

	// ResponseTimeout bounds the wait for the ready signal after a
	// command has been sent. PollInterval is the poll granularity.
	ResponseTimeout time.Duration
	PollInterval    time.Duration

	sleep func(time.Duration)
}

// NewDevice creates a Device using the given transport and ready signal.
// Hardware users normally call Open instead.
func NewDevice(t Transport, ready ReadySignal) *Device {
	d := &Device{
		transport:       t,
		ready:           ready,
		queue:           NewFrameQueue(defaultQueueLen),
		ResponseTimeout: defaultResponseTimeout,
		PollInterval:    defaultPollInterval,
		sleep:           time.Sleep,
	}
	d.initKeycodeTemplate()
	return d
}

// Name returns the device's name.
func (d *Device) Name() string {
	return "Bluefruit LE"
}

// Close closes the underlying transport.
func (d *Device) Close() {
	if c, ok := d.transport.(interface{ Close() error }); ok {
		d.err = c.Close()
	}
}

// Reset pulses the module's reset line, if the transport controls one.
func (d *Device) Reset() {
	if d.Error() != nil {
		return
	}
	if rt, ok := d.transport.(Resetter); ok {
		d.err = rt.Reset()
	}
}

// Init sends the SDEP initialize command, which resets the module.
// The command completes in under a second.
func (d *Device) Init() {
	if d.Error() != nil {
		return
	}
	f := EncodeFrame(MsgCommand, CmdInitialize, nil, false)
	if verbose {
		log.Printf("initialize: % X", f[:])
	}
	d.err = d.transport.WriteFrame(f)
	if d.err != nil {
		return
	}
	d.stats.Packets.Sent++
	d.stats.Bytes.Sent += FrameSize
	d.sleep(1 * time.Second)
}

// Statistics returns the frame and byte counts for the device.
func (d *Device) Statistics() Statistics {
	return d.stats
}

// DroppedPackets returns the number of Connect app packets discarded
// for checksum failures.
func (d *Device) DroppedPackets() int {
	return d.parser.Dropped
}

// Error returns the error state of the device.
func (d *Device) Error() error {
	return d.err
}

// SetError sets the error state of the device.
func (d *Device) SetError(err error) {
	d.err = err
}

// Command executes the given AT command and returns the response payload.
// An Error response sets the device's error state to the carried ErrorCode.
func (d *Device) Command(cmd string) []byte {
	if d.Error() != nil {
		return nil
	}
	kind, id, rsp, err := d.Execute([]byte(cmd + "\n"))
	if err != nil {
		d.err = err
		return nil
	}
	switch kind {
	case MsgResponse:
		return rsp
	case MsgError:
		d.err = ErrorCode(id)
	default:
		d.err = fmt.Errorf("%s: unexpected response kind %#02X (id %#04X)", cmd, byte(kind), uint16(id))
	}
	return nil
}

var okSuffix = []byte("OK\r\n")

// CommandCheckOK executes the given AT command and checks that the
// response ends with "OK", returning any payload before it.
func (d *Device) CommandCheckOK(cmd string) []byte {
	rsp := d.Command(cmd)
	if d.Error() != nil {
		return nil
	}
	if !bytes.HasSuffix(rsp, okSuffix) {
		d.err = fmt.Errorf("%s: response %q is not OK", cmd, rsp)
		return nil
	}
	return rsp[:len(rsp)-len(okSuffix)]
}

// Connected reports whether the module is connected to a central.
func (d *Device) Connected() bool {
	return string(d.CommandCheckOK("AT+GAPGETCONN")) == "1"
}

// Info returns the module's version and hardware information.
func (d *Device) Info() string {
	return string(d.CommandCheckOK("ATI"))
}

// UartTX sends data over the BLE UART service.
func (d *Device) UartTX(data []byte) {
	if d.Error() != nil {
		return
	}
	cmd := append([]byte("AT+BLEUARTTX="), data...)
	cmd = append(cmd, '\r', '\n')
	kind, id, _, err := d.Execute(cmd)
	if err != nil {
		d.err = err
		return
	}
	if kind == MsgError {
		d.err = ErrorCode(id)
	}
}

// UartRX reads data buffered by the BLE UART service,
// with the trailing CRLF removed. It returns nil if no data is pending.
func (d *Device) UartRX() []byte {
	data := d.CommandCheckOK("AT+BLEUARTRX")
	if len(data) < 2 {
		return nil
	}
	return data[:len(data)-2]
}

// ReadPackets drains the BLE UART service and returns the Connect app
// events parsed from it. Partial packets are held until more data arrives.
func (d *Device) ReadPackets() []Event {
	data := d.UartRX()
	if d.Error() != nil || len(data) == 0 {
		return nil
	}
	return d.parser.Feed(data)
}
