package bluefruit

import "fmt"

// MessageKind is carried in the first byte of an SDEP frame.
type MessageKind byte

// SDEP message kinds.
const (
	MsgCommand  MessageKind = 0x10
	MsgResponse MessageKind = 0x20
	MsgAlert    MessageKind = 0x40
	MsgError    MessageKind = 0x80
)

// CommandID identifies an SDEP command. In an Error response the id field
// carries an ErrorCode instead.
type CommandID uint16

// SDEP command ids understood by the Bluefruit firmware.
const (
	CmdInitialize CommandID = 0xBEEF // resets the module
	CmdATWrapper  CommandID = 0x0A00 // AT command wrapper
	CmdBLEUartTX  CommandID = 0x0A01 // BLE UART transmit data
	CmdBLEUartRX  CommandID = 0x0A02 // BLE UART read data
)

// ErrorCode is a device error carried in the id field of an Error response.
type ErrorCode uint16

// Error codes reported by the Bluefruit firmware.
const (
	ErrInvalidMsgType ErrorCode = 0x8021 // SDEP: unexpected message type
	ErrInvalidCmdID   ErrorCode = 0x8022 // SDEP: unknown command id
	ErrInvalidPayload ErrorCode = 0x8023 // SDEP: payload problem
	ErrInvalidLen     ErrorCode = 0x8024 // SDEP: indicated length too large
	ErrInvalidInput   ErrorCode = 0x8060 // AT: invalid data
	ErrUnknownCmd     ErrorCode = 0x8061 // AT: unknown command name
	ErrInvalidParam   ErrorCode = 0x8062 // AT: invalid parameter value
	ErrUnsupported    ErrorCode = 0x8063 // AT: unsupported command
)

func (e ErrorCode) Error() string {
	return fmt.Sprintf("device error %#04X", uint16(e))
}

// SDEP frame layout: 1-byte message kind, 2-byte id (little-endian),
// 1-byte length/continuation field, 16-byte zero-padded payload.
const (
	FrameSize  = 20
	MaxPayload = 16

	// MaxCommandLen bounds an AT command; the response-side length
	// field is a single byte, so the protocol assumes short commands.
	MaxCommandLen = 127

	moreBit = 0x80
)

// Frame is a single fixed-size SDEP transport frame.
type Frame [FrameSize]byte

// EncodeFrame builds a frame with the given payload, zero-padded to
// MaxPayload bytes. The continuation bit marks "more frames follow".
// A payload longer than MaxPayload is a caller bug and panics.
func EncodeFrame(kind MessageKind, id CommandID, payload []byte, more bool) Frame {
	if len(payload) > MaxPayload {
		panic("payload too long")
	}
	var f Frame
	f[0] = byte(kind)
	f[1] = byte(id)
	f[2] = byte(id >> 8)
	f[3] = byte(len(payload))
	if more {
		f[3] |= moreBit
	}
	copy(f[4:], payload)
	return f
}

// Kind returns the frame's message kind.
func (f Frame) Kind() MessageKind { return MessageKind(f[0]) }

// ID returns the frame's command/response identifier.
func (f Frame) ID() CommandID { return CommandID(f[1]) | CommandID(f[2])<<8 }

// Len returns the declared payload length, clamped to the usable payload.
func (f Frame) Len() int {
	n := int(f[3] &^ moreBit)
	if n > MaxPayload {
		n = MaxPayload
	}
	return n
}

// More reports whether the continuation bit is set. It is meaningful on
// outgoing frames only: on the receive side the module signals "more
// frames follow" with the IRQ line instead.
func (f Frame) More() bool { return f[3]&moreBit != 0 }

// Payload returns the declared payload bytes. Bytes beyond the declared
// length are padding and are excluded.
func (f Frame) Payload() []byte { return f[4 : 4+f.Len()] }

// fragment splits data into frames of at most MaxPayload bytes each,
// with the continuation bit set on every frame except the last.
// Empty data yields no frames.
func fragment(kind MessageKind, id CommandID, data []byte) []Frame {
	frames := make([]Frame, 0, (len(data)+MaxPayload-1)/MaxPayload)
	for len(data) > 0 {
		n := len(data)
		if n > MaxPayload {
			n = MaxPayload
		}
		frames = append(frames, EncodeFrame(kind, id, data[:n], n < len(data)))
		data = data[n:]
	}
	return frames
}
