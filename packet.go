package bluefruit

import "bytes"

// Bluefruit Connect app packet layout: sync byte, type byte, type-dependent
// fixed-length body, trailing checksum byte chosen so that the sum of all
// bytes mod 256 is 255.
const (
	packetSync = '!'

	buttonPacketLen = 5
	colorPacketLen  = 6
)

// Event is a single event decoded from the Connect app packet stream.
type Event interface {
	event()
}

// Button reports a control-pad button press or release.
type Button struct {
	Index   int
	Pressed bool
}

// Color carries a color-picker value.
type Color struct {
	Red, Green, Blue byte
}

// Unknown holds a packet with no structured decoding. It is reserved for
// packet types beyond the button and color packets decoded today.
type Unknown struct {
	Raw []byte
}

func (Button) event()  {}
func (Color) event()   {}
func (Unknown) event() {}

// PacketParser extracts Connect app events from the BLE UART byte stream.
// The stream delivers bytes in arbitrary chunks, so partial packets persist
// in the intake buffer between calls to Feed. The zero value is ready to use.
//
// The stream is best-effort and self-healing: packets that fail the
// checksum are dropped silently and unrecognized type bytes are skipped
// one byte at a time until the parser resynchronizes.
type PacketParser struct {
	buf []byte

	// Dropped counts packets discarded for checksum failures.
	Dropped int
}

// Feed appends data to the intake buffer and returns the events that can
// now be extracted from it, in stream order.
func (p *PacketParser) Feed(data []byte) []Event {
	p.buf = append(p.buf, data...)
	var events []Event
	for {
		i := bytes.IndexByte(p.buf, packetSync)
		if i < 0 {
			p.buf = p.buf[:0]
			return events
		}
		p.buf = p.buf[i:]
		if len(p.buf) < 2 {
			// Need the type byte.
			return events
		}
		var n int
		switch p.buf[1] {
		case 'B':
			n = buttonPacketLen
		case 'C':
			n = colorPacketLen
		default:
			// Unknown type: skip the sync byte and resynchronize.
			p.buf = p.buf[1:]
			continue
		}
		if len(p.buf) < n {
			// Wait for the rest of the packet.
			return events
		}
		pkt := p.buf[:n]
		p.buf = p.buf[n:]
		if !checksumOK(pkt) {
			p.Dropped++
			continue
		}
		events = append(events, decodePacket(pkt))
	}
}

func checksumOK(pkt []byte) bool {
	var sum byte
	for _, b := range pkt {
		sum += b
	}
	return sum == 0xFF
}

func decodePacket(pkt []byte) Event {
	switch pkt[1] {
	case 'B':
		return Button{Index: int(pkt[2] - '0'), Pressed: pkt[3] == '1'}
	case 'C':
		return Color{Red: pkt[2], Green: pkt[3], Blue: pkt[4]}
	}
	raw := make([]byte, len(pkt))
	copy(raw, pkt)
	return Unknown{Raw: raw}
}
