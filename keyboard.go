package bluefruit

import "encoding/hex"

// The keyboard-code command is pre-encoded into frames once and patched
// in place for each report, so a report costs no re-encoding on the
// low-latency path.
const (
	keycodeCommand = "AT+BLEKEYBOARDCODE=00-00-00-00-00-00-00-00\n"
	keycodeFrames  = 3
)

func (d *Device) initKeycodeTemplate() {
	copy(d.keycode[:], fragment(MsgCommand, CmdATWrapper, []byte(keycodeCommand)))
}

// SendKeyboardCode stages an AT+BLEKEYBOARDCODE command for the given
// 8-byte HID report in the frame queue. Call PopKeyboardCode to transmit
// the staged frames one at a time.
func (d *Device) SendKeyboardCode(report [8]byte) error {
	if d.queue.Cap()-d.queue.Len() < keycodeFrames {
		return ErrQueueFull
	}
	var h [16]byte
	hex.Encode(h[:], report[:])
	f1 := d.keycode[1]
	f1[7], f1[8] = h[0], h[1]
	// h[2:4] is the reserved report byte and stays "00" in the template.
	f1[13], f1[14] = h[4], h[5]
	f1[16], f1[17] = h[6], h[7]
	f1[19] = h[8]
	f2 := d.keycode[2]
	f2[4] = h[9]
	f2[6], f2[7] = h[10], h[11]
	f2[9], f2[10] = h[12], h[13]
	f2[12], f2[13] = h[14], h[15]
	for _, f := range [keycodeFrames]Frame{d.keycode[0], f1, f2} {
		if err := d.queue.Enqueue(f); err != nil {
			return err
		}
	}
	return nil
}

// PopKeyboardCode transmits one staged keyboard-code frame, if any.
func (d *Device) PopKeyboardCode() error {
	f, ok := d.queue.Dequeue()
	if !ok {
		return nil
	}
	if err := d.transport.WriteFrame(f); err != nil {
		return err
	}
	d.stats.Packets.Sent++
	d.stats.Bytes.Sent += FrameSize
	return nil
}
