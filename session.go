package bluefruit

import (
	"errors"
	"log"
)

// Errors surfaced by Execute.
var (
	// ErrCommandTooLong is returned before any I/O when a command
	// exceeds MaxCommandLen.
	ErrCommandTooLong = errors.New("command too long")

	// ErrResponseTimeout is returned when the ready signal does not
	// assert within the response timeout.
	ErrResponseTimeout = errors.New("timed out waiting for response")
)

// Execute performs one logical command/response exchange: the command is
// split into frames with the continuation bit set on all but the last,
// then the ready signal is polled until the response is available, and
// frames are read and reassembled for as long as the signal stays
// asserted. The last frame's kind and id describe the logical response;
// an Error-kind response carries an ErrorCode in the id field.
//
// Exchanges are strictly sequential: the protocol has no request ids, so
// the caller must hold exclusive use of the device for the full exchange
// and must not start a new one while a receive phase is in progress.
// A transport error is fatal to the exchange; there is no per-frame retry.
func (d *Device) Execute(cmd []byte) (MessageKind, CommandID, []byte, error) {
	if len(cmd) > MaxCommandLen {
		return 0, 0, nil, ErrCommandTooLong
	}

	for _, f := range fragment(MsgCommand, CmdATWrapper, cmd) {
		if verbose {
			log.Printf("writing: % X", f[:])
		}
		if err := d.transport.WriteFrame(f); err != nil {
			return 0, 0, nil, err
		}
		d.stats.Packets.Sent++
		d.stats.Bytes.Sent += FrameSize
	}

	timeout := d.ResponseTimeout
	for {
		asserted, err := d.ready.Asserted()
		if err != nil {
			return 0, 0, nil, err
		}
		if asserted {
			break
		}
		if timeout <= 0 {
			return 0, 0, nil, ErrResponseTimeout
		}
		d.sleep(d.PollInterval)
		timeout -= d.PollInterval
	}

	var (
		kind MessageKind
		id   CommandID
		rsp  []byte
	)
	for {
		asserted, err := d.ready.Asserted()
		if err != nil {
			return 0, 0, nil, err
		}
		if !asserted {
			// The signal, not the continuation bit, ends the
			// response on the receive side.
			break
		}
		// Give the module time to stage the next frame.
		d.sleep(d.PollInterval)
		var f Frame
		if err := d.transport.ReadFrame(&f); err != nil {
			return 0, 0, nil, err
		}
		if verbose {
			log.Printf("reading: % X", f[:])
		}
		d.stats.Packets.Received++
		d.stats.Bytes.Received += FrameSize
		kind, id = f.Kind(), f.ID()
		rsp = append(rsp, f.Payload()...)
	}
	return kind, id, rsp, nil
}
