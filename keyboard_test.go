package bluefruit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendKeyboardCode(t *testing.T) {
	tr := &scriptTransport{}
	d := newTestDevice(tr)
	report := [8]byte{0x02, 0x00, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}
	require.NoError(t, d.SendKeyboardCode(report))

	// Drain the staged frames one at a time.
	for i := 0; i < keycodeFrames; i++ {
		require.NoError(t, d.PopKeyboardCode())
		require.Len(t, tr.written, i+1)
	}
	require.NoError(t, d.PopKeyboardCode(), "empty queue is a no-op")
	require.Len(t, tr.written, keycodeFrames)

	var cmd []byte
	for i, f := range tr.written {
		require.Equal(t, MsgCommand, f.Kind())
		require.Equal(t, CmdATWrapper, f.ID())
		require.Equal(t, i < keycodeFrames-1, f.More(), "frame %d continuation bit", i)
		cmd = append(cmd, f.Payload()...)
	}
	require.Equal(t, "AT+BLEKEYBOARDCODE=02-00-04-05-06-07-08-09\n", string(cmd))
}

func TestSendKeyboardCodeTemplateReuse(t *testing.T) {
	// Patching one report must not leak into the next.
	tr := &scriptTransport{}
	d := newTestDevice(tr)
	require.NoError(t, d.SendKeyboardCode([8]byte{0xFF, 0, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}))
	require.NoError(t, d.SendKeyboardCode([8]byte{}))
	for i := 0; i < 2*keycodeFrames; i++ {
		require.NoError(t, d.PopKeyboardCode())
	}
	var second []byte
	for _, f := range tr.written[keycodeFrames:] {
		second = append(second, f.Payload()...)
	}
	require.Equal(t, "AT+BLEKEYBOARDCODE=00-00-00-00-00-00-00-00\n", string(second))
}

func TestSendKeyboardCodeQueueFull(t *testing.T) {
	tr := &scriptTransport{}
	d := newTestDevice(tr)
	fits := d.queue.Cap() / keycodeFrames
	for i := 0; i < fits; i++ {
		require.NoError(t, d.SendKeyboardCode([8]byte{byte(i)}))
	}
	staged := d.queue.Len()
	require.ErrorIs(t, d.SendKeyboardCode([8]byte{0xFF}), ErrQueueFull)
	require.Equal(t, staged, d.queue.Len(), "a rejected report stages nothing")
}
