package bluefruit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandCheckOK(t *testing.T) {
	tr := &scriptTransport{replies: respond("1OK\r\n")}
	d := newTestDevice(tr)
	require.Equal(t, "1", string(d.CommandCheckOK("AT+GAPGETCONN")))
	require.NoError(t, d.Error())
	require.Equal(t, "AT+GAPGETCONN\n", string(tr.written[0].Payload()))
}

func TestCommandNotOK(t *testing.T) {
	tr := &scriptTransport{replies: respond("ERROR\r\n")}
	d := newTestDevice(tr)
	require.Nil(t, d.CommandCheckOK("AT+BOGUS"))
	require.Error(t, d.Error())
	require.Contains(t, d.Error().Error(), "not OK")
}

func TestCommandErrorResponse(t *testing.T) {
	tr := &scriptTransport{replies: []Frame{
		EncodeFrame(MsgError, CommandID(ErrUnknownCmd), nil, false),
	}}
	d := newTestDevice(tr)
	require.Nil(t, d.Command("AT+BOGUS"))
	require.ErrorIs(t, d.Error(), ErrUnknownCmd)

	// The error is sticky: helpers stop doing I/O until it is cleared.
	sent := len(tr.written)
	require.Nil(t, d.Command("ATZ"))
	require.Len(t, tr.written, sent)
}

func TestConnected(t *testing.T) {
	tr := &scriptTransport{replies: respond("1OK\r\n")}
	d := newTestDevice(tr)
	require.True(t, d.Connected())

	tr.replies = respond("0OK\r\n")
	require.False(t, d.Connected())
	require.NoError(t, d.Error())
}

func TestUartTX(t *testing.T) {
	tr := &scriptTransport{replies: respond("OK\r\n")}
	d := newTestDevice(tr)
	d.UartTX([]byte("ping"))
	require.NoError(t, d.Error())
	require.Len(t, tr.written, 2)
	var cmd []byte
	for _, f := range tr.written {
		cmd = append(cmd, f.Payload()...)
	}
	require.Equal(t, "AT+BLEUARTTX=ping\r\n", string(cmd))
}

func TestUartRX(t *testing.T) {
	tr := &scriptTransport{replies: respond("hello\r\nOK\r\n")}
	d := newTestDevice(tr)
	require.Equal(t, "hello", string(d.UartRX()))

	tr.replies = respond("OK\r\n")
	require.Nil(t, d.UartRX(), "no pending data")
	require.NoError(t, d.Error())
}

func TestReadPackets(t *testing.T) {
	tr := &scriptTransport{replies: respond("!B516\r\nOK\r\n")}
	d := newTestDevice(tr)
	events := d.ReadPackets()
	require.Equal(t, []Event{Button{Index: 5, Pressed: true}}, events)
	require.Zero(t, d.DroppedPackets())
}

func TestReadPacketsAcrossReads(t *testing.T) {
	// A packet split across two BLE UART reads completes on the second.
	tr := &scriptTransport{replies: respond("!B5\r\nOK\r\n")}
	d := newTestDevice(tr)
	require.Empty(t, d.ReadPackets())

	tr.replies = respond("16\r\nOK\r\n")
	events := d.ReadPackets()
	require.Equal(t, []Event{Button{Index: 5, Pressed: true}}, events)
}

func TestInit(t *testing.T) {
	tr := &scriptTransport{}
	d := newTestDevice(tr)
	d.Init()
	require.NoError(t, d.Error())
	require.Len(t, tr.written, 1)
	f := tr.written[0]
	require.Equal(t, MsgCommand, f.Kind())
	require.Equal(t, CmdInitialize, f.ID())
	require.Zero(t, f.Len())
}
