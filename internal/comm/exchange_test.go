// internal/comm/exchange_test.go
package comm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tamzrod/kellyctl/internal/protocol"
)

// scriptTransport plays back one canned reply per write. An empty script
// entry models a reply timeout.
type scriptTransport struct {
	replies [][]byte
	pending []byte

	writes [][]byte
	resets int

	writeErr error
	readErr  error
}

func (s *scriptTransport) Read(p []byte) (int, error) {
	if s.readErr != nil {
		return 0, s.readErr
	}
	if len(s.pending) == 0 {
		return 0, nil // timeout
	}
	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

func (s *scriptTransport) Write(p []byte) (int, error) {
	if s.writeErr != nil {
		return 0, s.writeErr
	}
	s.writes = append(s.writes, append([]byte(nil), p...))
	if len(s.replies) > 0 {
		s.pending = s.replies[0]
		s.replies = s.replies[1:]
	}
	return len(p), nil
}

func (s *scriptTransport) ResetInput() error {
	s.resets++
	s.pending = nil
	return nil
}

func (s *scriptTransport) Close() error { return nil }

func reply(cmd protocol.Command, payload []byte) []byte {
	return protocol.Build(cmd, payload).Bytes()
}

func TestExecuteFirstReplyValid(t *testing.T) {
	tr := &scriptTransport{replies: [][]byte{reply(protocol.CmdGetVersion, []byte{0x01, 0x02})}}
	link := NewLink(tr)

	data, err := link.Execute(protocol.CmdGetVersion, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, data)
	require.Len(t, tr.writes, 1)
	require.Equal(t, []byte{0x11, 0x00, 0x11}, tr.writes[0])
}

func TestExecuteRecoversAfterGarbage(t *testing.T) {
	valid := reply(protocol.CmdMonitorOne, []byte{0x55, 0x66})
	tr := &scriptTransport{replies: [][]byte{
		{0xDE, 0xAD, 0xBE, 0xEF},
		{0x3A, 0x02, 0x55}, // truncated
		valid,
	}}
	link := NewLink(tr, WithRetries(2))

	data, err := link.Execute(protocol.CmdMonitorOne, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x55, 0x66}, data)
	// exactly one transmit and one input reset per attempt
	require.Len(t, tr.writes, 3)
	require.Equal(t, 3, tr.resets)
}

func TestExecuteTimeoutsExhaustBudget(t *testing.T) {
	tr := &scriptTransport{} // never answers
	link := NewLink(tr, WithRetries(2))

	_, err := link.Execute(protocol.CmdReadConfig, nil)
	require.ErrorIs(t, err, ErrNoReply)
	require.Len(t, tr.writes, 3)
}

func TestExecuteRejectsWrongCommand(t *testing.T) {
	// well-formed frames answering the wrong command never satisfy the cycle
	wrong := reply(protocol.CmdMonitorTwo, []byte{0x01})
	tr := &scriptTransport{replies: [][]byte{wrong, wrong, wrong}}
	link := NewLink(tr, WithRetries(2))

	_, err := link.Execute(protocol.CmdMonitorOne, nil)
	require.ErrorIs(t, err, ErrNoReply)
	require.Len(t, tr.writes, 3)
}

func TestExecuteStopsAtFirstValidReply(t *testing.T) {
	tr := &scriptTransport{replies: [][]byte{
		reply(protocol.CmdIdentifyStatus, []byte{protocol.IdentifyActive}),
		reply(protocol.CmdIdentifyStatus, []byte{protocol.IdentifyInactive}),
	}}
	link := NewLink(tr, WithRetries(5))

	data, err := link.Execute(protocol.CmdIdentifyStatus, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{protocol.IdentifyActive}, data)
	require.Len(t, tr.writes, 1)
}

func TestExecuteClampsDeclaredLength(t *testing.T) {
	// header claims 255 payload bytes; the read must stop at the protocol
	// ceiling and the attempt must fail validation instead of hanging
	huge := make([]byte, 40)
	huge[0], huge[1] = 0x4B, 0xFF
	tr := &scriptTransport{replies: [][]byte{huge}}
	link := NewLink(tr, WithRetries(0))

	_, err := link.Execute(protocol.CmdReadConfig, nil)
	require.ErrorIs(t, err, ErrNoReply)
}

func TestExecuteWriteErrorSurfaces(t *testing.T) {
	boom := errors.New("port closed")
	tr := &scriptTransport{writeErr: boom}
	link := NewLink(tr, WithRetries(2))

	_, err := link.Execute(protocol.CmdGetVersion, nil)
	require.ErrorIs(t, err, boom)
	require.Empty(t, tr.writes)
}

func TestExecuteReadErrorSurfaces(t *testing.T) {
	boom := errors.New("io failure")
	tr := &scriptTransport{readErr: boom}
	link := NewLink(tr, WithRetries(2))

	_, err := link.Execute(protocol.CmdGetVersion, nil)
	require.ErrorIs(t, err, boom)
	require.Len(t, tr.writes, 1)
}

func TestExecuteSendsPayload(t *testing.T) {
	cfg := make([]byte, protocol.ConfigWriteSize)
	for i := range cfg {
		cfg[i] = byte(i)
	}
	tr := &scriptTransport{replies: [][]byte{reply(protocol.CmdWriteConfig, nil)}}
	link := NewLink(tr)

	_, err := link.Execute(protocol.CmdWriteConfig, cfg)
	require.NoError(t, err)
	require.Equal(t, protocol.Build(protocol.CmdWriteConfig, cfg).Bytes(), tr.writes[0])
}
