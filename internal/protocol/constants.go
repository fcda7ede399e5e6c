// internal/protocol/constants.go
package protocol

import "time"

// Serial link parameters. These values define the protocol and MUST NOT
// be configurable per-frame; the controller only speaks 19200 8N1.
const (
	BaudRate = 19200
	DataBits = 8
	StopBits = 1
)

// ReadTimeout is the per-read timeout. It is fixed regardless of baud rate;
// the controller answers well inside 300ms or not at all.
const ReadTimeout = 300 * time.Millisecond

// Frame geometry.
const (
	// MaxPayload is the hard protocol ceiling for a frame payload.
	// Header-declared lengths above this are clamped before reading the
	// remainder so a corrupt header cannot demand an unbounded read.
	MaxPayload = 16

	// MinFrameSize is command + length + checksum.
	MinFrameSize = 3

	// headerSize is command + length.
	headerSize = 2
)

// Motor identification status bytes returned by CmdIdentifyStatus.
const (
	IdentifyActive   byte = 0xAA
	IdentifyInactive byte = 0x55
)

// ConfigWriteSize is the exact payload size CmdWriteConfig accepts.
const ConfigWriteSize = 13
