// internal/protocol/frame.go
package protocol

// Frame is one complete protocol message. It is a value: build once,
// serialize, never mutate.
type Frame struct {
	Cmd     Command
	Payload []byte
}

// Checksum computes the 8-bit wraparound additive sum over data.
// This is the controller's native integrity check. It is deliberately weak
// (truncated sum, not a CRC); reproducing it exactly is what keeps us
// wire-compatible.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return sum
}

// Build constructs a frame for transmission.
//
// Pure construction, no failure path. Payloads over MaxPayload violate the
// caller contract: the builder does not truncate or repair them, and the
// resulting frame declares the real payload size.
func Build(cmd Command, payload []byte) Frame {
	return Frame{Cmd: cmd, Payload: payload}
}

// Bytes serializes the frame as [command][length][payload...][checksum].
// When the payload is empty the checksum equals the command byte.
func (f Frame) Bytes() []byte {
	b := make([]byte, len(f.Payload)+MinFrameSize)
	b[0] = byte(f.Cmd)
	b[1] = byte(len(f.Payload))
	copy(b[headerSize:], f.Payload)

	if len(f.Payload) == 0 {
		b[len(b)-1] = byte(f.Cmd)
	} else {
		b[len(b)-1] = Checksum(b[:len(b)-1])
	}
	return b
}

// Validate reports whether raw holds a complete, checksum-correct frame.
//
// Fails closed: malformed frames are routine on a noisy link, so every
// violation is a false return, never a panic. Trailing bytes beyond the
// declared frame are ignored.
func Validate(raw []byte) bool {
	if len(raw) < MinFrameSize {
		return false
	}

	length := int(raw[1])
	if len(raw) < MinFrameSize+length {
		return false
	}

	var want byte
	if length == 0 {
		want = raw[0]
	} else {
		want = Checksum(raw[:headerSize+length])
	}
	return raw[headerSize+length] == want
}

// ValidateReply is Validate plus a command check: a reply must lead with the
// command byte it answers.
func ValidateReply(raw []byte, cmd Command) bool {
	return Validate(raw) && Command(raw[0]) == cmd
}

// Parse validates raw and slices out its command and payload.
// ok is false for any frame Validate rejects; no partial result is returned.
func Parse(raw []byte) (cmd Command, payload []byte, ok bool) {
	if !Validate(raw) {
		return 0, nil, false
	}
	length := int(raw[1])
	return Command(raw[0]), raw[headerSize : headerSize+length], true
}

// ClampLength bounds a header-declared payload length to the protocol
// ceiling. The read path uses this so a garbage length byte yields a
// truncated (and then invalid) frame instead of an unbounded blocking read.
func ClampLength(declared byte) int {
	if int(declared) > MaxPayload {
		return MaxPayload
	}
	return int(declared)
}
