// internal/comm/exchange.go
package comm

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tamzrod/kellyctl/internal/protocol"
)

// ErrNoReply indicates every attempt of an exchange failed to produce a
// valid, correctly-addressed reply. The link is inherently lossy; callers
// treat this as routine and may re-issue the whole cycle later.
var ErrNoReply = errors.New("comm: no valid reply")

// DefaultRetries is the retry budget on top of the first attempt.
const DefaultRetries = 2

// Link drives request/reply exchanges over a Transport.
//
// The protocol is strictly single-outstanding-request: Execute blocks until
// the cycle completes, so a Link must not be shared across goroutines.
type Link struct {
	tr      Transport
	retries int
	log     zerolog.Logger
}

// Option configures a Link.
type Option func(*Link)

// WithRetries sets the retry budget (attempts beyond the first).
func WithRetries(n int) Option {
	return func(l *Link) {
		if n >= 0 {
			l.retries = n
		}
	}
}

// WithLogger attaches a logger for TX/RX debug tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Link) { l.log = log }
}

// NewLink wraps a transport with the protocol's retry policy.
func NewLink(tr Transport, opts ...Option) *Link {
	l := &Link{
		tr:      tr,
		retries: DefaultRetries,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Execute sends cmd with payload and returns the payload of the first valid
// reply, retrying up to the configured budget.
//
// Per attempt: discard stale input, transmit, read one header-driven reply,
// validate checksum and command. Framing failures (short read, bad checksum,
// wrong command) consume an attempt; transport failures surface immediately.
func (l *Link) Execute(cmd protocol.Command, payload []byte) ([]byte, error) {
	frame := protocol.Build(cmd, payload).Bytes()

	for attempt := 0; attempt <= l.retries; attempt++ {
		if attempt > 0 {
			l.log.Debug().Str("cmd", cmd.String()).Int("attempt", attempt+1).Msg("retrying")
		}

		if err := l.tr.ResetInput(); err != nil {
			return nil, fmt.Errorf("comm: reset input: %w", err)
		}

		l.log.Debug().Str("tx", hex.EncodeToString(frame)).Msg("send")
		if _, err := l.tr.Write(frame); err != nil {
			return nil, fmt.Errorf("comm: write: %w", err)
		}

		raw, err := l.readReply()
		if err != nil {
			return nil, err
		}
		l.log.Debug().Str("rx", hex.EncodeToString(raw)).Msg("recv")

		if !protocol.ValidateReply(raw, cmd) {
			continue
		}

		_, data, _ := protocol.Parse(raw)
		return data, nil
	}

	return nil, fmt.Errorf("%w: cmd=%s attempts=%d", ErrNoReply, cmd, l.retries+1)
}

// readReply reads one frame: a 2-byte header first, then the header-declared
// payload plus checksum. The declared length is clamped to the protocol
// ceiling so a corrupt header cannot demand an unbounded read. A short or
// empty result is returned as-is and left for validation to reject.
func (l *Link) readReply() ([]byte, error) {
	header := make([]byte, 2)
	n, err := l.readFull(header)
	if err != nil {
		return nil, fmt.Errorf("comm: read header: %w", err)
	}
	if n < len(header) {
		return header[:n], nil
	}

	rest := make([]byte, protocol.ClampLength(header[1])+1)
	n, err = l.readFull(rest)
	if err != nil {
		return nil, fmt.Errorf("comm: read body: %w", err)
	}
	return append(header, rest[:n]...), nil
}

// readFull accumulates reads into buf until it is full or a read times out
// (n=0). Unlike io.ReadFull it must not spin on timeout reads.
func (l *Link) readFull(buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := l.tr.Read(buf[total:])
		if err != nil {
			return total, err
		}
		if n == 0 {
			break
		}
		total += n
	}
	return total, nil
}
