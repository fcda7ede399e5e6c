// internal/comm/transport.go
package comm

// Transport abstracts the half-duplex byte link to the controller.
// The Link depends on bytes only: no timing, no port management.
//
// Read MUST return n=0 with a nil error on timeout rather than blocking
// forever; the exchange cycle treats a zero-length read as a short reply.
type Transport interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)

	// ResetInput discards bytes buffered but not yet read, clearing
	// cross-talk left over from a prior aborted exchange.
	ResetInput() error

	Close() error
}
