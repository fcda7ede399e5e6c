// internal/calibration/decode.go
package calibration

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// Value is one decoded calibration parameter.
// Exactly one of the fields is populated depending on Repr.
type Value struct {
	Uint uint64 // Unsigned (bit, byte, big-endian multi-byte)
	Int  int64  // Signed
	Text string // Hex, ASCII

	Repr Repr
}

// String renders the value for display.
func (v Value) String() string {
	switch v.Repr {
	case Signed:
		return strconv.FormatInt(v.Int, 10)
	case Hex, ASCII:
		return v.Text
	default:
		return strconv.FormatUint(v.Uint, 10)
	}
}

// DecodeField reads one schema entry out of a raw config buffer.
//
// ok is false when the entry falls outside the buffer. Firmware variants
// return config buffers of different sizes, so an out-of-range entry is a
// routine absence, not an error. The buffer is never mutated.
func DecodeField(buf []byte, e Entry) (Value, bool) {
	if e.Offset < 0 || e.Offset >= len(buf) {
		return Value{}, false
	}

	switch e.Kind {
	case KindBit:
		return Value{Uint: uint64(buf[e.Offset]>>e.Bit) & 1, Repr: e.Repr}, true

	case KindByte:
		b := buf[e.Offset]
		if e.Repr == Signed {
			return Value{Int: int64(int8(b)), Repr: Signed}, true
		}
		return Value{Uint: uint64(b), Repr: e.Repr}, true

	case KindMulti:
		if e.Offset+e.Length > len(buf) {
			return Value{}, false
		}
		raw := buf[e.Offset : e.Offset+e.Length]

		switch e.Repr {
		case ASCII:
			return Value{Text: strings.TrimRight(string(raw), "\x00"), Repr: ASCII}, true
		case Hex:
			return Value{Text: hex.EncodeToString(raw), Repr: Hex}, true
		default:
			// big-endian unsigned, any byte count
			var n uint64
			for _, b := range raw {
				n = n<<8 | uint64(b)
			}
			return Value{Uint: n, Repr: e.Repr}, true
		}
	}

	return Value{}, false
}

// View is a snapshot of every decodable parameter in one config buffer.
// Iteration order is schema order. Produced fresh per decode; no caching.
type View struct {
	names  []string
	values map[string]Value
}

// DecodeAll decodes every schema entry present in buf.
// Entries beyond the buffer are skipped. An empty or nil buffer yields an
// empty view.
func DecodeAll(buf []byte) *View {
	v := &View{values: make(map[string]Value)}
	for _, e := range Table {
		val, ok := DecodeField(buf, e)
		if !ok {
			continue
		}
		v.names = append(v.names, e.Name)
		v.values[e.Name] = val
	}
	return v
}

// Names returns the decoded parameter names in schema order.
func (v *View) Names() []string { return v.names }

// Get looks up a decoded parameter by name.
func (v *View) Get(name string) (Value, bool) {
	val, ok := v.values[name]
	return val, ok
}

// Len returns the number of decoded parameters.
func (v *View) Len() int { return len(v.names) }
