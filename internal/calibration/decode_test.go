// internal/calibration/decode_test.go
package calibration

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// configBuf builds a buffer large enough for the low-offset entries and
// places b at offset.
func configBuf(size int, set map[int]byte) []byte {
	buf := make([]byte, size)
	for off, b := range set {
		buf[off] = b
	}
	return buf
}

func decodeNamed(t *testing.T, buf []byte, name string) (Value, bool) {
	t.Helper()
	e, ok := Lookup(name)
	require.True(t, ok, "schema entry %q", name)
	return DecodeField(buf, e)
}

func TestDecodeBits(t *testing.T) {
	buf := configBuf(0x20, map[int]byte{0x15: 0b10000011})

	for name, want := range map[string]uint64{
		"foot_switch":     1, // bit 0
		"sw_level":        1, // bit 1
		"controller_type": 0, // bit 3
		"change_dir":      1, // bit 7
	} {
		v, ok := decodeNamed(t, buf, name)
		require.True(t, ok, name)
		require.Equal(t, want, v.Uint, name)
	}
}

func TestDecodeByteUnsigned(t *testing.T) {
	buf := configBuf(0x20, map[int]byte{0x16: 12})
	v, ok := decodeNamed(t, buf, "startup_wait_time")
	require.True(t, ok)
	require.Equal(t, uint64(12), v.Uint)
	require.Equal(t, "12", v.String())
}

func TestDecodeByteSigned(t *testing.T) {
	// no signed entry in the reference table; exercise the path directly
	e := Entry{Name: "x", Offset: 0, Kind: KindByte, Repr: Signed}

	v, ok := DecodeField([]byte{0x80}, e)
	require.True(t, ok)
	require.Equal(t, int64(-128), v.Int)

	v, ok = DecodeField([]byte{0xFF}, e)
	require.True(t, ok)
	require.Equal(t, int64(-1), v.Int)

	v, ok = DecodeField([]byte{0x7F}, e)
	require.True(t, ok)
	require.Equal(t, int64(127), v.Int)
}

func TestDecodeMultiBigEndian(t *testing.T) {
	buf := configBuf(0x20, map[int]byte{0x17: 0x02, 0x18: 0x64})
	v, ok := decodeNamed(t, buf, "controller_voltage")
	require.True(t, ok)
	require.Equal(t, uint64(0x0264), v.Uint)
}

func TestDecodeASCIIStripsNULs(t *testing.T) {
	buf := make([]byte, 0x20)
	copy(buf, "MOTOR\x00\x00\x00")
	v, ok := decodeNamed(t, buf, "module_name")
	require.True(t, ok)
	require.Equal(t, "MOTOR", v.Text)
}

func TestDecodeHex(t *testing.T) {
	buf := configBuf(0x20, map[int]byte{0x0C: 0xDE, 0x0D: 0xAD, 0x0E: 0xBE, 0x0F: 0xEF})
	v, ok := decodeNamed(t, buf, "serial_number")
	require.True(t, ok)
	require.Equal(t, "deadbeef", v.Text)
}

func TestDecodeOutOfRangeIsAbsent(t *testing.T) {
	short := make([]byte, 0x10)

	// byte entry past the end
	_, ok := decodeNamed(t, short, "startup_wait_time")
	require.False(t, ok)

	// multi entry starting inside but running past the end
	_, ok = decodeNamed(t, make([]byte, 0x18), "controller_voltage")
	require.False(t, ok)

	_, ok = DecodeField(nil, Entry{Offset: 0, Kind: KindByte})
	require.False(t, ok)
}

func TestDecodeAllShortBuffer(t *testing.T) {
	// buffer covers the first 0x27 bytes: everything at tps_low (0x5C) and
	// beyond must be absent, everything before must be present
	view := DecodeAll(make([]byte, 0x27))
	_, ok := view.Get("battery_current_limit")
	require.True(t, ok)
	_, ok = view.Get("tps_low")
	require.False(t, ok)
	_, ok = view.Get("high_temp_resume")
	require.False(t, ok)
}

func TestDecodeAllEmptyBuffer(t *testing.T) {
	require.Equal(t, 0, DecodeAll(nil).Len())
	require.Equal(t, 0, DecodeAll([]byte{}).Len())
}

func TestDecodeAllOrderAndIdempotence(t *testing.T) {
	buf := make([]byte, 0x141)
	copy(buf, "KLS7230S")
	buf[0x15] = 0x83
	buf[0x6B], buf[0x6C] = 0x17, 0x70 // max_speed = 6000

	a := DecodeAll(buf)
	b := DecodeAll(buf)

	// full schema decodable: order must be schema order
	require.Equal(t, len(Table), a.Len())
	for i, e := range Table {
		require.Equal(t, e.Name, a.Names()[i])
	}

	require.Equal(t, a.Names(), b.Names())
	for _, name := range a.Names() {
		av, _ := a.Get(name)
		bv, _ := b.Get(name)
		require.Equal(t, av, bv, name)
	}

	ms, _ := a.Get("max_speed")
	require.Equal(t, uint64(6000), ms.Uint)
	mn, _ := a.Get("module_name")
	require.Equal(t, "KLS7230S", mn.Text)
}

func TestLookupMiss(t *testing.T) {
	_, ok := Lookup("no_such_param")
	require.False(t, ok)
}
