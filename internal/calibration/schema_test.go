// internal/calibration/schema_test.go
package calibration

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Table {
		require.False(t, seen[e.Name], "duplicate entry %q", e.Name)
		seen[e.Name] = true
	}
}

// Spot-check load-bearing positions against the reference table.
func TestTableOffsets(t *testing.T) {
	checks := []struct {
		name   string
		offset int
		kind   Kind
		bit    uint8
	}{
		{"module_name", 0x00, KindMulti, 0},
		{"serial_number", 0x0C, KindMulti, 0},
		{"startup_hpedal", 0x14, KindBit, 0},
		{"change_dir", 0x15, KindBit, 7},
		{"controller_voltage", 0x17, KindMulti, 0},
		{"tps_dead_high", 0x61, KindByte, 0},
		{"max_speed", 0x6B, KindMulti, 0},
		{"regen_brake_percent", 0xE6, KindByte, 0},
		{"motor_poles", 0x10C, KindByte, 0},
		{"high_temp_resume", 0x140, KindByte, 0},
	}
	for _, c := range checks {
		e, ok := Lookup(c.name)
		require.True(t, ok, c.name)
		require.Equal(t, c.offset, e.Offset, c.name)
		require.Equal(t, c.kind, e.Kind, c.name)
		require.Equal(t, c.bit, e.Bit, c.name)
	}
}

func TestTableInvariants(t *testing.T) {
	for _, e := range Table {
		switch e.Kind {
		case KindBit:
			require.LessOrEqual(t, e.Bit, uint8(7), e.Name)
			require.True(t, e.HasRange, e.Name)
			require.Equal(t, 0, e.Min, e.Name)
			require.Equal(t, 1, e.Max, e.Name)
		case KindMulti:
			require.Greater(t, e.Length, 0, e.Name)
		}
		if e.HasRange {
			require.LessOrEqual(t, e.Min, e.Max, e.Name)
		}
	}
}
