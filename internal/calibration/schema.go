// internal/calibration/schema.go
package calibration

// Kind selects how a schema entry is read out of the buffer.
type Kind int

const (
	// KindBit is a single bit within one byte.
	KindBit Kind = iota
	// KindByte is one whole byte.
	KindByte
	// KindMulti is Length consecutive bytes.
	KindMulti
)

// Repr selects how the raw bytes are interpreted.
type Repr int

const (
	// Unsigned is a plain unsigned integer (big-endian for KindMulti).
	Unsigned Repr = iota
	// Signed is an 8-bit two's-complement integer (KindByte only).
	Signed
	// Hex renders the raw bytes as a lowercase hex string.
	Hex
	// ASCII decodes text and strips trailing NUL padding.
	ASCII
)

// Entry describes one named calibration parameter: where it lives in the
// config buffer and how to interpret it. Entries are static reference data.
type Entry struct {
	Name   string
	Offset int
	Kind   Kind
	Bit    uint8 // KindBit only, 0..7
	Length int   // KindMulti only
	Repr   Repr

	// Min/Max bound writable values; HasRange is false for entries the
	// reference table leaves unbounded.
	Min, Max int
	HasRange bool

	ReadOnly bool
	Desc     string
}

// Table is the full calibration parameter map, in reference order.
// Every offset and bit position is firmware-defined and MUST NOT change.
var Table = []Entry{
	{Name: "module_name", Offset: 0x00, Kind: KindMulti, Length: 8, Repr: ASCII, ReadOnly: true, Desc: "Module Name (8 chars ASCII)"},
	{Name: "user_name", Offset: 0x08, Kind: KindMulti, Length: 4, Repr: ASCII, ReadOnly: true, Desc: "User Name (4 chars ASCII)"},
	{Name: "serial_number", Offset: 0x0C, Kind: KindMulti, Length: 4, Repr: Hex, ReadOnly: true, Desc: "Serial Number"},
	{Name: "software_version", Offset: 0x10, Kind: KindMulti, Length: 4, Repr: Hex, ReadOnly: true, Desc: "Software Version"},
	{Name: "startup_hpedal", Offset: 0x14, Kind: KindBit, Bit: 0, Repr: Unsigned, Min: 0, Max: 1, HasRange: true, Desc: "Startup High Pedal Protection"},
	{Name: "brake_hpedal", Offset: 0x14, Kind: KindBit, Bit: 1, Repr: Unsigned, Min: 0, Max: 1, HasRange: true, Desc: "Brake High Pedal Protection"},
	{Name: "ntl_hpedal", Offset: 0x14, Kind: KindBit, Bit: 2, Repr: Unsigned, Min: 0, Max: 1, HasRange: true, Desc: "Neutral High Pedal Protection"},
	{Name: "foot_switch", Offset: 0x15, Kind: KindBit, Bit: 0, Repr: Unsigned, Min: 0, Max: 1, HasRange: true, Desc: "Foot Switch Enable"},
	{Name: "sw_level", Offset: 0x15, Kind: KindBit, Bit: 1, Repr: Unsigned, Min: 0, Max: 1, HasRange: true, Desc: "Switch Level (0=Low, 1=High)"},
	{Name: "controller_type", Offset: 0x15, Kind: KindBit, Bit: 3, Repr: Unsigned, Min: 0, Max: 1, HasRange: true, Desc: "Controller Type (0=HIM, 1=KIM)"},
	{Name: "change_dir", Offset: 0x15, Kind: KindBit, Bit: 7, Repr: Unsigned, Min: 0, Max: 1, HasRange: true, Desc: "Reverse Motor Direction"},
	{Name: "startup_wait_time", Offset: 0x16, Kind: KindByte, Repr: Unsigned, Min: 0, Max: 20, HasRange: true, Desc: "Startup Wait Time (seconds)"},
	{Name: "controller_voltage", Offset: 0x17, Kind: KindMulti, Length: 2, Repr: Unsigned, Min: 0, Max: 612, HasRange: true, ReadOnly: true, Desc: "Controller Nominal Voltage"},
	{Name: "low_voltage", Offset: 0x19, Kind: KindMulti, Length: 2, Repr: Unsigned, Min: 0, Max: 1000, HasRange: true, Desc: "Low Voltage Cutoff"},
	{Name: "over_voltage", Offset: 0x1B, Kind: KindMulti, Length: 2, Repr: Unsigned, Min: 0, Max: 1000, HasRange: true, Desc: "Over Voltage Cutoff"},
	{Name: "current_percent", Offset: 0x25, Kind: KindByte, Repr: Unsigned, Min: 20, Max: 100, HasRange: true, Desc: "Max Current Percent"},
	{Name: "battery_current_limit", Offset: 0x26, Kind: KindByte, Repr: Unsigned, Min: 20, Max: 100, HasRange: true, Desc: "Battery Current Limit %"},
	{Name: "tps_low", Offset: 0x5C, Kind: KindByte, Repr: Unsigned, Min: 0, Max: 20, HasRange: true, Desc: "TPS Low Fault Threshold %"},
	{Name: "tps_high", Offset: 0x5D, Kind: KindByte, Repr: Unsigned, Min: 80, Max: 100, HasRange: true, Desc: "TPS High Fault Threshold %"},
	{Name: "tps_type", Offset: 0x5F, Kind: KindByte, Repr: Unsigned, Min: 0, Max: 3, HasRange: true, Desc: "TPS Type (0=None, 1=0-5V, 2=1-4V, 3=0-5K)"},
	{Name: "tps_dead_low", Offset: 0x60, Kind: KindByte, Repr: Unsigned, Min: 0, Max: 80, HasRange: true, Desc: "TPS Dead Zone Low %"},
	{Name: "tps_dead_high", Offset: 0x61, Kind: KindByte, Repr: Unsigned, Min: 120, Max: 200, HasRange: true, Desc: "TPS Dead Zone High %"},
	{Name: "max_output_freq", Offset: 0x69, Kind: KindMulti, Length: 2, Repr: Unsigned, Min: 50, Max: 1000, HasRange: true, Desc: "Max Output Frequency (Hz)"},
	{Name: "max_speed", Offset: 0x6B, Kind: KindMulti, Length: 2, Repr: Unsigned, Min: 0, Max: 60000, HasRange: true, Desc: "Max Speed (RPM)"},
	{Name: "max_forward_speed", Offset: 0x6D, Kind: KindByte, Repr: Unsigned, Min: 30, Max: 100, HasRange: true, Desc: "Max Forward Speed %"},
	{Name: "max_reverse_speed", Offset: 0x6E, Kind: KindByte, Repr: Unsigned, Min: 20, Max: 100, HasRange: true, Desc: "Max Reverse Speed %"},
	{Name: "regen_brake_percent", Offset: 0xE6, Kind: KindByte, Repr: Unsigned, Min: 0, Max: 50, HasRange: true, Desc: "Release TPS Regen Brake %"},
	{Name: "neutral_brake_percent", Offset: 0xE7, Kind: KindByte, Repr: Unsigned, Min: 0, Max: 50, HasRange: true, Desc: "Neutral Regen Brake %"},
	{Name: "accel_time", Offset: 0xEF, Kind: KindByte, Repr: Unsigned, Min: 0, Max: 250, HasRange: true, Desc: "Acceleration Time (x0.1s)"},
	{Name: "accel_release_time", Offset: 0xF0, Kind: KindByte, Repr: Unsigned, Min: 0, Max: 250, HasRange: true, Desc: "Acceleration Release Time (x0.1s)"},
	{Name: "brake_time", Offset: 0xF1, Kind: KindByte, Repr: Unsigned, Min: 0, Max: 250, HasRange: true, Desc: "Brake Ramp Time (x0.1s)"},
	{Name: "brake_release_time", Offset: 0xF2, Kind: KindByte, Repr: Unsigned, Min: 0, Max: 250, HasRange: true, Desc: "Brake Release Time (x0.1s)"},
	{Name: "motor_poles", Offset: 0x10C, Kind: KindByte, Repr: Unsigned, Min: 2, Max: 32, HasRange: true, Desc: "Motor Poles (pole pairs x2)"},
	{Name: "speed_sensor_type", Offset: 0x10D, Kind: KindByte, Repr: Unsigned, Min: 0, Max: 4, HasRange: true, Desc: "Speed Sensor (0=None, 1=Encoder, 2=Hall, 3=Resolver)"},
	{Name: "motor_temp_sensor", Offset: 0x13E, Kind: KindByte, Repr: Unsigned, Min: 0, Max: 1, HasRange: true, Desc: "Motor Temp Sensor (0=None, 1=KTY83)"},
	{Name: "high_temp_cutoff", Offset: 0x13F, Kind: KindByte, Repr: Unsigned, Min: 60, Max: 170, HasRange: true, Desc: "Motor High Temp Cutoff (C)"},
	{Name: "high_temp_resume", Offset: 0x140, Kind: KindByte, Repr: Unsigned, Min: 60, Max: 170, HasRange: true, Desc: "Motor High Temp Resume (C)"},
}

var byName = func() map[string]Entry {
	m := make(map[string]Entry, len(Table))
	for _, e := range Table {
		m[e.Name] = e
	}
	return m
}()

// Lookup finds a schema entry by parameter name.
func Lookup(name string) (Entry, bool) {
	e, ok := byName[name]
	return e, ok
}
