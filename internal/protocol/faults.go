// internal/protocol/faults.go
package protocol

// FaultWord is the 16-bit error code reported in monitor packet 3.
// Each set bit is one active fault.
type FaultWord uint16

// faultNames maps bit index to fault description. The assignment is
// firmware-defined and MUST NOT be reordered.
var faultNames = [16]string{
	0:  "Identification Error",
	1:  "Over Voltage",
	2:  "Low Voltage",
	3:  "Reserved",
	4:  "Stall",
	5:  "Internal Voltage Fault",
	6:  "Controller Over Temp",
	7:  "Throttle Error (Startup)",
	8:  "Reserved",
	9:  "Internal Reset",
	10: "Hall Sensor Error",
	11: "Reserved",
	12: "Reserved",
	13: "Reserved",
	14: "Reserved",
	15: "Motor Over Temp",
}

// Decode returns the descriptions of all set fault bits, in bit order.
func (w FaultWord) Decode() []string {
	var faults []string
	for bit, name := range faultNames {
		if w&(1<<bit) != 0 {
			faults = append(faults, name)
		}
	}
	return faults
}

// IsZero reports whether no fault bits are set.
func (w FaultWord) IsZero() bool { return w == 0 }
