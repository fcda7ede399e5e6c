// internal/controller/snapshot.go
package controller

import (
	"errors"
	"math"
	"time"

	"github.com/tamzrod/kellyctl/internal/protocol"
)

// Snapshot is the controller state captured by one full monitor cycle.
// It is an immutable value: one Snapshot per successful poll, no per-field
// mutation between cycles.
type Snapshot struct {
	At time.Time

	// Monitor packet 1 (0x3A)
	TPSPedal       uint8
	BrakePedal     uint8
	BrakeSw1       bool
	FootSw         bool
	ForwardSw      bool
	ReverseSw      bool
	HallA          bool
	HallB          bool
	HallC          bool
	BatteryVoltage uint8
	MotorTemp      uint8
	ControllerTemp uint8
	SettingDir     uint8
	ActualDir      uint8
	BrakeSw2       bool
	LowSpeed       bool

	// Monitor packet 2 (0x3B)
	MotorSpeed   uint16 // RPM
	PhaseCurrent uint8  // A

	// Monitor packet 3 (0x3C)
	Faults protocol.FaultWord
}

// Payload sizes the monitor replies must carry.
const (
	monitorOneSize   = 16
	monitorTwoSize   = 6
	monitorThreeSize = 2
)

var errShortMonitor = errors.New("controller: short monitor payload")

// parseMonitorOne fills the switch/analog fields from a 0x3A payload.
// Offsets are payload-relative, per the checksum-validated protocol variant.
func parseMonitorOne(data []byte, s *Snapshot) error {
	if len(data) < monitorOneSize {
		return errShortMonitor
	}
	s.TPSPedal = data[0]
	s.BrakePedal = data[1]
	s.BrakeSw1 = data[2] != 0
	s.FootSw = data[3] != 0
	s.ForwardSw = data[4] != 0
	s.ReverseSw = data[5] != 0
	s.HallA = data[6] != 0
	s.HallB = data[7] != 0
	s.HallC = data[8] != 0
	s.BatteryVoltage = data[9]
	s.MotorTemp = data[10]
	s.ControllerTemp = data[11]
	s.SettingDir = data[12]
	s.ActualDir = data[13]
	s.BrakeSw2 = data[14] != 0
	s.LowSpeed = data[15] != 0
	return nil
}

// parseMonitorTwo fills speed and phase current from a 0x3B payload.
// Motor speed is big-endian at payload bytes 3..4.
func parseMonitorTwo(data []byte, s *Snapshot) error {
	if len(data) < monitorTwoSize {
		return errShortMonitor
	}
	s.MotorSpeed = uint16(data[3])<<8 | uint16(data[4])
	s.PhaseCurrent = data[5]
	return nil
}

// parseMonitorThree fills the fault word from a 0x3C payload.
func parseMonitorThree(data []byte, s *Snapshot) error {
	if len(data) < monitorThreeSize {
		return errShortMonitor
	}
	s.Faults = protocol.FaultWord(uint16(data[0])<<8 | uint16(data[1]))
	return nil
}

// Direction renders the selected direction as FWD/REV/N.
func (s Snapshot) Direction() string {
	switch {
	case s.ForwardSw:
		return "FWD"
	case s.ReverseSw:
		return "REV"
	default:
		return "N"
	}
}

// MPH converts motor RPM to road speed for the given tire diameter in
// inches, assuming direct drive. 63360 inches per mile.
func (s Snapshot) MPH(tireDiameterIn float64) float64 {
	circumference := tireDiameterIn * math.Pi
	return float64(s.MotorSpeed) * circumference * 60 / 63360
}
