// internal/controller/controller.go
package controller

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/tamzrod/kellyctl/internal/calibration"
	"github.com/tamzrod/kellyctl/internal/protocol"
)

// Requester abstracts one request/reply exchange on the link.
// The controller depends on exchanges only.
type Requester interface {
	Execute(cmd protocol.Command, payload []byte) ([]byte, error)
}

// Controller is the high-level driver for one motor controller.
type Controller struct {
	link Requester
}

// New creates a controller over an established link.
func New(link Requester) *Controller {
	return &Controller{link: link}
}

// Poll runs one full monitor cycle (packets 1, 2, 3) and returns a single
// snapshot. Any failed query aborts the cycle; no torn snapshot is returned.
func (c *Controller) Poll() (Snapshot, error) {
	var snap Snapshot

	steps := []struct {
		cmd   protocol.Command
		parse func([]byte, *Snapshot) error
	}{
		{protocol.CmdMonitorOne, parseMonitorOne},
		{protocol.CmdMonitorTwo, parseMonitorTwo},
		{protocol.CmdMonitorThree, parseMonitorThree},
	}
	for _, step := range steps {
		data, err := c.link.Execute(step.cmd, nil)
		if err != nil {
			return Snapshot{}, fmt.Errorf("controller: %s: %w", step.cmd, err)
		}
		if err := step.parse(data, &snap); err != nil {
			return Snapshot{}, fmt.Errorf("controller: %s: %w", step.cmd, err)
		}
	}

	snap.At = time.Now()
	return snap, nil
}

// Version reads the firmware version and returns it as a hex string.
func (c *Controller) Version() (string, error) {
	data, err := c.link.Execute(protocol.CmdGetVersion, nil)
	if err != nil {
		return "", fmt.Errorf("controller: version: %w", err)
	}
	return hex.EncodeToString(data), nil
}

// ReadCalibration reads the raw configuration buffer.
func (c *Controller) ReadCalibration() ([]byte, error) {
	data, err := c.link.Execute(protocol.CmdReadConfig, nil)
	if err != nil {
		return nil, fmt.Errorf("controller: read config: %w", err)
	}
	return data, nil
}

// Calibration reads the configuration buffer and decodes it against the
// parameter schema.
func (c *Controller) Calibration() (*calibration.View, error) {
	raw, err := c.ReadCalibration()
	if err != nil {
		return nil, err
	}
	return calibration.DecodeAll(raw), nil
}

// WriteCalibration writes raw configuration data.
//
// The payload must be exactly protocol.ConfigWriteSize bytes; anything else
// is rejected before a single byte is transmitted. This operation is
// unverified against real hardware.
func (c *Controller) WriteCalibration(data []byte) error {
	if len(data) != protocol.ConfigWriteSize {
		return fmt.Errorf("controller: config write payload must be %d bytes, got %d",
			protocol.ConfigWriteSize, len(data))
	}
	if _, err := c.link.Execute(protocol.CmdWriteConfig, data); err != nil {
		return fmt.Errorf("controller: write config: %w", err)
	}
	return nil
}

// PhaseADC holds the raw phase current ADC readings.
type PhaseADC struct {
	A, B, C uint16
}

// PhaseCurrentADC reads the raw phase current ADC values, three big-endian
// words A, B, C.
func (c *Controller) PhaseCurrentADC() (PhaseADC, error) {
	data, err := c.link.Execute(protocol.CmdPhaseIAD, nil)
	if err != nil {
		return PhaseADC{}, fmt.Errorf("controller: phase adc: %w", err)
	}
	if len(data) < 6 {
		return PhaseADC{}, fmt.Errorf("controller: phase adc: short payload (%d bytes)", len(data))
	}
	return PhaseADC{
		A: uint16(data[0])<<8 | uint16(data[1]),
		B: uint16(data[2])<<8 | uint16(data[3]),
		C: uint16(data[4])<<8 | uint16(data[5]),
	}, nil
}

// EnterIdentify puts the controller into motor identification mode.
// Identification is an enter/poll/exit sequence owned by the caller.
func (c *Controller) EnterIdentify() error {
	if _, err := c.link.Execute(protocol.CmdIdentifyEnter, nil); err != nil {
		return fmt.Errorf("controller: enter identify: %w", err)
	}
	return nil
}

// ExitIdentify leaves motor identification mode.
func (c *Controller) ExitIdentify() error {
	if _, err := c.link.Execute(protocol.CmdIdentifyQuit, nil); err != nil {
		return fmt.Errorf("controller: exit identify: %w", err)
	}
	return nil
}

// IdentifyActive reports whether motor identification is running.
// The status byte is 0xAA while active and 0x55 while inactive.
func (c *Controller) IdentifyActive() (bool, error) {
	data, err := c.link.Execute(protocol.CmdIdentifyStatus, nil)
	if err != nil {
		return false, fmt.Errorf("controller: identify status: %w", err)
	}
	if len(data) < 1 {
		return false, fmt.Errorf("controller: identify status: empty payload")
	}
	return data[0] == protocol.IdentifyActive, nil
}
