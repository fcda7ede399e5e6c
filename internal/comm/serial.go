// internal/comm/serial.go
package comm

import (
	"fmt"

	"go.bug.st/serial"

	"github.com/tamzrod/kellyctl/internal/protocol"
)

// SerialPort implements Transport over a physical serial port.
type SerialPort struct {
	port serial.Port
	addr string
}

// OpenSerial opens addr with the controller's fixed link parameters
// (19200 8N1) and arms the per-read timeout.
func OpenSerial(addr string) (*SerialPort, error) {
	mode := &serial.Mode{
		BaudRate: protocol.BaudRate,
		DataBits: protocol.DataBits,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(addr, mode)
	if err != nil {
		return nil, fmt.Errorf("comm: open %s: %w", addr, err)
	}
	if err := port.SetReadTimeout(protocol.ReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("comm: set read timeout on %s: %w", addr, err)
	}

	return &SerialPort{port: port, addr: addr}, nil
}

// Addr returns the port address this transport was opened on.
func (s *SerialPort) Addr() string { return s.addr }

func (s *SerialPort) Read(p []byte) (int, error)  { return s.port.Read(p) }
func (s *SerialPort) Write(p []byte) (int, error) { return s.port.Write(p) }

// ResetInput drops any bytes the OS has buffered from the controller.
func (s *SerialPort) ResetInput() error { return s.port.ResetInputBuffer() }

func (s *SerialPort) Close() error { return s.port.Close() }
