// internal/protocol/commands.go
package protocol

import "fmt"

// Command is one controller command byte. The set is closed: the firmware
// recognizes exactly these opcodes and nothing else.
type Command byte

// Monitor commands (real-time data).
const (
	CmdMonitorOne   Command = 0x3A
	CmdMonitorTwo   Command = 0x3B
	CmdMonitorThree Command = 0x3C
)

// Info commands.
const (
	CmdGetVersion Command = 0x11
	CmdPhaseIAD   Command = 0x35
)

// Configuration commands.
const (
	CmdReadConfig  Command = 0x4B
	CmdWriteConfig Command = 0x4C // payload is exactly ConfigWriteSize bytes
)

// Motor identification commands.
const (
	CmdIdentifyEnter  Command = 0x43
	CmdIdentifyStatus Command = 0x44
	CmdIdentifyQuit   Command = 0x42
	CmdResolverAngle  Command = 0x4D
	CmdHallSequence   Command = 0x4E
)

// Flash programming commands. Enumerated for completeness; no flashing
// workflow is built on top of them here.
const (
	CmdFlashReadStart  Command = 0xF1
	CmdFlashReadBlock  Command = 0xF2
	CmdFlashWriteBlock Command = 0xF3
	CmdFlashEnd        Command = 0xF4
	CmdEraseFlash      Command = 0xB1
	CmdBurnFlash       Command = 0xB2
	CmdBurnChecksum    Command = 0xB3
	CmdBurnReset       Command = 0xB4
	CmdCodeEndAddress  Command = 0xB5
	CmdGetSeed         Command = 0xE1
	CmdValidateSeed    Command = 0xE2
)

// String returns the protocol name of the command.
func (c Command) String() string {
	switch c {
	case CmdMonitorOne:
		return "MONITOR_ONE"
	case CmdMonitorTwo:
		return "MONITOR_TWO"
	case CmdMonitorThree:
		return "MONITOR_THREE"
	case CmdGetVersion:
		return "GET_VERSION"
	case CmdPhaseIAD:
		return "GET_PHASE_I_AD"
	case CmdReadConfig:
		return "READ_CONFIG"
	case CmdWriteConfig:
		return "WRITE_CONFIG"
	case CmdIdentifyEnter:
		return "ENTRY_IDENTIFY"
	case CmdIdentifyStatus:
		return "CHECK_IDENTIFY_STATUS"
	case CmdIdentifyQuit:
		return "QUIT_IDENTIFY"
	case CmdResolverAngle:
		return "GET_RESOLVER_ANGLE"
	case CmdHallSequence:
		return "GET_HALL_SEQUENCE"
	case CmdFlashReadStart:
		return "FLASH_READ_START"
	case CmdFlashReadBlock:
		return "FLASH_READ_BLOCK"
	case CmdFlashWriteBlock:
		return "FLASH_WRITE_BLOCK"
	case CmdFlashEnd:
		return "FLASH_END"
	case CmdEraseFlash:
		return "ERASE_FLASH"
	case CmdBurnFlash:
		return "BURNT_FLASH"
	case CmdBurnChecksum:
		return "BURNT_CHECKSUM"
	case CmdBurnReset:
		return "BURNT_RESET"
	case CmdCodeEndAddress:
		return "CODE_END_ADDRESS"
	case CmdGetSeed:
		return "GET_SEED"
	case CmdValidateSeed:
		return "VALIDATE_SEED"
	default:
		return fmt.Sprintf("UNKNOWN(0x%02X)", byte(c))
	}
}
