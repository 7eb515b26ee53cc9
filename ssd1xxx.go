package ssd1306

import "fmt"

// Control bytes lead every transaction.
const (
	controlCommand = 0x00 // command byte follows
	controlData    = 0x40 // display data follows
)

// opcode is a controller command.
type opcode byte

const (
	setMemoryMode         opcode = 0x20
	setColumnAddr         opcode = 0x21
	setPageAddr           opcode = 0x22
	setStartLine          opcode = 0x40
	setContrast           opcode = 0x81
	setChargePump         opcode = 0x8D
	setSegmentRemap       opcode = 0xA1
	setDisplayAllOnResume opcode = 0xA4
	setNormalDisplay      opcode = 0xA6
	setInvertDisplay      opcode = 0xA7
	setMultiplexRatio     opcode = 0xA8
	setDisplayOff         opcode = 0xAE
	setDisplayOn          opcode = 0xAF
	setComScanDec         opcode = 0xC8
	setDisplayOffset      opcode = 0xD3
	setDisplayClockDiv    opcode = 0xD5
	setPrecharge          opcode = 0xD9
	setComPins            opcode = 0xDA
	setVCOMDeselect       opcode = 0xDB
)

// Command arguments.
const (
	memoryModeHorizontal = 0x00
	chargePumpEnable     = 0x14
	chargePumpDisable    = 0x10
	prechargeInternal    = 0xF1
	prechargeExternal    = 0x22
	comPinsAlternative   = 0x12
	comPinsSequential    = 0x02
	clockDivDefault      = 0x80
	vcomDeselect077      = 0x40
	contrastMax          = 0xFF
)

var opcodeNames = map[opcode]string{
	setMemoryMode:         "SetMemoryMode",
	setColumnAddr:         "SetColumnAddr",
	setPageAddr:           "SetPageAddr",
	setStartLine:          "SetStartLine",
	setContrast:           "SetContrast",
	setChargePump:         "SetChargePump",
	setSegmentRemap:       "SetSegmentRemap",
	setDisplayAllOnResume: "SetDisplayAllOnResume",
	setNormalDisplay:      "SetNormalDisplay",
	setInvertDisplay:      "SetInvertDisplay",
	setMultiplexRatio:     "SetMultiplexRatio",
	setDisplayOff:         "SetDisplayOff",
	setDisplayOn:          "SetDisplayOn",
	setComScanDec:         "SetComScanDec",
	setDisplayOffset:      "SetDisplayOffset",
	setDisplayClockDiv:    "SetDisplayClockDiv",
	setPrecharge:          "SetPrecharge",
	setComPins:            "SetComPins",
	setVCOMDeselect:       "SetVCOMDeselect",
}

func (op opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("opcode(%#02x)", byte(op))
}

// cmd is an opcode with its arguments.
type cmd struct {
	op   opcode
	args []byte
}

// encodeCommand frames op and its arguments as one [control, byte] unit each.
func encodeCommand(op opcode, args ...byte) ([][2]byte, error) {
	switch len(args) {
	case 0:
		return [][2]byte{
			{controlCommand, byte(op)},
		}, nil
	case 1:
		return [][2]byte{
			{controlCommand, byte(op)},
			{controlCommand, args[0]},
		}, nil
	case 2:
		return [][2]byte{
			{controlCommand, byte(op)},
			{controlCommand, args[0]},
			{controlCommand, args[1]},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s takes at most 2, got %d", ErrTooManyArgs, op, len(args))
	}
}

func commandError(op opcode, unit, units int, err error) error {
	return fmt.Errorf("ssd1306: %s: write %d/%d: %w", op, unit+1, units, err)
}

func dataError(n int, err error) error {
	return fmt.Errorf("ssd1306: write %d bytes of display data: %w", n, err)
}
