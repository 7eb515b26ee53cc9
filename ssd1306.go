package ssd1306

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/ssd1306/internal/log"
	"github.com/BeatGlow/ssd1306/pixel"
)

const (
	ssd1306DefaultWidth  = 128
	ssd1306DefaultHeight = 64
	ssd1306MaxWidth      = 255
	ssd1306MaxHeight     = 256
	ssd1306ResetPulse    = 10 * time.Millisecond
)

// SSD1306 is a driver for the Solomon Systech SSD1306 OLED display.
type SSD1306 struct {
	monoDisplay
	externalVCC bool
}

// New sets up a frame buffer sized for the configured geometry and sends the
// initialization sequence to the display. When any of the commands fails the
// controller is left in an unknown state and an error is returned.
func New(conn Conn, config *Config) (*SSD1306, error) {
	if config == nil {
		config = new(Config)
	}
	if config.Width == 0 {
		config.Width = ssd1306DefaultWidth
	}
	if config.Height == 0 {
		config.Height = ssd1306DefaultHeight
	}
	if config.Width < 0 || config.Width > ssd1306MaxWidth ||
		config.Height < 0 || config.Height > ssd1306MaxHeight || config.Height%pixel.PageHeight != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGeometry, config.Width, config.Height)
	}

	d := &SSD1306{
		monoDisplay: monoDisplay{
			baseDisplay: baseDisplay{
				c: conn,
			},
		},
		externalVCC: config.ExternalVCC,
	}
	d.monoDisplay.init(config.Width, config.Height)

	if config.Reset != nil {
		if err := reset(config.Reset); err != nil {
			return nil, fmt.Errorf("ssd1306: reset: %w", err)
		}
	}

	if err := d.init(); err != nil {
		return nil, err
	}

	log.Debug("ssd1306: initialized", "display", d)
	return d, nil
}

func reset(pin gpio.PinOut) error {
	if err := pin.Out(gpio.Low); err != nil {
		return err
	}
	time.Sleep(ssd1306ResetPulse)
	if err := pin.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(ssd1306ResetPulse)
	return nil
}

func (d *SSD1306) String() string {
	return fmt.Sprintf("SSD1306 OLED %dx%d on %s", d.width, d.height, d.c)
}

// initSequence is the controller setup, in the order the controller expects
// it: the charge pump must be configured before the display is switched on.
func (d *SSD1306) initSequence() []cmd {
	var (
		chargePump = byte(chargePumpEnable)
		precharge  = byte(prechargeInternal)
		comPins    = byte(comPinsSequential)
	)
	if d.externalVCC {
		chargePump, precharge = chargePumpDisable, prechargeExternal
	}
	if d.height == 64 {
		comPins = comPinsAlternative
	}
	return []cmd{
		{op: setDisplayOff},
		{op: setDisplayClockDiv, args: []byte{clockDivDefault}},
		{op: setMultiplexRatio, args: []byte{byte(d.height - 1)}},
		{op: setDisplayOffset, args: []byte{0x00}},
		{op: setStartLine},
		{op: setChargePump, args: []byte{chargePump}},
		{op: setMemoryMode, args: []byte{memoryModeHorizontal}},
		{op: setSegmentRemap},
		{op: setComScanDec},
		{op: setComPins, args: []byte{comPins}},
		{op: setContrast, args: []byte{contrastMax}},
		{op: setPrecharge, args: []byte{precharge}},
		{op: setVCOMDeselect, args: []byte{vcomDeselect077}},
		{op: setDisplayAllOnResume},
		{op: setNormalDisplay},
		{op: setDisplayOn},
	}
}

func (d *SSD1306) init() error {
	return d.commands(d.initSequence()...)
}

// Refresh transfers the frame buffer to the display: the page and column
// address windows are set to the whole display, then all pixels follow in a
// single data transaction.
func (d *SSD1306) Refresh() (err error) {
	if err = d.commands(
		cmd{op: setPageAddr, args: []byte{0x00, byte(d.buf.Pages() - 1)}},
		cmd{op: setColumnAddr, args: []byte{0x00, byte(d.width - 1)}},
	); err != nil {
		return
	}
	return d.data(d.frame())
}

// Close switches the display off and closes the connection. Drawing is still
// possible afterwards, but anything that talks to the display fails with
// ErrClosed.
func (d *SSD1306) Close() error {
	if d.closed {
		return nil
	}
	if err := d.Show(false); err != nil {
		_ = d.c.Close()
		d.closed = true
		return err
	}
	d.closed = true
	return d.c.Close()
}

// Interface checks.
var (
	_ Display = (*SSD1306)(nil)
)
