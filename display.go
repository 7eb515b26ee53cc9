// Package ssd1306 drives SSD1306 monochrome OLED displays over I²C.
//
// The driver keeps a page addressed frame buffer in memory. Drawing (pixels,
// lines, boxes and text) only touches that buffer; nothing is sent to the
// display until Refresh is called, which transfers the whole frame.
//
// Device control (contrast, invert, power) is sent immediately. A Display is
// not safe for concurrent use.
package ssd1306

import (
	"errors"
	"image"
	"image/color"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/ssd1306/internal/log"
)

// Errors
var (
	ErrGeometry    = errors.New("ssd1306: unsupported display geometry")
	ErrTooManyArgs = errors.New("ssd1306: too many command arguments")
	ErrClosed      = errors.New("ssd1306: display is closed")
)

// Display is an OLED display.
type Display interface {
	// Close the display driver.
	Close() error

	// Clear the display buffer.
	Clear()

	// At returns the color of the pixel at (x, y).
	At(x, y int) color.Color

	// Set the pixel color at (x, y).
	Set(x, y int, c color.Color)

	// Bounds is the display bounding box (dimensions).
	Bounds() image.Rectangle

	// ColorModel used by the display.
	ColorModel() color.Model

	// Show toggles the display on or off.
	Show(bool) error

	// SetContrast adjusts the contrast level.
	SetContrast(level uint8) error

	// SetInvert toggles inverted (black on white) output.
	SetInvert(bool) error

	// Refresh redraws the display.
	Refresh() error
}

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels, 1 to 255. Defaults to 128.
	Width int

	// Height of the display in pixels, a multiple of 8. Defaults to 64.
	Height int

	// ExternalVCC is set when the panel is powered externally; the internal
	// charge pump is used otherwise.
	ExternalVCC bool

	// Reset pin, optional. When set, the controller is reset before it is
	// initialized.
	Reset gpio.PinOut
}

type baseDisplay struct {
	c      Conn
	width  int
	height int
	closed bool
}

// command sends op with up to two arguments. Each byte goes out as its own
// two byte transaction behind a command control byte. The first failing
// transaction ends the command.
func (d *baseDisplay) command(op opcode, args ...byte) error {
	if d.closed {
		return ErrClosed
	}
	units, err := encodeCommand(op, args...)
	if err != nil {
		return err
	}
	if log.Enabled(log.LevelDebug) {
		log.Debug("ssd1306: command", "op", op, "args", args)
	}
	for i := range units {
		if _, err = d.c.Write(units[i][:]); err != nil {
			return commandError(op, i, len(units), err)
		}
	}
	return nil
}

func (d *baseDisplay) commands(commands ...cmd) (err error) {
	for _, c := range commands {
		if err = d.command(c.op, c.args...); err != nil {
			return
		}
	}
	return
}

// data sends a data transaction. p must start with room for the control
// byte, which is overwritten.
func (d *baseDisplay) data(p []byte) error {
	if d.closed {
		return ErrClosed
	}
	p[0] = controlData
	log.Debug("ssd1306: data", "bytes", len(p)-1)
	if _, err := d.c.Write(p); err != nil {
		return dataError(len(p)-1, err)
	}
	return nil
}
