package ssd1306

import (
	"image"
	"image/color"

	"golang.org/x/image/font"

	"github.com/BeatGlow/ssd1306/draw"
	"github.com/BeatGlow/ssd1306/pixel"
)

// monoDisplay owns the frame buffer of a 1-bit display. Everything drawn here
// stays in memory until the frame is transferred.
type monoDisplay struct {
	baseDisplay
	buf *pixel.FrameBuffer

	// tx is the data transaction: one control byte followed by the frame.
	tx []byte
}

func (d *monoDisplay) init(width, height int) {
	d.width = width
	d.height = height
	d.buf = pixel.NewFrameBuffer(width, height)
	d.tx = make([]byte, 1+len(d.buf.Pix))
}

// frame returns the data transaction for the current frame buffer.
func (d *monoDisplay) frame() []byte {
	copy(d.tx[1:], d.buf.Pix)
	return d.tx
}

func (d *monoDisplay) Bounds() image.Rectangle {
	return d.buf.Bounds()
}

func (d *monoDisplay) ColorModel() color.Model {
	return d.buf.ColorModel()
}

func (d *monoDisplay) At(x, y int) color.Color {
	return d.buf.At(x, y)
}

func (d *monoDisplay) Set(x, y int, c color.Color) {
	d.buf.Set(x, y, c)
}

// Bytes returns the packed frame buffer, 8 vertical pixels per byte and one
// page of Width bytes after the other.
func (d *monoDisplay) Bytes() []byte {
	return d.buf.Bytes()
}

// Clear turns every pixel of the frame buffer off.
func (d *monoDisplay) Clear() {
	d.buf.Clear()
}

// SetPixel turns the pixel at (x, y) on. Coordinates outside of the display are ignored.
func (d *monoDisplay) SetPixel(x, y int) {
	d.buf.SetPixel(x, y)
}

// ClearPixel turns the pixel at (x, y) off. Coordinates outside of the display are ignored.
func (d *monoDisplay) ClearPixel(x, y int) {
	d.buf.ClearPixel(x, y)
}

// DrawLine draws a line from (x1, y1) to (x2, y2), both ends included. The
// pixels are turned on if set is true, off otherwise.
func (d *monoDisplay) DrawLine(x1, y1, x2, y2 int, set bool) {
	draw.Line(d.buf, image.Pt(x1, y1), image.Pt(x2, y2), pixel.Mono{On: set})
}

// DrawBox draws a box with the top left corner at (x, y), spanning columns x
// to x+w and rows y to y+h inclusive. A filled box is drawn as h+1 horizontal
// lines, an outline as its four edges.
func (d *monoDisplay) DrawBox(x, y, w, h int, filled, set bool) {
	var (
		rect = image.Rect(x, y, x+w+1, y+h+1)
		c    = pixel.Mono{On: set}
	)
	if filled {
		draw.Box(d.buf, rect, c)
	} else {
		draw.Rectangle(d.buf, rect, c)
	}
}

// DrawChar draws the 5x7 glyph of r with the top left corner at (x, y). Only
// the glyph's set bits are drawn. Runes outside of printable ASCII are drawn
// as the undefined glyph.
func (d *monoDisplay) DrawChar(x, y int, r rune, set bool) {
	draw.Char(d.buf, image.Pt(x, y), r, pixel.Mono{On: set})
}

// DrawText draws text left to right from (x, y), 6 pixels per rune. Text is
// not wrapped, characters past the edge are clipped.
func (d *monoDisplay) DrawText(x, y int, text string, set bool) {
	draw.Text(d.buf, image.Pt(x, y), text, pixel.Mono{On: set})
}

// DrawString draws text in any font face with the baseline starting at (x, y).
func (d *monoDisplay) DrawString(x, y int, face font.Face, text string, set bool) {
	draw.String(d.buf, face, image.Pt(x, y), text, pixel.Mono{On: set})
}

// Show toggles the display on or off.
func (d *monoDisplay) Show(show bool) error {
	if show {
		return d.command(setDisplayOn)
	}
	return d.command(setDisplayOff)
}

// SetContrast sets the contrast level, the full 0-255 range is valid.
func (d *monoDisplay) SetContrast(level uint8) error {
	return d.command(setContrast, level)
}

// SetInvert selects inverted (true) or normal (false) output.
func (d *monoDisplay) SetInvert(invert bool) error {
	if invert {
		return d.command(setInvertDisplay)
	}
	return d.command(setNormalDisplay)
}
