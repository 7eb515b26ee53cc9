package pixel

import (
	"image"
	"image/color"

	"github.com/BeatGlow/ssd1306/draw"
)

// PageHeight is the number of pixel rows packed in one frame buffer byte.
const PageHeight = 8

// Image is a draw.Image that can be cleared and filled.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pages.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

// Clear zeroes every byte of the buffer.
func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// Bytes returns the packed pixels. The slice shares storage with the buffer.
func (p *Buffer) Bytes() []byte {
	return p.Pix
}

// FrameBuffer is a 1-bit per pixel monochrome image laid out in pages.
//
// Every byte holds a column of 8 vertically stacked pixels, least significant
// bit on top: bit b of the byte at (x, page) is the pixel at (x, page*8+b).
// Pages follow each other, so a page is Stride (the width) bytes long. This is
// the GDDRAM layout of SSD1306 controllers in horizontal addressing mode.
//
// Pixels outside of the bounds are silently ignored by every method.
type FrameBuffer struct {
	Buffer
}

// NewFrameBuffer allocates a cleared frame buffer of w by h pixels. The height
// is rounded up to whole pages.
func NewFrameBuffer(w, h int) *FrameBuffer {
	pages := (h + PageHeight - 1) / PageHeight
	return &FrameBuffer{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    make([]byte, pages*w),
			Stride: w,
		},
	}
}

// Pages is the number of 8 pixel high pages.
func (p *FrameBuffer) Pages() int {
	if p.Stride == 0 {
		return 0
	}
	return len(p.Pix) / p.Stride
}

func (p *FrameBuffer) ColorModel() color.Model {
	return MonoModel
}

// PixOffset returns the index of the byte holding pixel (x, y) and the mask
// of its bit.
func (p *FrameBuffer) PixOffset(x, y int) (int, byte) {
	return y/PageHeight*p.Stride + x, byte(1) << uint(y&(PageHeight-1))
}

// SetPixel turns the pixel at (x, y) on.
func (p *FrameBuffer) SetPixel(x, y int) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	pos, bit := p.PixOffset(x, y)
	p.Pix[pos] |= bit
}

// ClearPixel turns the pixel at (x, y) off.
func (p *FrameBuffer) ClearPixel(x, y int) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	pos, bit := p.PixOffset(x, y)
	p.Pix[pos] &^= bit
}

// Pixel reports if the pixel at (x, y) is on.
func (p *FrameBuffer) Pixel(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return false
	}
	pos, bit := p.PixOffset(x, y)
	return p.Pix[pos]&bit != 0
}

func (p *FrameBuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return Mono{On: p.Pixel(x, y)}
}

func (p *FrameBuffer) Set(x, y int, c color.Color) {
	if monoModel(c).(Mono).On {
		p.SetPixel(x, y)
	} else {
		p.ClearPixel(x, y)
	}
}

func (p *FrameBuffer) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// Interface checks.
var (
	_ Image = (*FrameBuffer)(nil)
)
