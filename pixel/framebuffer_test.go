package pixel

import (
	"bytes"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestNewFrameBuffer(t *testing.T) {
	tests := []struct {
		size  image.Point
		pages int
		bytes int
	}{
		{image.Point{}, 0, 0},
		{image.Pt(1, 1), 1, 1},
		{image.Pt(128, 32), 4, 512},
		{image.Pt(128, 64), 8, 1024},
		{image.Pt(255, 64), 8, 2040},
		{image.Pt(96, 12), 2, 192},
	}
	for _, test := range tests {
		t.Run(test.size.String(), func(it *testing.T) {
			p := NewFrameBuffer(test.size.X, test.size.Y)
			if v := p.Bounds().Size(); !v.Eq(test.size) {
				it.Errorf("expected size %s, got %s", test.size, v)
			}
			if v := p.Pages(); v != test.pages {
				it.Errorf("expected %d pages, got %d", test.pages, v)
			}
			if v := len(p.Bytes()); v != test.bytes {
				it.Errorf("expected %d bytes, got %d", test.bytes, v)
			}
			if p.ColorModel() != MonoModel {
				it.Errorf("expected mono color model")
			}
		})
	}
}

func TestFrameBufferLayout(t *testing.T) {
	p := NewFrameBuffer(128, 64)

	p.SetPixel(0, 0)
	p.SetPixel(3, 7)
	p.SetPixel(5, 8)
	p.SetPixel(127, 63)

	want := map[int]byte{
		0:       0x01,
		3:       0x80,
		128 + 5: 0x01,
		1023:    0x80,
	}
	for i, v := range p.Bytes() {
		if v != want[i] {
			t.Errorf("byte %d is %#02x, expected %#02x", i, v, want[i])
		}
	}
}

func TestFrameBufferBounds(t *testing.T) {
	p := NewFrameBuffer(128, 32)
	randomize(p)
	before := append([]byte(nil), p.Bytes()...)

	for _, pt := range []image.Point{
		{128, 0}, {0, 32}, {128, 32}, {255, 255}, {-1, 0}, {0, -1}, {1000, 5},
	} {
		p.SetPixel(pt.X, pt.Y)
		p.ClearPixel(pt.X, pt.Y)
		p.Set(pt.X, pt.Y, On)
		p.Set(pt.X, pt.Y, Off)
		if v := p.At(pt.X, pt.Y); v != color.Transparent {
			t.Errorf("pixel %s is %#+v, expected transparent", pt, v)
		}
		if p.Pixel(pt.X, pt.Y) {
			t.Errorf("pixel %s reported on", pt)
		}
	}

	if !bytes.Equal(before, p.Bytes()) {
		t.Fatal("out of bounds writes changed the buffer")
	}
}

func TestFrameBufferSetClearInverse(t *testing.T) {
	p := NewFrameBuffer(64, 48)
	randomize(p)

	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			before := append([]byte(nil), p.Bytes()...)
			was := p.Pixel(x, y)

			p.SetPixel(x, y)
			if !p.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) not set", x, y)
			}
			p.ClearPixel(x, y)
			if p.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) not cleared", x, y)
			}
			if was {
				p.SetPixel(x, y)
			}

			if !bytes.Equal(before, p.Bytes()) {
				t.Fatalf("pixel (%d,%d) round trip touched other bits", x, y)
			}
		}
	}
}

func TestFrameBufferDrawImage(t *testing.T) {
	p := NewFrameBuffer(32, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			c := testRandomColor()
			p.Set(x, y, c)
			if v := p.ColorModel().Convert(c); p.At(x, y) != v {
				t.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, p.At(x, y), v, c)
			}
		}
	}
}

func TestFrameBufferClear(t *testing.T) {
	p := NewFrameBuffer(128, 64)
	randomize(p)
	p.Clear()
	for i, v := range p.Bytes() {
		if v != 0 {
			t.Fatalf("byte %d is %#02x after clear", i, v)
		}
	}
}

func TestFrameBufferFill(t *testing.T) {
	p := NewFrameBuffer(16, 16)
	p.Fill(color.White)
	for i, v := range p.Bytes() {
		if v != 0xff {
			t.Fatalf("byte %d is %#02x after fill", i, v)
		}
	}
	p.Fill(Off)
	for i, v := range p.Bytes() {
		if v != 0x00 {
			t.Fatalf("byte %d is %#02x after fill", i, v)
		}
	}
}

func randomize(p *FrameBuffer) {
	for i := range p.Pix {
		p.Pix[i] = byte(rand.Intn(256))
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
