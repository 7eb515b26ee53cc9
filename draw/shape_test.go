package draw_test

import (
	"image"
	"math/rand"
	"testing"

	"github.com/BeatGlow/ssd1306/draw"
	"github.com/BeatGlow/ssd1306/pixel"
)

func TestLineEndpoints(t *testing.T) {
	tests := []struct {
		name string
		a, b image.Point
	}{
		{"point", image.Pt(5, 5), image.Pt(5, 5)},
		{"horizontal", image.Pt(0, 3), image.Pt(127, 3)},
		{"horizontal reversed", image.Pt(90, 3), image.Pt(10, 3)},
		{"vertical", image.Pt(7, 0), image.Pt(7, 63)},
		{"vertical reversed", image.Pt(7, 63), image.Pt(7, 0)},
		{"diagonal", image.Pt(0, 0), image.Pt(63, 63)},
		{"anti diagonal", image.Pt(0, 63), image.Pt(63, 0)},
		{"shallow", image.Pt(1, 2), image.Pt(120, 9)},
		{"steep", image.Pt(100, 60), image.Pt(95, 1)},
	}
	for i := 0; i < 64; i++ {
		tests = append(tests, struct {
			name string
			a, b image.Point
		}{
			"random",
			image.Pt(rand.Intn(128), rand.Intn(64)),
			image.Pt(rand.Intn(128), rand.Intn(64)),
		})
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			p := pixel.NewFrameBuffer(128, 64)
			draw.Line(p, test.a, test.b, pixel.On)
			if !p.Pixel(test.a.X, test.a.Y) {
				it.Errorf("start %s not set", test.a)
			}
			if !p.Pixel(test.b.X, test.b.Y) {
				it.Errorf("end %s not set", test.b)
			}

			var (
				d    = test.b.Sub(test.a)
				want = max(abs(d.X), abs(d.Y)) + 1
			)
			if n := count(p); n != want {
				it.Errorf("line %s-%s set %d pixels, expected %d", test.a, test.b, n, want)
			}
		})
	}
}

func TestLineStraight(t *testing.T) {
	p := pixel.NewFrameBuffer(32, 16)
	draw.Line(p, image.Pt(4, 9), image.Pt(20, 9), pixel.On)
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			if want := y == 9 && x >= 4 && x <= 20; p.Pixel(x, y) != want {
				t.Fatalf("pixel (%d,%d) is %t, expected %t", x, y, p.Pixel(x, y), want)
			}
		}
	}

	p.Clear()
	draw.Line(p, image.Pt(30, 15), image.Pt(30, 2), pixel.On)
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			if want := x == 30 && y >= 2; p.Pixel(x, y) != want {
				t.Fatalf("pixel (%d,%d) is %t, expected %t", x, y, p.Pixel(x, y), want)
			}
		}
	}
}

func TestLineClipped(t *testing.T) {
	p := pixel.NewFrameBuffer(32, 16)
	draw.Line(p, image.Pt(-10, 5), image.Pt(100, 5), pixel.On)
	if n := count(p); n != 32 {
		t.Errorf("expected 32 visible pixels, got %d", n)
	}
}

func TestLineClear(t *testing.T) {
	p := pixel.NewFrameBuffer(32, 16)
	p.Fill(pixel.On)
	draw.Line(p, image.Pt(0, 0), image.Pt(31, 15), pixel.Off)
	if p.Pixel(0, 0) || p.Pixel(31, 15) {
		t.Error("expected endpoints cleared")
	}
	if n := count(p); n != 32*16-32 {
		t.Errorf("expected %d pixels left, got %d", 32*16-32, n)
	}
}

func TestHorizontalVerticalLine(t *testing.T) {
	p := pixel.NewFrameBuffer(32, 16)
	draw.HorizontalLine(p, 2, 3, 10, pixel.On)
	if n := count(p); n != 10 {
		t.Errorf("expected 10 pixels, got %d", n)
	}
	if !p.Pixel(2, 3) || !p.Pixel(11, 3) || p.Pixel(12, 3) {
		t.Error("horizontal line has wrong extent")
	}

	p.Clear()
	draw.VerticalLine(p, 5, 1, 4, pixel.On)
	if n := count(p); n != 4 {
		t.Errorf("expected 4 pixels, got %d", n)
	}
	if !p.Pixel(5, 1) || !p.Pixel(5, 4) || p.Pixel(5, 5) {
		t.Error("vertical line has wrong extent")
	}

	p.Clear()
	draw.HorizontalLine(p, 2, 3, 0, pixel.On)
	draw.VerticalLine(p, 2, 3, -1, pixel.On)
	if n := count(p); n != 0 {
		t.Errorf("expected empty lines to draw nothing, got %d pixels", n)
	}
}

func TestRectangle(t *testing.T) {
	var (
		p    = pixel.NewFrameBuffer(128, 64)
		rect = image.Rect(10, 10, 31, 17)
	)
	draw.Rectangle(p, rect, pixel.On)
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			in := image.Pt(x, y).In(rect)
			edge := in && (x == 10 || x == 30 || y == 10 || y == 16)
			if p.Pixel(x, y) != edge {
				t.Fatalf("pixel (%d,%d) is %t, expected %t", x, y, p.Pixel(x, y), edge)
			}
		}
	}
}

func TestBox(t *testing.T) {
	var (
		p    = pixel.NewFrameBuffer(128, 64)
		rect = image.Rect(10, 10, 31, 17)
	)
	draw.Box(p, rect, pixel.On)
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			if in := image.Pt(x, y).In(rect); p.Pixel(x, y) != in {
				t.Fatalf("pixel (%d,%d) is %t, expected %t", x, y, p.Pixel(x, y), in)
			}
		}
	}

	draw.Box(p, rect, pixel.Off)
	if n := count(p); n != 0 {
		t.Errorf("expected cleared box, %d pixels left", n)
	}
}

func TestRoundedRectangle(t *testing.T) {
	var (
		p    = pixel.NewFrameBuffer(64, 32)
		rect = image.Rect(4, 4, 24, 14)
	)
	draw.RoundedRectangle(p, rect, 2, pixel.On)
	for _, pt := range []image.Point{{4, 4}, {23, 4}, {4, 13}, {23, 13}} {
		if p.Pixel(pt.X, pt.Y) {
			t.Errorf("corner %s should be rounded off", pt)
		}
	}
	for _, pt := range []image.Point{{14, 4}, {14, 13}, {4, 9}, {23, 9}, {4, 5}, {5, 4}, {23, 12}, {22, 13}} {
		if !p.Pixel(pt.X, pt.Y) {
			t.Errorf("outline pixel %s not set", pt)
		}
	}
	for y := 6; y < 12; y++ {
		for x := 6; x < 22; x++ {
			if p.Pixel(x, y) {
				t.Fatalf("interior pixel (%d,%d) set", x, y)
			}
		}
	}
}

func TestDraw(t *testing.T) {
	p := pixel.NewFrameBuffer(16, 16)
	draw.Draw(p, image.Rect(0, 0, 8, 8), image.NewUniform(pixel.On), image.Point{}, draw.Src)
	if n := count(p); n != 64 {
		t.Errorf("expected 64 pixels, got %d", n)
	}
}

func TestDrawGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 1))
	for x, y := range []uint8{0x00, 0x7f, 0x80, 0xff} {
		src.Pix[x] = y
	}

	p := pixel.NewFrameBuffer(8, 8)
	p.Fill(pixel.On)
	draw.Draw(p, image.Rect(2, 3, 6, 4), src, image.Point{}, draw.Src)
	for x, want := range []bool{false, false, true, true} {
		if got := p.Pixel(2+x, 3); got != want {
			t.Errorf("pixel (%d,3) is %t, expected %t", 2+x, got, want)
		}
	}
	if !p.Pixel(1, 3) || !p.Pixel(6, 3) {
		t.Error("expected pixels outside of the rectangle untouched")
	}
}

func count(p *pixel.FrameBuffer) (n int) {
	b := p.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if p.Pixel(x, y) {
				n++
			}
		}
	}
	return
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
