package draw

import (
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/ssd1306/glyph"
)

// Glyph draws the set bits of g with the top left corner at pt. Clear bits
// leave dst untouched.
func Glyph(dst Image, pt image.Point, g glyph.Glyph, c color.Color) {
	for col := 0; col < glyph.Width; col++ {
		for row := 0; row < glyph.Height; row++ {
			if g.Bit(col, row) {
				dst.Set(pt.X+col, pt.Y+row, c)
			}
		}
	}
}

// Char draws the 5x7 glyph for r with the top left corner at pt.
func Char(dst Image, pt image.Point, r rune, c color.Color) {
	Glyph(dst, pt, glyph.Lookup(r), c)
}

// Text draws s with the 5x7 font, advancing 6 pixels per rune. Text does not
// wrap; whatever falls outside of dst is clipped. It returns the origin of the
// next character.
func Text(dst Image, pt image.Point, s string, c color.Color) image.Point {
	for _, r := range s {
		Char(dst, pt, r, c)
		pt.X += glyph.Advance
	}
	return pt
}

// String draws s using face, with the baseline of the first character at dot.
func String(dst Image, face font.Face, dot image.Point, s string, c color.Color) image.Point {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(dot.X, dot.Y),
	}
	d.DrawString(s)
	return image.Pt(d.Dot.X.Round(), d.Dot.Y.Round())
}

// TrueTypeFace parses TrueType font data into a face of size points. The
// face is hinted to the pixel grid, which suits 1-bit displays best.
func TrueTypeFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
