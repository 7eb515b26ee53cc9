// Package glyph contains the 5x7 bitmap font used for text on monochrome displays.
//
// The table covers the printable ASCII range; every other rune maps to the
// Undefined glyph. The data is process wide and read-only.
package glyph

// Glyph geometry in pixels.
const (
	Width   = 5
	Height  = 7
	Advance = Width + 1 // one column of spacing between characters
)

// Printable range covered by the table.
const (
	First rune = 0x20
	Last  rune = 0x7e
)

// Glyph is a 5x7 bitmap stored as 5 columns; bit 0 of each column is the top row.
type Glyph [Width]byte

// Bit reports if the pixel at column col and row row is set.
func (g Glyph) Bit(col, row int) bool {
	if col < 0 || col >= Width || row < 0 || row >= Height {
		return false
	}
	return g[col]&(1<<uint(row)) != 0
}

// Lookup returns the glyph for r, or Undefined when r is not printable ASCII.
func Lookup(r rune) Glyph {
	if r < First || r > Last {
		return Undefined
	}
	return table[r-First]
}

// Defined reports if r has its own glyph.
func Defined(r rune) bool {
	return r >= First && r <= Last
}
