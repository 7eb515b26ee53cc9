// Package draw provides drawing primitives for display images: lines, boxes
// and bitmap or TrueType text.
//
// All primitives work on any [image/draw.Image] and rely on its Set method for
// clipping, so pixels that fall outside of the image are silently dropped.
package draw

import (
	"image"
	"image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for [image/draw.Op].
type Op = draw.Op

// Src replaces the destination pixels with the source.
const Src = draw.Src

// Draw copies the part of src starting at sp into r on dst. Every pixel goes
// through the color model of dst, so on a 1-bit display colors are reduced to
// on and off by luminance.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	draw.Draw(dst, r, src, sp, op)
}
