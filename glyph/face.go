package glyph

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	face     *basicfont.Face
	faceOnce sync.Once
)

// Face returns the glyph table as a font.Face, for use with font.Drawer.
//
// The face has an ascent of 7 and a descent of 1 pixel, so the top row of a
// glyph is drawn Height rows above the dot. Runes outside the table, as well
// as U+FFFD, render as Undefined.
func Face() font.Face {
	faceOnce.Do(func() {
		face = newFace()
	})
	return face
}

func newFace() *basicfont.Face {
	const stride = Height + 1 // ascent + descent

	var (
		count = len(table) + 1
		mask  = image.NewAlpha(image.Rect(0, 0, Width, count*stride))
	)
	plot := func(i int, g Glyph) {
		for col := 0; col < Width; col++ {
			for row := 0; row < Height; row++ {
				if g.Bit(col, row) {
					mask.SetAlpha(col, i*stride+row, color.Alpha{A: 0xff})
				}
			}
		}
	}
	for i, g := range table {
		plot(i, g)
	}
	plot(len(table), Undefined)

	return &basicfont.Face{
		Advance: Advance,
		Width:   Width,
		Height:  stride,
		Ascent:  Height,
		Descent: 1,
		Mask:    mask,
		Ranges: []basicfont.Range{
			{Low: First, High: Last + 1, Offset: 0},
			{Low: '\ufffd', High: '\ufffe', Offset: len(table)},
		},
	}
}
