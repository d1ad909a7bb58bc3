package render

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// BuildBasicAtlas builds an Atlas from the stdlib-adjacent 7x13 bitmap
// font, used when no TrueType/OpenType font path is configured. It
// covers only printable ASCII, since basicfont ships no wider glyph set.
func BuildBasicAtlas() *Atlas {
	face := basicfont.Face7x13
	const cellWidth, cellHeight = 7, 13

	size := 256
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	drawer := &font.Drawer{Dst: img, Src: image.White, Face: face}

	a := &Atlas{Image: img, CellWidth: cellWidth, CellHeight: cellHeight, glyphs: map[rune]Glyph{}, size: size}

	x, y := 0, cellHeight-3
	for c := rune(32); c <= 126; c++ {
		if x+cellWidth > size {
			x = 0
			y += cellHeight
		}
		drawer.Dot = fixed.P(x, y)
		drawer.DrawString(string(c))
		a.glyphs[c] = Glyph{
			U: float32(x) / float32(size), V: float32(y-cellHeight+3) / float32(size),
			UWidth: float32(cellWidth) / float32(size), VHeight: float32(cellHeight) / float32(size),
			PixelWidth: cellWidth, PixelHeight: cellHeight,
		}
		x += cellWidth
	}
	return a
}
