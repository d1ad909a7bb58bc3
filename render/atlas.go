package render

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph describes one cached glyph's position in the atlas texture, in
// normalized [0,1] UV coordinates plus its pixel footprint.
type Glyph struct {
	U, V          float32
	UWidth, VHeight float32
	PixelWidth    int
	PixelHeight   int
}

// Atlas is a single-texture glyph cache covering ASCII, Latin-1, and the
// box-drawing/block-element ranges, which hold the line-drawing glyphs of
// the DEC special graphics charset (grid.CharsetDecSpecial), built once at
// startup. That charset's other symbols (diamond, control pictures, scan
// lines, math signs) lie outside these ranges and are not in the atlas.
type Atlas struct {
	Image      *image.RGBA
	CellWidth  int
	CellHeight int
	glyphs     map[rune]Glyph
	size       int
}

var atlasCharRanges = []struct{ start, end rune }{
	{32, 126},        // printable ASCII
	{160, 255},       // Latin-1 supplement
	{0x2500, 0x257F}, // box drawing
	{0x2580, 0x259F}, // block elements
}

// BuildAtlas parses fontData (TTF/OTF bytes) at the given point size and
// rasterizes the covered glyph ranges into a single RGBA atlas texture.
func BuildAtlas(fontData []byte, pointSize float64) (*Atlas, error) {
	if pointSize <= 0 {
		pointSize = 14
	}
	parsed, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    pointSize,
		DPI:     96,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("render: create font face: %w", err)
	}
	defer face.Close()

	metrics := face.Metrics()
	cellHeight := metrics.Ascent.Ceil() + metrics.Descent.Ceil()
	advance, _ := face.GlyphAdvance('M')
	cellWidth := advance.Ceil()
	if cellWidth <= 0 {
		cellWidth = cellHeight / 2
	}

	size := 1024
	atlasImg := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(atlasImg, atlasImg.Bounds(), image.Transparent, image.Point{}, draw.Src)

	drawer := &font.Drawer{Dst: atlasImg, Src: image.White, Face: face}

	a := &Atlas{Image: atlasImg, CellWidth: cellWidth, CellHeight: cellHeight, glyphs: map[rune]Glyph{}, size: size}

	x, y := 0, metrics.Ascent.Ceil()
	for _, cr := range atlasCharRanges {
		for c := cr.start; c <= cr.end; c++ {
			if x+cellWidth > size {
				x = 0
				y += cellHeight
			}
			if y+cellHeight > size {
				break
			}
			if _, ok := face.GlyphAdvance(c); !ok {
				continue
			}
			drawer.Dot = fixed.P(x, y)
			drawer.DrawString(string(c))

			a.glyphs[c] = Glyph{
				U: float32(x) / float32(size),
				V: float32(y-metrics.Ascent.Ceil()) / float32(size),
				UWidth: float32(cellWidth) / float32(size),
				VHeight: float32(cellHeight) / float32(size),
				PixelWidth:  cellWidth,
				PixelHeight: cellHeight,
			}
			x += cellWidth
		}
	}
	return a, nil
}

// Lookup returns the glyph for r and whether it was found in the atlas.
func (a *Atlas) Lookup(r rune) (Glyph, bool) {
	g, ok := a.glyphs[r]
	return g, ok
}
