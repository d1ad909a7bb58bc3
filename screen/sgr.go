package screen

import "github.com/javanhut/ravenvt/grid"

// sgr applies a Select Graphic Rendition parameter sequence to the
// current text attributes, including the "bold brightens ANSI 0-7" rule:
// the engine tracks a base palette index for foreground separately from
// the effective color, so toggling bold can brighten a base index 0-7
// to 8-15 and toggling it off restores it.
func (e *Engine) sgr(params [][]uint16) {
	if len(params) == 0 {
		e.sgrReset()
		return
	}
	for i := 0; i < len(params); i++ {
		p := int(first(params[i]))
		switch {
		case p == 0:
			e.sgrReset()
		case p == 1:
			e.bold = true
			e.applyBoldBrighten()
		case p == 22:
			e.bold = false
			e.applyBoldBrighten()
		case p == 3:
			e.italic = true
		case p == 23:
			e.italic = false
		case p == 4:
			e.underline = true
		case p == 24:
			e.underline = false
		case p == 7:
			e.reverse = true
		case p == 27:
			e.reverse = false
		case p >= 30 && p <= 37:
			e.setBaseFg(uint8(p - 30))
		case p == 38:
			i = e.sgrExtendedColor(params, i, true)
		case p == 39:
			e.fg = grid.Default()
			e.haveBase = false
		case p >= 40 && p <= 47:
			e.bg = grid.PaletteIndex(uint8(p - 40))
		case p == 48:
			i = e.sgrExtendedColor(params, i, false)
		case p == 49:
			e.bg = grid.Default()
		case p >= 90 && p <= 97:
			e.setBaseFg(uint8(p - 90 + 8))
		case p >= 100 && p <= 107:
			e.bg = grid.PaletteIndex(uint8(p - 100 + 8))
		}
		// Unknown codes fall through and are skipped.
	}
}

func first(sub []uint16) uint16 {
	if len(sub) == 0 {
		return 0
	}
	return sub[0]
}

func (e *Engine) sgrReset() {
	e.fg = grid.Default()
	e.bg = grid.Default()
	e.bold, e.underline, e.reverse, e.italic = false, false, false, false
	e.haveBase = false
}

// setBaseFg records index as the base foreground and applies the
// bold-brighten rule on top of it.
func (e *Engine) setBaseFg(index uint8) {
	e.baseFg = grid.PaletteIndex(index)
	e.haveBase = true
	e.applyBoldBrighten()
}

// applyBoldBrighten recomputes the effective fg from the base fg and the
// current bold flag: a base palette index 0-7 brightens to 8-15 while
// bold is set.
func (e *Engine) applyBoldBrighten() {
	if !e.haveBase {
		return
	}
	idx := e.baseFg.Index
	if e.bold && idx < 8 {
		e.fg = grid.PaletteIndex(idx + 8)
		return
	}
	e.fg = e.baseFg
}

// sgrExtendedColor handles the 38/48 "extended color" parameter families:
// `38;5;N` / `48;5;N` (256-color) and `38;2;R;G;B` / `48;2;R;G;B`
// (true color). Each sub-parameter may also arrive colon-packed in a
// single position (e.g. `38:2:R:G:B`), which params[i] already carries as
// sub-parameters; both forms are accepted. Returns the new loop index i.
func (e *Engine) sgrExtendedColor(params [][]uint16, i int, isFg bool) int {
	sub := params[i]
	if len(sub) >= 3 && sub[1] == 5 {
		e.setExtended(isFg, grid.PaletteIndex(uint8(sub[2])))
		return i
	}
	if len(sub) >= 5 && sub[1] == 2 {
		e.setExtended(isFg, grid.TrueColor(uint8(sub[2]), uint8(sub[3]), uint8(sub[4])))
		return i
	}
	// Semicolon-separated form: 38;5;N or 38;2;R;G;B spread across
	// subsequent top-level params.
	if i+1 < len(params) && first(params[i+1]) == 5 && i+2 < len(params) {
		e.setExtended(isFg, grid.PaletteIndex(uint8(first(params[i+2]))))
		return i + 2
	}
	if i+1 < len(params) && first(params[i+1]) == 2 && i+4 < len(params) {
		e.setExtended(isFg, grid.TrueColor(uint8(first(params[i+2])), uint8(first(params[i+3])), uint8(first(params[i+4]))))
		return i + 4
	}
	return i
}

func (e *Engine) setExtended(isFg bool, c grid.Color) {
	if !isFg {
		e.bg = c
		return
	}
	if c.Kind == grid.ColorPalette {
		e.setBaseFg(c.Index)
		return
	}
	e.fg = c
	e.haveBase = false
}
