package screen

import "github.com/javanhut/ravenvt/grid"

// print writes a decoded rune to the live buffer: width 0 combines into
// the previous cell, width 1 writes (wrapping first if pending-wrap),
// width 2 writes a lead+continuation pair (wrapping first if it would
// not fit).
func (e *Engine) print(r rune) {
	b := e.live()
	w := grid.RuneWidth(r)
	r = e.charset().Translate(r)

	if w != 0 {
		e.lastChar = r
	}

	switch w {
	case 0:
		e.combine(r)
	case 1:
		e.wrapIfPending()
		e.blankWideNeighborAt(b.cur.row, b.cur.col)
		b.g.SetCell(b.cur.row, b.cur.col, grid.Cell{
			Glyph: string(r), Width: 1, Fg: e.fg, Bg: e.bg, Flags: e.currentFlags(),
		})
		b.cur.col++
	default: // wide glyph (w == 2, or wider scalars collapse to 2 here)
		if b.cur.col+2 > b.g.Cols {
			e.wrap()
		}
		e.blankWideNeighborAt(b.cur.row, b.cur.col)
		e.blankWideNeighborAt(b.cur.row, b.cur.col+1)
		b.g.SetCell(b.cur.row, b.cur.col, grid.Cell{
			Glyph: string(r), Width: 2, Fg: e.fg, Bg: e.bg, Flags: e.currentFlags(),
		})
		b.g.SetCell(b.cur.row, b.cur.col+1, grid.Cell{
			Glyph: "", Width: 1, Continuation: true, Fg: e.fg, Bg: e.bg, Flags: e.currentFlags(),
		})
		b.cur.col += 2
	}
}

// combine appends a zero-width rune to the glyph immediately left of the
// cursor, without moving the cursor. If there is no such cell (start of
// row), the rune is discarded.
func (e *Engine) combine(r rune) {
	b := e.live()
	col := b.cur.col - 1
	if col < 0 {
		return
	}
	c := b.g.Cell(b.cur.row, col)
	if c.Continuation {
		col--
		if col < 0 {
			return
		}
		c = b.g.Cell(b.cur.row, col)
	}
	c.Glyph += string(r)
	b.g.SetCell(b.cur.row, col, c)
}

// blankWideNeighborAt clears the other half of a wide glyph if (row, col)
// is either half of one, preserving the invariant that a continuation
// cell's left neighbor always has Width == 2.
func (e *Engine) blankWideNeighborAt(row, col int) {
	b := e.live()
	c := b.g.Cell(row, col)
	if c.Continuation {
		b.g.SetCell(row, col-1, e.blankCell())
		return
	}
	if c.Width == 2 {
		b.g.SetCell(row, col+1, e.blankCell())
	}
}

// wrapIfPending wraps to the next line if the cursor sits in the
// pending-wrap column (col == cols).
func (e *Engine) wrapIfPending() {
	b := e.live()
	if b.cur.col >= b.g.Cols {
		e.wrap()
	}
}

// wrap moves the cursor to the start of the next line, scrolling the
// scroll region if it was at the bottom.
func (e *Engine) wrap() {
	b := e.live()
	b.cur.col = 0
	if b.cur.row == b.scrollBottom {
		e.scrollUp(1)
	} else if b.cur.row < b.g.Rows-1 {
		b.cur.row++
	}
}

func (e *Engine) charset() grid.Charset {
	if e.activeG == 1 {
		return e.g1
	}
	return e.g0
}
