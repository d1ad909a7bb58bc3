package screen

import "github.com/javanhut/ravenvt/grid"

// Dimensions returns the live buffer's (cols, rows).
func (e *Engine) Dimensions() (cols, rows int) {
	b := e.live()
	return b.g.Cols, b.g.Rows
}

// CursorPosition returns the live cursor's (row, col), clamped to the
// buffer for display (the pending-wrap column is never shown past the
// last column).
func (e *Engine) CursorPosition() (row, col int) {
	b := e.live()
	c := b.cur.col
	if c >= b.g.Cols {
		c = b.g.Cols - 1
	}
	return b.cur.row, c
}

// Cell returns the cell at (row, col) in the live buffer.
func (e *Engine) Cell(row, col int) grid.Cell {
	return e.live().g.Cell(row, col)
}

// DefaultFg returns the engine's current default foreground color.
func (e *Engine) DefaultFg() grid.RGB { return e.defaultFg }

// DefaultBg returns the engine's current default background color.
func (e *Engine) DefaultBg() grid.RGB { return e.defaultBg }

// CursorColor returns the overridden cursor color, if OSC 12 set one.
func (e *Engine) CursorColor() (grid.RGB, bool) {
	if e.cursorColor == nil {
		return grid.RGB{}, false
	}
	return *e.cursorColor, true
}

// ResolveColor turns a Color attribute into a concrete RGB, resolving
// Default against the engine's current defaults and PaletteIndex against
// the engine's palette overrides / built-in xterm table.
func (e *Engine) ResolveColor(c grid.Color, isForeground bool) grid.RGB {
	switch c.Kind {
	case grid.ColorTrueColor:
		return grid.RGB{R: c.R, G: c.G, B: c.B}
	case grid.ColorPalette:
		return e.palette.Resolve(c.Index)
	default:
		if isForeground {
			return e.defaultFg
		}
		return e.defaultBg
	}
}

// MarkRendered is a no-op hook a renderer can call after drawing a frame;
// it exists for parity with the spec's §4.4 contract name. Engines here
// track dirtiness purely via the Changed() counter, which callers compare
// against their own last-seen value rather than having the engine track
// per-consumer state.
func (e *Engine) MarkRendered() {}
