// Package render is the renderer-facing adapter over a screen.Engine. It
// adds nothing to the engine's state; it exists so a GUI frontend (see
// cmd/ravenvt) can walk a frame as runs of cells sharing the same
// resolved colors and attributes. Colors are resolved once per cell while
// the frame is built, so the frontend does no palette lookups itself.
package render

import "github.com/javanhut/ravenvt/grid"

// Engine is the subset of screen.Engine's read-only surface a renderer
// needs. Declared locally (rather than importing screen.Engine
// directly) so render stays a thin adapter over the contract, not over
// the concrete type.
type Engine interface {
	Dimensions() (cols, rows int)
	CursorPosition() (row, col int)
	Cell(row, col int) grid.Cell
	DefaultFg() grid.RGB
	DefaultBg() grid.RGB
	CursorColor() (grid.RGB, bool)
	ResolveColor(c grid.Color, isForeground bool) grid.RGB
	Changed() uint64
}

// Run is a maximal span of cells on one row sharing the same resolved
// foreground, background, and attribute flags.
type Run struct {
	Row        int
	StartCol   int
	Glyphs     []string // one entry per non-continuation cell in the run, in column order
	Fg, Bg     grid.RGB
	Flags      grid.Flags
}

// Frame is a fully-resolved snapshot of every row, ready to hand to a
// glyph rasterizer without any further palette lookups.
type Frame struct {
	Cols, Rows  int
	CursorRow   int
	CursorCol   int
	CursorShown bool
	Runs        []Run
}

// Snapshot walks the engine's live grid row by row and coalesces
// consecutive cells with identical resolved attributes into Runs. Wide
// glyphs' continuation cells are skipped (their glyph was already
// emitted by the lead cell) so a renderer never double-draws a
// continuation cell.
func Snapshot(e Engine, cursorVisible bool) Frame {
	cols, rows := e.Dimensions()
	curRow, curCol := e.CursorPosition()

	f := Frame{Cols: cols, Rows: rows, CursorRow: curRow, CursorCol: curCol, CursorShown: cursorVisible}

	for row := 0; row < rows; row++ {
		var cur *Run
		for col := 0; col < cols; col++ {
			c := e.Cell(row, col)
			if c.Continuation {
				continue
			}
			fg, bg := resolveCellColors(e, c)

			if cur != nil && cur.Fg == fg && cur.Bg == bg && cur.Flags == c.Flags {
				cur.Glyphs = append(cur.Glyphs, glyphOf(c))
				continue
			}
			if cur != nil {
				f.Runs = append(f.Runs, *cur)
			}
			cur = &Run{Row: row, StartCol: col, Glyphs: []string{glyphOf(c)}, Fg: fg, Bg: bg, Flags: c.Flags}
		}
		if cur != nil {
			f.Runs = append(f.Runs, *cur)
		}
	}
	return f
}

func glyphOf(c grid.Cell) string {
	if c.Glyph == "" {
		return " "
	}
	return c.Glyph
}

// resolveCellColors resolves a cell's fg/bg attributes to concrete RGB,
// then applies the SGR "reverse video" swap.
func resolveCellColors(e Engine, c grid.Cell) (fg, bg grid.RGB) {
	fg = e.ResolveColor(c.Fg, true)
	bg = e.ResolveColor(c.Bg, false)
	if c.Flags&grid.FlagReverse != 0 {
		fg, bg = bg, fg
	}
	return fg, bg
}
