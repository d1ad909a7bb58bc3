package screen

import "github.com/javanhut/ravenvt/grid"

// fullReset implements ESC c (RIS): clears both buffers (exiting
// alternate first), and resets SGR, palette, defaults, scroll region,
// saved cursors, and charset slots.
func (e *Engine) fullReset() {
	if e.inAlt {
		e.exitAlt(false)
	}
	cols, rows := e.primary.g.Cols, e.primary.g.Rows
	e.primary = e.newBuffer(cols, rows)
	e.alternate = nil
	e.altSavedValid = false

	e.fg, e.bg = grid.Default(), grid.Default()
	e.haveBase = false
	e.bold, e.underline, e.reverse, e.italic = false, false, false, false

	e.g0, e.g1 = grid.CharsetAscii, grid.CharsetAscii
	e.activeG = 0

	e.cursorVisible = true
	e.appKeypad = false

	e.palette = grid.Palette{}
	e.defaultFg = defaultFgRGB
	e.defaultBg = defaultBgRGB
	e.cursorColor = nil

	e.lastChar = ' '
}
