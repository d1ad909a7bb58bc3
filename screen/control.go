package screen

// control handles the single-byte C0 control codes: backspace, tab,
// line feed family, carriage return, and shift-in/shift-out charset
// selection.
func (e *Engine) control(b byte) {
	switch b {
	case 0x08: // BS
		e.moveCursor(0, -1)
	case 0x09: // HT
		e.tab()
	case 0x0a, 0x0b, 0x0c: // LF, VT, FF
		e.lineFeed()
	case 0x0d: // CR
		e.live().cur.col = 0
	case 0x0e: // SO
		e.activeG = 1
	case 0x0f: // SI
		e.activeG = 0
	}
}

func (e *Engine) tab() {
	b := e.live()
	next := ((b.cur.col / 8) + 1) * 8
	if next > b.g.Cols-1 {
		next = b.g.Cols - 1
	}
	b.cur.col = next
}

// lineFeed moves down one row, scrolling if at the bottom of the scroll
// region; the column is unchanged (xterm LF does not imply CR).
func (e *Engine) lineFeed() {
	b := e.live()
	if b.cur.row == b.scrollBottom {
		e.scrollUp(1)
	} else if b.cur.row < b.g.Rows-1 {
		b.cur.row++
	}
}

// moveCursor applies a relative motion, clamped to the live buffer's
// bounds (not the scroll region — CUU/CUD/BS etc. clamp to the full
// screen).
func (e *Engine) moveCursor(dRow, dCol int) {
	b := e.live()
	b.cur.row = clamp(b.cur.row+dRow, 0, b.g.Rows-1)
	b.cur.col = clamp(b.cur.col+dCol, 0, b.g.Cols-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
