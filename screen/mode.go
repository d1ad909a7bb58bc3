package screen

// setDecMode handles the DEC private modes this engine understands:
// cursor visibility (25), alternate screen (47, 1047), alternate screen
// with cursor save/restore (1049), and application cursor keys (1, DECCKM).
func (e *Engine) setDecMode(params [][]uint16, set bool) {
	for _, sub := range params {
		switch first(sub) {
		case 25:
			e.cursorVisible = set
		case 47, 1047:
			if set {
				e.enterAlt(false, false)
			} else {
				e.exitAlt(false)
			}
		case 1049:
			if set {
				e.enterAlt(true, true)
			} else {
				e.exitAlt(true)
			}
		case 1:
			e.appKeypad = set // DECCKM, tracked for the key encoder contract
		}
	}
}

// enterAlt switches the live buffer to the alternate screen, optionally
// saving the primary cursor and clearing the alternate buffer first.
func (e *Engine) enterAlt(saveCursor, clear bool) {
	if e.inAlt {
		return
	}
	if saveCursor {
		e.altSaved = e.primary.cur
		e.altSavedValid = true
	}
	if e.alternate == nil {
		e.alternate = e.newBuffer(e.primary.g.Cols, e.primary.g.Rows)
	}
	e.inAlt = true
	if clear {
		e.alternate.g.FillAll(e.blankCell())
	}
}

// exitAlt switches the live buffer back to the primary screen, optionally
// restoring the cursor position saved on entry.
func (e *Engine) exitAlt(restoreCursor bool) {
	if !e.inAlt {
		return
	}
	e.inAlt = false
	if restoreCursor && e.altSavedValid {
		e.primary.cur.row = clamp(e.altSaved.row, 0, e.primary.g.Rows-1)
		e.primary.cur.col = clamp(e.altSaved.col, 0, e.primary.g.Cols)
		e.altSavedValid = false
	}
}

// AppKeypad reports whether application cursor-key mode (DECCKM) is on,
// consulted by the key encoder to choose SS3 vs CSI arrow sequences.
func (e *Engine) AppKeypad() bool { return e.appKeypad }

// CursorVisible reports whether the text cursor should be drawn.
func (e *Engine) CursorVisible() bool { return e.cursorVisible }
