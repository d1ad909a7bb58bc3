package screen

// Resize reports a no-op if the dimensions are unchanged; otherwise both
// buffers are reallocated blank at the new dimensions (content is not
// reflowed), the scroll region resets to the full new height, and
// cursors clamp into bounds. Zero or negative dimensions clamp to 1.
func (e *Engine) Resize(cols, rows int) bool {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols == e.primary.g.Cols && rows == e.primary.g.Rows {
		return false
	}

	e.primary.g.Resize(cols, rows, e.blankCell())
	e.primary.scrollTop, e.primary.scrollBottom = 0, rows-1
	e.primary.cur.row = clamp(e.primary.cur.row, 0, rows-1)
	e.primary.cur.col = clamp(e.primary.cur.col, 0, cols)

	if e.alternate != nil {
		e.alternate.g.Resize(cols, rows, e.blankCell())
		e.alternate.scrollTop, e.alternate.scrollBottom = 0, rows-1
		e.alternate.cur.row = clamp(e.alternate.cur.row, 0, rows-1)
		e.alternate.cur.col = clamp(e.alternate.cur.col, 0, cols)
	}

	e.touch()
	return true
}
