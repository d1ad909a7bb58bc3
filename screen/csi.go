package screen

import "github.com/javanhut/ravenvt/parser"

// csiDispatch handles CSI sequences: DEC private modes, cursor motion,
// insert/delete character and line, erase-in-display/line, scrolling,
// repeat-last-char, cursor save/restore, scroll-region set, SGR, and DSR.
func (e *Engine) csiDispatch(d parser.CsiDispatch) {
	if d.Private {
		switch d.Final {
		case 'h':
			e.setDecMode(d.Params, true)
		case 'l':
			e.setDecMode(d.Params, false)
		}
		return
	}

	b := e.live()
	switch d.Final {
	case 'A': // CUU
		e.moveCursor(-parser.CsiCount(d.Params, 0), 0)
	case 'B': // CUD
		e.moveCursor(parser.CsiCount(d.Params, 0), 0)
	case 'C': // CUF
		e.moveCursor(0, parser.CsiCount(d.Params, 0))
	case 'D': // CUB
		e.moveCursor(0, -parser.CsiCount(d.Params, 0))
	case 'E': // CNL
		b.cur.col = 0
		e.moveCursor(parser.CsiCount(d.Params, 0), 0)
	case 'F': // CPL
		b.cur.col = 0
		e.moveCursor(-parser.CsiCount(d.Params, 0), 0)
	case 'G': // CHA
		b.cur.col = parser.CsiPosition(d.Params, 0, b.g.Cols-1)
	case 'd': // VPA
		b.cur.row = parser.CsiPosition(d.Params, 0, b.g.Rows-1)
	case 'H', 'f': // CUP
		b.cur.row = parser.CsiPosition(d.Params, 0, b.g.Rows-1)
		b.cur.col = parser.CsiPosition(d.Params, 1, b.g.Cols-1)
	case '@': // ICH
		b.g.ShiftRowRight(b.cur.row, b.cur.col, parser.CsiCount(d.Params, 0), e.blankCell())
	case 'P': // DCH
		b.g.ShiftRowLeft(b.cur.row, b.cur.col, parser.CsiCount(d.Params, 0), e.blankCell())
	case 'X': // ECH
		n := parser.CsiCount(d.Params, 0)
		end := min(b.cur.col+n, b.g.Cols) - 1
		b.g.FillRange(b.cur.row, b.cur.col, b.cur.row, end, e.blankCell())
	case 'J': // ED
		e.eraseInDisplay(int(parser.CsiParam(d.Params, 0, 0)))
	case 'K': // EL
		e.eraseInLine(int(parser.CsiParam(d.Params, 0, 0)))
	case 'L': // IL
		e.insertLines(b.cur.row, parser.CsiCount(d.Params, 0))
	case 'M': // DL
		e.deleteLines(b.cur.row, parser.CsiCount(d.Params, 0))
	case 'S': // SU
		e.scrollUp(parser.CsiCount(d.Params, 0))
	case 'T': // SD
		e.scrollDown(parser.CsiCount(d.Params, 0))
	case 'b': // REP
		e.repeatLast(parser.CsiCount(d.Params, 0))
	case 's': // SCOSC
		b.saved = b.cur
	case 'u': // SCORC
		b.cur.row = clamp(b.saved.row, 0, b.g.Rows-1)
		b.cur.col = clamp(b.saved.col, 0, b.g.Cols)
	case 'r': // DECSTBM
		e.setScrollRegion(int(parser.CsiParam(d.Params, 0, 1)), int(parser.CsiParam(d.Params, 1, uint16(b.g.Rows))))
	case 'm': // SGR
		e.sgr(d.Params)
	case 'n': // DSR
		e.deviceStatusReport(d.Params)
	}
}

// eraseInDisplay implements ED: 0 erases cursor->end, 1 erases
// start->cursor inclusive (not the whole screen), 2/3 erase everything.
func (e *Engine) eraseInDisplay(mode int) {
	b := e.live()
	switch mode {
	case 0:
		b.g.FillRange(b.cur.row, b.cur.col, b.g.Rows-1, b.g.Cols-1, e.blankCell())
	case 1:
		b.g.FillRange(0, 0, b.cur.row, b.cur.col, e.blankCell())
	case 2, 3:
		b.g.FillAll(e.blankCell())
	}
}

func (e *Engine) eraseInLine(mode int) {
	b := e.live()
	switch mode {
	case 0:
		b.g.FillRange(b.cur.row, b.cur.col, b.cur.row, b.g.Cols-1, e.blankCell())
	case 1:
		b.g.FillRange(b.cur.row, 0, b.cur.row, b.cur.col, e.blankCell())
	case 2:
		b.g.FillRow(b.cur.row, e.blankCell())
	}
}

func (e *Engine) setScrollRegion(top, bottom int) {
	b := e.live()
	t := clamp(top-1, 0, b.g.Rows-1)
	bm := bottom - 1
	if bm > b.g.Rows-1 {
		bm = b.g.Rows - 1
	}
	if t < bm {
		b.scrollTop = t
		b.scrollBottom = bm
	}
	b.cur.row, b.cur.col = 0, 0
}

func (e *Engine) repeatLast(n int) {
	for i := 0; i < n; i++ {
		e.print(e.lastChar)
	}
}

func (e *Engine) deviceStatusReport(params [][]uint16) {
	if e.respond == nil {
		return
	}
	switch parser.CsiParam(params, 0, 0) {
	case 5:
		e.respond([]byte("\x1b[0n"))
	case 6:
		b := e.live()
		e.respond([]byte(csiCursorPositionReport(b.cur.row+1, b.cur.col+1)))
	}
}
