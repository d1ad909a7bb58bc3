package screen

import (
	"github.com/javanhut/ravenvt/grid"
	"github.com/javanhut/ravenvt/parser"
)

// escDispatch handles two-character ESC sequences: charset designation
// (ESC ( / ESC )), index/reverse-index/next-line motions, full reset
// (RIS), and cursor save/restore (DECSC/DECRC).
func (e *Engine) escDispatch(d parser.EscDispatch) {
	// Character-set designation: ESC ( X or ESC ) X.
	if len(d.Intermediates) == 1 && (d.Intermediates[0] == '(' || d.Intermediates[0] == ')') {
		cs := grid.DesignateCharset(d.Final)
		if d.Intermediates[0] == '(' {
			e.g0 = cs
		} else {
			e.g1 = cs
		}
		return
	}

	switch d.Final {
	case 'D': // IND
		e.lineFeed()
	case 'M': // RI — reverse index
		b := e.live()
		if b.cur.row == b.scrollTop {
			e.scrollDown(1)
		} else if b.cur.row > 0 {
			b.cur.row--
		}
	case 'E': // NEL
		e.lineFeed()
		e.live().cur.col = 0
	case 'c': // RIS
		e.fullReset()
	case '7': // DECSC
		b := e.live()
		b.saved = b.cur
	case '8': // DECRC
		b := e.live()
		b.cur.row = clamp(b.saved.row, 0, b.g.Rows-1)
		b.cur.col = clamp(b.saved.col, 0, b.g.Cols)
	}
}
