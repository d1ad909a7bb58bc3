// Package parser classifies a raw PTY byte stream into a sequence of
// actions (Print, Control, EscDispatch, CsiDispatch, OscDispatch) without
// holding any screen state, so it can be fed arbitrary chunk boundaries
// and resumes correctly across them.
package parser

// Action is the tagged-variant result of classifying one logical unit of
// the input byte stream.
type Action interface{ isAction() }

// Print is a decoded Unicode scalar ready to be placed on the grid.
type Print struct{ Char rune }

func (Print) isAction() {}

// Control is a C0 control byte (0x00-0x1F) that is not part of an escape
// sequence. DEL (0x7F) in ground state is dropped and never emitted.
type Control struct{ Byte byte }

func (Control) isAction() {}

// EscDispatch is ESC followed by optional intermediate bytes (0x20-0x2F)
// and a single final byte (0x30-0x7E).
type EscDispatch struct {
	Intermediates []byte
	Final         byte
}

func (EscDispatch) isAction() {}

// CsiDispatch is a full Control Sequence Introducer: `;`-separated
// parameters (each optionally `:`-separated into sub-parameters), any
// intermediate bytes, whether the first parameter byte was `?` (a DEC
// private sequence), and the final byte.
type CsiDispatch struct {
	Params        [][]uint16
	Intermediates []byte
	Private       bool
	Final         byte
}

func (CsiDispatch) isAction() {}

// OscDispatch is an Operating System Command body, split on `;`, with
// whether it was terminated by BEL (true) or ST (false).
type OscDispatch struct {
	Params         [][]byte
	BellTerminated bool
}

func (OscDispatch) isAction() {}

// CsiParam returns params[idx] with VT220 defaulting: an absent or
// sub-parameter-empty position, or a zero value, yields def. Multiple
// sub-parameters collapse to their first (colon-separated) component,
// which the parser already resolves at parse time.
func CsiParam(params [][]uint16, idx int, def uint16) uint16 {
	if idx < 0 || idx >= len(params) || len(params[idx]) == 0 {
		return def
	}
	v := params[idx][0]
	if v == 0 {
		return def
	}
	return v
}

// CsiCount returns max(1, param) — the VT220 "count" convention used by
// cursor-motion and insert/delete-style CSI finals.
func CsiCount(params [][]uint16, idx int) int {
	return int(CsiParam(params, idx, 1))
}

// CsiPosition returns clamp(param-1, 0, max) with a default of 1
// (so position 0) — the VT220 "absolute position" convention.
func CsiPosition(params [][]uint16, idx int, max int) int {
	p := int(CsiParam(params, idx, 1)) - 1
	if p < 0 {
		return 0
	}
	if p > max {
		return max
	}
	return p
}
