// Package screen is the terminal screen engine: it consumes the actions
// produced by package parser and mutates the live cell grid, cursor, SGR
// attribute state, scroll region, character-set slots, alternate-buffer
// state, and dynamic palette/colors.
package screen

import (
	"github.com/javanhut/ravenvt/grid"
	"github.com/javanhut/ravenvt/parser"
)

// cursor is a (row, col) pair. col may legally equal cols (the "pending
// wrap" column) after printing the last column of a line.
type cursor struct{ row, col int }

// buffer bundles one grid.Grid with the cursor/saved-cursor/scroll-region
// state that is private to it (charset slots are shared, on Engine), so that swapping primary<->alternate is a
// cheap pointer/field swap.
type buffer struct {
	g            *grid.Grid
	cur          cursor
	saved        cursor // DECSC/DECRC and CSI s/u share this slot
	scrollTop    int
	scrollBottom int
}

// Engine is the screen state machine. It is single-threaded and intended
// to be owned exclusively by the thread that calls Feed/Resize (the UI
// thread); it is not safe for concurrent use.
type Engine struct {
	parser *parser.Parser

	primary   *buffer
	alternate *buffer
	inAlt     bool

	altSaved      cursor
	altSavedValid bool

	fg, bg   grid.Color // current SGR effective colors
	baseFg   grid.Color // base palette fg before bold-brightening (valid when haveBase)
	haveBase bool
	bold     bool
	underline bool
	reverse   bool
	italic    bool

	g0, g1   grid.Charset
	activeG  int // 0 or 1

	cursorVisible bool
	appKeypad     bool

	palette    grid.Palette
	defaultFg  grid.RGB
	defaultBg  grid.RGB
	cursorColor *grid.RGB

	lastChar rune // last printed scalar, for REP (CSI b)

	workingDir string
	respond    func([]byte)

	seq uint64 // bumped on every state-changing action; drives dirty tracking
}

// defaultFgRGB and defaultBgRGB are xterm's own defaults (light gray on
// black), used until OSC 10/11 override them and restored by OSC 110/111.
var (
	defaultFgRGB = grid.RGB{R: 0xe5, G: 0xe5, B: 0xe5}
	defaultBgRGB = grid.RGB{R: 0x00, G: 0x00, B: 0x00}
)

// New creates an engine with a blank cols x rows primary buffer.
func New(cols, rows int) *Engine {
	e := &Engine{
		parser:        parser.New(),
		cursorVisible: true,
		defaultFg:     defaultFgRGB,
		defaultBg:     defaultBgRGB,
		fg:            grid.Default(),
		bg:            grid.Default(),
		lastChar:      ' ',
	}
	e.primary = e.newBuffer(cols, rows)
	return e
}

func (e *Engine) newBuffer(cols, rows int) *buffer {
	return &buffer{
		g:            grid.New(cols, rows, e.bg),
		scrollTop:    0,
		scrollBottom: rows - 1,
	}
}

func (e *Engine) live() *buffer {
	if e.inAlt {
		return e.alternate
	}
	return e.primary
}

// Feed parses data and applies every resulting action to the grid. Safe
// to call repeatedly with arbitrarily-split chunks of a byte stream.
func (e *Engine) Feed(data []byte) {
	e.parser.Parse(data, e.apply)
}

// SetResponseWriter installs the callback used to answer DSR queries
// (CSI 5n / 6n); typically wired to the PTY write pump.
func (e *Engine) SetResponseWriter(w func([]byte)) { e.respond = w }

// WorkingDir returns the last path reported via OSC 7.
func (e *Engine) WorkingDir() string { return e.workingDir }

// Changed returns a monotonically increasing counter bumped on every
// action that can affect what is on screen. Renderers compare it against
// the value captured at their last draw via HasChangesSince.
func (e *Engine) Changed() uint64 { return e.seq }

// HasChangesSince reports whether the engine has changed since seq.
func (e *Engine) HasChangesSince(seq uint64) bool { return e.seq != seq }

func (e *Engine) touch() { e.seq++ }

func (e *Engine) apply(a parser.Action) {
	switch v := a.(type) {
	case parser.Print:
		e.touch()
		e.print(v.Char)
	case parser.Control:
		e.touch()
		e.control(v.Byte)
	case parser.EscDispatch:
		e.touch()
		e.escDispatch(v)
	case parser.CsiDispatch:
		e.touch()
		e.csiDispatch(v)
	case parser.OscDispatch:
		e.touch()
		e.oscDispatch(v)
	}
}

func (e *Engine) currentFlags() grid.Flags {
	var f grid.Flags
	if e.bold {
		f |= grid.FlagBold
	}
	if e.underline {
		f |= grid.FlagUnderline
	}
	if e.reverse {
		f |= grid.FlagReverse
	}
	if e.italic {
		f |= grid.FlagItalic
	}
	return f
}

func (e *Engine) blankCell() grid.Cell {
	return grid.Cell{Glyph: " ", Width: 1, Fg: grid.Default(), Bg: e.bg}
}
