package grid

import "testing"

func TestNewGridIsBlank(t *testing.T) {
	g := New(4, 2, Default())
	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			c := g.Cell(row, col)
			if !c.IsBlank() {
				t.Fatalf("cell (%d,%d) not blank: %+v", row, col, c)
			}
		}
	}
}

func TestCellOutOfBoundsReadsBlankInsteadOfPanicking(t *testing.T) {
	g := New(4, 2, Default())
	c := g.Cell(-1, 99)
	if !c.IsBlank() {
		t.Fatalf("expected blank cell for out-of-bounds read, got %+v", c)
	}
}

func TestSetCellOutOfBoundsIsANoop(t *testing.T) {
	g := New(2, 2, Default())
	g.SetCell(10, 10, Cell{Glyph: "x", Width: 1})
	// Should not panic; nothing else to assert.
}

func TestFillRangeSingleRow(t *testing.T) {
	g := New(10, 1, Default())
	fill := Cell{Glyph: "#", Width: 1}
	g.FillRange(0, 2, 0, 5, fill)
	for col := 0; col < 10; col++ {
		got := g.Cell(0, col)
		want := col >= 2 && col <= 5
		if (got.Glyph == "#") != want {
			t.Fatalf("col %d: got glyph %q, want fill=%v", col, got.Glyph, want)
		}
	}
}

func TestFillRangeMultiRow(t *testing.T) {
	g := New(5, 3, Default())
	fill := Cell{Glyph: "#", Width: 1}
	g.FillRange(0, 3, 2, 1, fill)

	if g.Cell(0, 2).Glyph == "#" {
		t.Fatalf("row 0 col 2 should be untouched (before fromCol)")
	}
	if g.Cell(0, 3).Glyph != "#" {
		t.Fatalf("row 0 col 3 should be filled")
	}
	if g.Cell(1, 0).Glyph != "#" || g.Cell(1, 4).Glyph != "#" {
		t.Fatalf("middle row should be fully filled")
	}
	if g.Cell(2, 0).Glyph != "#" {
		t.Fatalf("row 2 col 0 should be filled (up to toCol)")
	}
	if g.Cell(2, 2).Glyph == "#" {
		t.Fatalf("row 2 col 2 should be untouched (after toCol)")
	}
}

func TestCopyRow(t *testing.T) {
	g := New(3, 2, Default())
	g.SetCell(0, 0, Cell{Glyph: "a", Width: 1})
	g.SetCell(0, 1, Cell{Glyph: "b", Width: 1})
	g.CopyRow(1, 0)
	if g.Cell(1, 0).Glyph != "a" || g.Cell(1, 1).Glyph != "b" {
		t.Fatalf("row not copied: %+v %+v", g.Cell(1, 0), g.Cell(1, 1))
	}
}

func TestShiftRowLeft(t *testing.T) {
	g := New(5, 1, Default())
	for col := 0; col < 5; col++ {
		g.SetCell(0, col, Cell{Glyph: string(rune('a' + col)), Width: 1})
	}
	blank := Cell{Glyph: " ", Width: 1}
	g.ShiftRowLeft(0, 1, 2, blank)
	// row was a b c d e; deleting 2 chars starting at col 1 -> a d e _ _
	want := []string{"a", "d", "e", " ", " "}
	for col, w := range want {
		if got := g.Cell(0, col).Glyph; got != w {
			t.Fatalf("col %d: got %q want %q", col, got, w)
		}
	}
}

func TestShiftRowRight(t *testing.T) {
	g := New(5, 1, Default())
	for col := 0; col < 5; col++ {
		g.SetCell(0, col, Cell{Glyph: string(rune('a' + col)), Width: 1})
	}
	blank := Cell{Glyph: " ", Width: 1}
	g.ShiftRowRight(0, 1, 2, blank)
	// a b c d e -> insert 2 blanks at col 1 -> a _ _ b c (d,e pushed off)
	want := []string{"a", " ", " ", "b", "c"}
	for col, w := range want {
		if got := g.Cell(0, col).Glyph; got != w {
			t.Fatalf("col %d: got %q want %q", col, got, w)
		}
	}
}

func TestResizeClearsContent(t *testing.T) {
	g := New(3, 3, Default())
	g.SetCell(1, 1, Cell{Glyph: "x", Width: 1})
	g.Resize(6, 2, Blank(Default()))
	if g.Cols != 6 || g.Rows != 2 {
		t.Fatalf("dims not updated: %dx%d", g.Cols, g.Rows)
	}
	if g.Cell(1, 1).Glyph == "x" {
		t.Fatalf("resize should not reflow old content")
	}
}

func TestPaletteResolveFallsBackToBuiltin(t *testing.T) {
	var p Palette
	rgb := p.Resolve(1)
	if rgb != (RGB{0xcd, 0x00, 0x00}) {
		t.Fatalf("unexpected builtin color for index 1: %+v", rgb)
	}
}

func TestPaletteSetOverridesAndResetRestores(t *testing.T) {
	var p Palette
	p.Set(1, RGB{1, 2, 3})
	if got := p.Resolve(1); got != (RGB{1, 2, 3}) {
		t.Fatalf("override not applied: %+v", got)
	}
	p.Reset(1)
	if got := p.Resolve(1); got != (RGB{0xcd, 0x00, 0x00}) {
		t.Fatalf("reset did not restore builtin: %+v", got)
	}
}

func TestPaletteResetAll(t *testing.T) {
	var p Palette
	p.Set(5, RGB{9, 9, 9})
	p.Set(200, RGB{8, 8, 8})
	p.ResetAll()
	if got := p.Resolve(5); got == (RGB{9, 9, 9}) {
		t.Fatalf("ResetAll should have cleared slot 5")
	}
	if got := p.Resolve(200); got == (RGB{8, 8, 8}) {
		t.Fatalf("ResetAll should have cleared slot 200")
	}
}

func TestBuiltinXterm256GrayscaleRamp(t *testing.T) {
	got := builtinXterm256(232)
	want := RGB{8, 8, 8}
	if got != want {
		t.Fatalf("index 232: got %+v want %+v", got, want)
	}
}

func TestRuneWidthWide(t *testing.T) {
	if RuneWidth('a') != 1 {
		t.Fatalf("expected ascii width 1")
	}
	if RuneWidth('中') != 2 { // CJK '中'
		t.Fatalf("expected wide CJK width 2, got %d", RuneWidth('中'))
	}
}

func TestStringWidth(t *testing.T) {
	if w := StringWidth("ab"); w != 2 {
		t.Fatalf("got %d want 2", w)
	}
}

func TestCharsetTranslateDecSpecial(t *testing.T) {
	if got := CharsetDecSpecial.Translate('q'); got != '─' {
		t.Fatalf("expected horizontal line for 'q', got %q", got)
	}
	if got := CharsetAscii.Translate('q'); got != 'q' {
		t.Fatalf("ascii charset should pass through unchanged")
	}
}

func TestDesignateCharset(t *testing.T) {
	if DesignateCharset('0') != CharsetDecSpecial {
		t.Fatalf("'0' should designate DEC special graphics")
	}
	if DesignateCharset('B') != CharsetAscii {
		t.Fatalf("'B' should designate ASCII")
	}
}
