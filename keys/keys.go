// Package keys is a pure function from a UI key event plus modifiers to
// the bytes that should be written to the PTY. It has no dependency on
// any windowing toolkit — a GUI frontend (see cmd/ravenvt) maps its own
// platform key codes onto the Key enum below before calling Encode.
package keys

// Key identifies a logical key, independent of any particular windowing
// toolkit's key-code numbering.
type Key int

const (
	KeyUnknown Key = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeySpace
	// KeyLetterA..KeyLetterZ let the caller express Ctrl/Alt+letter
	// combinations without routing through the rune path (some toolkits
	// report a key code for these rather than a character).
	KeyLetterA
)

// letterIndex returns 0-25 for KeyLetterA+n, or -1 if key is not a letter.
func letterIndex(k Key) int {
	if k >= KeyLetterA && k < KeyLetterA+26 {
		return int(k - KeyLetterA)
	}
	return -1
}

// Modifiers is a bitset of held modifier keys at the time of the event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
)

func (m Modifiers) has(bit Modifiers) bool { return m&bit != 0 }

// fKeySeq is the xterm-compatible encoding for F5-F12 (F1-F4 use SS3,
// handled inline in Encode).
var fKeySeq = map[Key]string{
	KeyF5: "\x1b[15~", KeyF6: "\x1b[17~", KeyF7: "\x1b[18~", KeyF8: "\x1b[19~",
	KeyF9: "\x1b[20~", KeyF10: "\x1b[21~", KeyF11: "\x1b[23~", KeyF12: "\x1b[24~",
}

// Encode turns a named key (arrows, function keys, editing keys,
// Enter/Backspace/Tab/Escape, and Ctrl/Alt+letter) plus modifiers into
// the bytes to send to the PTY. appCursorKeys selects SS3 (true) vs CSI
// (false) sequences for the arrow keys, matching DECCKM (mode 1).
func Encode(k Key, mods Modifiers, appCursorKeys bool) []byte {
	if idx := letterIndex(k); idx >= 0 {
		if mods.has(ModControl) {
			return []byte{byte(idx + 1)} // Ctrl+A=0x01 .. Ctrl+Z=0x1A
		}
		if mods.has(ModAlt) {
			c := byte('a' + idx)
			if mods.has(ModShift) {
				c = byte('A' + idx)
			}
			return []byte{0x1b, c}
		}
		return nil // plain letters are handled via EncodeRune
	}

	switch k {
	case KeyEnter:
		return []byte{'\r'}
	case KeyBackspace:
		return []byte{0x7f}
	case KeyTab:
		if mods.has(ModShift) {
			return []byte("\x1b[Z")
		}
		return []byte{'\t'}
	case KeyEscape:
		return []byte{0x1b}
	case KeyUp:
		return arrow(appCursorKeys, 'A')
	case KeyDown:
		return arrow(appCursorKeys, 'B')
	case KeyRight:
		return arrow(appCursorKeys, 'C')
	case KeyLeft:
		return arrow(appCursorKeys, 'D')
	case KeyHome:
		return []byte("\x1b[H")
	case KeyEnd:
		return []byte("\x1b[F")
	case KeyPageUp:
		return []byte("\x1b[5~")
	case KeyPageDown:
		return []byte("\x1b[6~")
	case KeyInsert:
		return []byte("\x1b[2~")
	case KeyDelete:
		return []byte("\x1b[3~")
	case KeyF1:
		return []byte("\x1bOP")
	case KeyF2:
		return []byte("\x1bOQ")
	case KeyF3:
		return []byte("\x1bOR")
	case KeyF4:
		return []byte("\x1bOS")
	case KeySpace:
		if mods.has(ModControl) {
			return []byte{0}
		}
		return []byte{' '}
	}
	if seq, ok := fKeySeq[k]; ok {
		return []byte(seq)
	}
	return nil
}

func arrow(appCursorKeys bool, final byte) []byte {
	if appCursorKeys {
		return []byte{0x1b, 'O', final}
	}
	return []byte{0x1b, '[', final}
}

// EncodeRune encodes a printable character: plain UTF-8 of the
// character, or ESC-prefixed if Alt is held.
func EncodeRune(r rune, mods Modifiers) []byte {
	buf := make([]byte, 0, 5)
	if mods.has(ModAlt) {
		buf = append(buf, 0x1b)
	}
	return append(buf, []byte(string(r))...)
}
