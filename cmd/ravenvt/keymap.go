package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/javanhut/ravenvt/keys"
)

// translateKey maps a GLFW key code onto the toolkit-independent keys.Key
// enum. Letter keys are translated so Ctrl/Alt+letter can be encoded;
// keys.Encode returns nil for a plain letter, whose text arrives via the
// char callback (SetCharCallback) and is encoded with keys.EncodeRune.
// Digit and punctuation keys are not translated.
func translateKey(k glfw.Key) (keys.Key, bool) {
	switch k {
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return keys.KeyEnter, true
	case glfw.KeyBackspace:
		return keys.KeyBackspace, true
	case glfw.KeyTab:
		return keys.KeyTab, true
	case glfw.KeyEscape:
		return keys.KeyEscape, true
	case glfw.KeyUp:
		return keys.KeyUp, true
	case glfw.KeyDown:
		return keys.KeyDown, true
	case glfw.KeyLeft:
		return keys.KeyLeft, true
	case glfw.KeyRight:
		return keys.KeyRight, true
	case glfw.KeyHome:
		return keys.KeyHome, true
	case glfw.KeyEnd:
		return keys.KeyEnd, true
	case glfw.KeyPageUp:
		return keys.KeyPageUp, true
	case glfw.KeyPageDown:
		return keys.KeyPageDown, true
	case glfw.KeyInsert:
		return keys.KeyInsert, true
	case glfw.KeyDelete:
		return keys.KeyDelete, true
	case glfw.KeySpace:
		return keys.KeySpace, true
	case glfw.KeyF1:
		return keys.KeyF1, true
	case glfw.KeyF2:
		return keys.KeyF2, true
	case glfw.KeyF3:
		return keys.KeyF3, true
	case glfw.KeyF4:
		return keys.KeyF4, true
	case glfw.KeyF5:
		return keys.KeyF5, true
	case glfw.KeyF6:
		return keys.KeyF6, true
	case glfw.KeyF7:
		return keys.KeyF7, true
	case glfw.KeyF8:
		return keys.KeyF8, true
	case glfw.KeyF9:
		return keys.KeyF9, true
	case glfw.KeyF10:
		return keys.KeyF10, true
	case glfw.KeyF11:
		return keys.KeyF11, true
	case glfw.KeyF12:
		return keys.KeyF12, true
	}
	if k >= glfw.KeyA && k <= glfw.KeyZ {
		return keys.KeyLetterA + keys.Key(k-glfw.KeyA), true
	}
	return keys.KeyUnknown, false
}

func translateMods(mods glfw.ModifierKey) keys.Modifiers {
	var m keys.Modifiers
	if mods&glfw.ModShift != 0 {
		m |= keys.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= keys.ModControl
	}
	if mods&glfw.ModAlt != 0 {
		m |= keys.ModAlt
	}
	return m
}
