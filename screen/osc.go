package screen

import (
	"bytes"
	"net/url"
	"strconv"
	"strings"

	"github.com/javanhut/ravenvt/grid"
	"github.com/javanhut/ravenvt/parser"
)

// oscDispatch handles the Operating System Command sequences this engine
// understands: window/icon title (ignored), dynamic palette set/reset
// (4/104), default fg/bg/cursor color set/reset (10/11/12/110/111/112),
// and the current-working-directory report (7). "?" color queries are
// ignored; no reply is sent.
func (e *Engine) oscDispatch(d parser.OscDispatch) {
	if len(d.Params) == 0 {
		return
	}
	code := string(d.Params[0])
	switch code {
	case "0", "2":
		// window/icon title: boundary concern, ignored by the engine.
	case "4":
		e.oscSetPalette(d.Params[1:])
	case "10":
		if c, ok := e.oscParseColor(d.Params, 1); ok {
			e.defaultFg = c
		}
	case "11":
		if c, ok := e.oscParseColor(d.Params, 1); ok {
			e.defaultBg = c
		}
	case "12":
		if c, ok := e.oscParseColor(d.Params, 1); ok {
			e.cursorColor = &c
		}
	case "7":
		e.oscWorkingDir(d.Params)
	case "104":
		e.oscResetPalette(d.Params[1:])
	case "110":
		e.defaultFg = defaultFgRGB
	case "111":
		e.defaultBg = defaultBgRGB
	case "112":
		e.cursorColor = nil
	}
}

// oscSetPalette consumes repeated (index, spec) pairs: OSC 4;I;SPEC;I;SPEC...
func (e *Engine) oscSetPalette(rest [][]byte) {
	for i := 0; i+1 < len(rest); i += 2 {
		idx, err := strconv.Atoi(string(rest[i]))
		if err != nil || idx < 0 || idx > 255 {
			continue
		}
		spec := string(rest[i+1])
		if spec == "?" {
			continue
		}
		if c, ok := parseColorSpec(spec); ok {
			e.palette.Set(uint8(idx), c)
		}
	}
}

// oscResetPalette implements OSC 104: an empty param list resets every
// slot, otherwise each listed index is reset individually.
func (e *Engine) oscResetPalette(rest [][]byte) {
	if len(rest) == 0 || (len(rest) == 1 && len(rest[0]) == 0) {
		e.palette.ResetAll()
		return
	}
	for _, raw := range rest {
		idx, err := strconv.Atoi(string(raw))
		if err != nil || idx < 0 || idx > 255 {
			continue
		}
		e.palette.Reset(uint8(idx))
	}
}

func (e *Engine) oscParseColor(params [][]byte, idx int) (grid.RGB, bool) {
	if idx >= len(params) {
		return grid.RGB{}, false
	}
	spec := string(params[idx])
	if spec == "?" {
		return grid.RGB{}, false
	}
	return parseColorSpec(spec)
}

func (e *Engine) oscWorkingDir(params [][]byte) {
	if len(params) < 2 {
		return
	}
	value := string(bytes.Join(params[1:], []byte(";")))
	if strings.HasPrefix(value, "file://") {
		u, err := url.Parse(value)
		if err != nil || u.Path == "" {
			return
		}
		if p, err := url.PathUnescape(u.Path); err == nil {
			e.workingDir = p
		}
		return
	}
	if strings.HasPrefix(value, "/") {
		e.workingDir = value
	}
}

// parseColorSpec parses "rgb:RR/GG/BB" (1-4 hex digits per component,
// scaled to 8 bits) and "#RRGGBB"-style specs (multiples of 3 hex
// digits, one run per channel). A parse failure leaves the entry
// unchanged.
func parseColorSpec(spec string) (grid.RGB, bool) {
	if strings.HasPrefix(spec, "rgb:") {
		parts := strings.Split(spec[len("rgb:"):], "/")
		if len(parts) != 3 {
			return grid.RGB{}, false
		}
		r, ok1 := scaleHexComponent(parts[0])
		g, ok2 := scaleHexComponent(parts[1])
		b, ok3 := scaleHexComponent(parts[2])
		if !ok1 || !ok2 || !ok3 {
			return grid.RGB{}, false
		}
		return grid.RGB{R: r, G: g, B: b}, true
	}
	if strings.HasPrefix(spec, "#") {
		hex := spec[1:]
		if len(hex)%3 != 0 || len(hex) == 0 {
			return grid.RGB{}, false
		}
		n := len(hex) / 3
		r, ok1 := scaleHexComponent(hex[0:n])
		g, ok2 := scaleHexComponent(hex[n : 2*n])
		b, ok3 := scaleHexComponent(hex[2*n : 3*n])
		if !ok1 || !ok2 || !ok3 {
			return grid.RGB{}, false
		}
		return grid.RGB{R: r, G: g, B: b}, true
	}
	return grid.RGB{}, false
}

// scaleHexComponent parses 1-4 hex digits and scales the result to 8
// bits, matching xterm's "most significant digits count" convention.
func scaleHexComponent(hex string) (uint8, bool) {
	if len(hex) == 0 || len(hex) > 4 {
		return 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	bits := uint(len(hex) * 4)
	return scaleTo8Bit(uint32(v), bits), true
}

// scaleTo8Bit scales a value with `bits` significant bits to 8 bits: a
// wider value keeps its most-significant 8 bits, a narrower one is scaled
// up to the full range (xterm's own convention: "rgb:f/0/0" is full red
// regardless of whether other components use 1 or 4 digits).
func scaleTo8Bit(v uint32, bits uint) uint8 {
	if bits >= 8 {
		return uint8(v >> (bits - 8))
	}
	return uint8(v * 255 / (1<<bits - 1))
}
