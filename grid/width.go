package grid

import (
	"unicode"

	"golang.org/x/text/width"
)

// RuneWidth returns the display width of a rune: 0 for combining marks and
// non-printables, 1 for normal characters, 2 for East-Asian wide/fullwidth
// characters.
func RuneWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if !unicode.IsPrint(r) {
		return 0
	}
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Mc, r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// StringWidth sums the display width of every rune in s.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}
