// Package wcwidth provides the display width of characters on a terminal.
//
// Widths come from go-runewidth with the East Asian ambiguous width treated
// as narrow, which is what most terminal emulators do. Individual runes can be
// overridden for terminals or fonts that disagree.
package wcwidth

import (
	"sync"

	"github.com/mattn/go-runewidth"
)

var cond = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

var (
	overrideMutex sync.RWMutex
	override      = map[rune]int{}
)

// OfRune returns the column width of a rune.
func OfRune(r rune) int {
	overrideMutex.RLock()
	w, ok := override[r]
	overrideMutex.RUnlock()
	if ok {
		return w
	}
	return cond.RuneWidth(r)
}

// Of returns the column width of a string, assuming no soft line breaks.
func Of(s string) int {
	w := 0
	for _, r := range s {
		w += OfRune(r)
	}
	return w
}

// OfRunes is like Of, but takes a rune slice.
func OfRunes(rs []rune) int {
	w := 0
	for _, r := range rs {
		w += OfRune(r)
	}
	return w
}

// Override overrides the column width of a rune to be a specific non-negative
// value. If w < 0, it removes the override.
func Override(r rune, w int) {
	if w < 0 {
		Unoverride(r)
		return
	}
	overrideMutex.Lock()
	defer overrideMutex.Unlock()
	override[r] = w
}

// Unoverride removes the column width override of a rune.
func Unoverride(r rune) {
	overrideMutex.Lock()
	defer overrideMutex.Unlock()
	delete(override, r)
}

// Trim trims the string s so that it uses no more than width columns.
func Trim(s string, width int) string {
	w := 0
	for i, r := range s {
		w += OfRune(r)
		if w > width {
			return s[:i]
		}
	}
	return s
}
