package redraw

import "src.conedit.dev/pkg/wcwidth"

// ScrollMargin is the number of columns kept between the cursor and either
// edge of the terminal when the line is scrolled. It is shrunk to half the
// usable width on narrow terminals.
const ScrollMargin = 15

// Snapshot is what the renderer needs to paint the line.
type Snapshot struct {
	Prompt string
	// Text of the line up to the first terminator. Empty when echo is off.
	Text string
	// Screen column of the cursor, after scrolling.
	CursorColumn int
	// Number of leading characters of Prompt+Text scrolled out of view.
	ScrollOffset int
	// Whether the line must be painted again.
	NeedsRepaint bool
	// Whether the host must move to a new row after painting.
	NeedsLineAdvance bool
}

// Render returns the visible part of Prompt+Text for a terminal of the given
// width, and the cursor column within it.
func (s Snapshot) Render(width int) (string, int) {
	rs := []rune(s.Prompt + s.Text)
	if s.ScrollOffset > 0 && s.ScrollOffset <= len(rs) {
		rs = rs[s.ScrollOffset:]
	}
	if width <= 1 {
		return string(rs), s.CursorColumn
	}
	return wcwidth.Trim(string(rs), width-1), s.CursorColumn
}

// scroll returns the scroll offset, in runes, and the cursor column after
// scrolling, for the line rs with the cursor before rs[cursor].
//
// The offset is 0 when the whole line fits. Otherwise it is the smallest one
// that either shows the end of the line or keeps the cursor at least margin
// columns from the right edge.
func scroll(rs []rune, cursor, width, margin int) (int, int) {
	usable := width - 1
	if width <= 1 || wcwidth.OfRunes(rs) <= usable {
		return 0, wcwidth.OfRunes(rs[:cursor])
	}
	cols := make([]int, len(rs)+1)
	for i, r := range rs {
		cols[i+1] = cols[i] + wcwidth.OfRune(r)
	}
	total, cursorCol := cols[len(rs)], cols[cursor]
	if margin > usable/2 {
		margin = usable / 2
	}
	for o := 0; o < cursor; o++ {
		if total-cols[o] <= usable || cursorCol-cols[o] <= usable-margin {
			return o, cursorCol - cols[o]
		}
	}
	return cursor, 0
}
