package redraw

import (
	"strings"
	"testing"

	"src.conedit.dev/pkg/tt"
)

var Args = tt.Args

func TestScroll(t *testing.T) {
	long := []rune("> " + strings.Repeat("a", 30))
	wide := []rune("一二三四五六七八")
	tt.Test(t, scroll,
		// Fits.
		Args([]rune("> abc"), 5, 20, 15).Rets(0, 5),
		Args([]rune("> abc"), 2, 20, 15).Rets(0, 2),
		// Cursor near the start.
		Args(long, 2, 20, 15).Rets(0, 2),
		// Cursor at the end; the end of the line is shown.
		Args(long, 32, 20, 15).Rets(13, 19),
		Args(long, 25, 20, 15).Rets(13, 12),
		// Cursor in the middle; kept margin columns from the right edge.
		Args(long, 20, 20, 15).Rets(10, 10),
		Args(long, 20, 20, 4).Rets(5, 15),
		// Wide characters.
		Args(wide, 8, 10, 15).Rets(4, 8),
		Args(wide, 1, 10, 15).Rets(0, 2),
		// No room to scroll.
		Args(long, 32, 1, 15).Rets(0, 32),
		Args(long, 32, 0, 15).Rets(0, 32),
	)
}

func TestScroll_CursorAlwaysVisible(t *testing.T) {
	line := []rune("prompt> " + strings.Repeat("word ", 20))
	for width := 2; width < 40; width++ {
		for cursor := 0; cursor <= len(line); cursor++ {
			offset, col := scroll(line, cursor, width, ScrollMargin)
			if offset > cursor || col < 0 || col > width-1 {
				t.Errorf("scroll(width=%d, cursor=%d) -> (%d, %d)", width, cursor, offset, col)
			}
		}
	}
}

func TestSnapshot_Render(t *testing.T) {
	tt.Test(t, Snapshot.Render,
		Args(Snapshot{Prompt: "> ", Text: "abc", CursorColumn: 3}, 80).Rets("> abc", 3),
		Args(Snapshot{Prompt: "> ", Text: "abcdef", ScrollOffset: 3, CursorColumn: 2}, 4).
			Rets("bcd", 2),
		Args(Snapshot{Text: "一二三四", ScrollOffset: 1, CursorColumn: 0}, 6).
			Rets("二三", 0),
		Args(Snapshot{Text: "abc", CursorColumn: 1}, 1).Rets("abc", 1),
	)
}
