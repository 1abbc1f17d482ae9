package model

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"

	"src.conedit.dev/pkg/cli/action"
	"src.conedit.dev/pkg/cli/complete"
	"src.conedit.dev/pkg/cli/histutil"
)

func feed(m *ConsoleModel, s string) {
	for _, r := range s {
		if r == Terminator {
			m.Apply(action.Of(action.Submit))
		} else {
			m.Apply(action.Insert(r))
		}
	}
}

func apply(m *ConsoleModel, types ...action.Type) {
	for _, t := range types {
		m.Apply(action.Of(t))
	}
}

func modelWith(s string, cursor int) *ConsoleModel {
	m := New(Spec{Prompt: "> "})
	feed(m, s)
	m.buf.MoveTo(cursor)
	return m
}

func checkLine(t *testing.T, m *ConsoleModel, want string, wantCursor int) {
	t.Helper()
	if got := string(m.Text()); got != want || m.Cursor() != wantCursor {
		t.Errorf("got (%q, %d), want (%q, %d)", got, m.Cursor(), want, wantCursor)
	}
}

func TestInsertSequence(t *testing.T) {
	f := func(s string) bool {
		s = strings.ReplaceAll(s, string(Terminator), "")
		m := New(Spec{})
		feed(m, s)
		return string(m.Text()) == s && m.Cursor() == len([]rune(s))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestCursorMotionStaysInRange(t *testing.T) {
	f := func(s string, start int8, moves []bool) bool {
		m := modelWith(strings.ReplaceAll(s, string(Terminator), ""), int(start))
		for _, left := range moves {
			if left {
				apply(m, action.CursorLeft)
			} else {
				apply(m, action.CursorRight)
			}
			if m.Cursor() < 0 || m.Cursor() > len(m.Text()) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestCursorMotion(t *testing.T) {
	m := modelWith("foo bar", 7)
	apply(m, action.CursorLeft)
	checkLine(t, m, "foo bar", 6)
	apply(m, action.CursorStart, action.CursorLeft)
	checkLine(t, m, "foo bar", 0)
	apply(m, action.CursorRight)
	checkLine(t, m, "foo bar", 1)
	apply(m, action.CursorEnd, action.CursorRight)
	checkLine(t, m, "foo bar", 7)
	apply(m, action.WordLeft)
	checkLine(t, m, "foo bar", 4)
	apply(m, action.WordLeft, action.WordLeft)
	checkLine(t, m, "foo bar", 0)
	apply(m, action.WordRight)
	checkLine(t, m, "foo bar", 3)
	apply(m, action.WordRight)
	checkLine(t, m, "foo bar", 4)
}

func TestWordLeft_SingleWord(t *testing.T) {
	m := modelWith("abc", 3)
	apply(m, action.WordLeft)
	checkLine(t, m, "abc", 0)
}

func TestDelete(t *testing.T) {
	m := modelWith("foo bar baz", 8)
	apply(m, action.DeleteCharLeft)
	checkLine(t, m, "foo barbaz", 7)
	apply(m, action.DeleteCharRight)
	checkLine(t, m, "foo baraz", 7)
	apply(m, action.DeleteWordLeft)
	checkLine(t, m, "foo az", 4)
	apply(m, action.DeleteWordRight)
	checkLine(t, m, "foo ", 4)
	apply(m, action.DeleteCharRight, action.DeleteWordRight)
	checkLine(t, m, "foo ", 4)
	apply(m, action.ClearLine)
	checkLine(t, m, "", 0)
	apply(m, action.DeleteCharLeft, action.DeleteWordLeft)
	checkLine(t, m, "", 0)
}

func TestDeleteWordRoundTrip(t *testing.T) {
	f := func(s string, pos uint8, right bool) bool {
		s = strings.ReplaceAll(s, string(Terminator), "")
		m := modelWith(s, int(pos)%(len([]rune(s))+1))
		before := string(m.Text())
		cursor := m.Cursor()
		var deleted string
		if right {
			deleted = string(m.Text()[cursor:wordRight(m.Text(), cursor)])
			apply(m, action.DeleteWordRight)
		} else {
			deleted = string(m.Text()[wordLeft(m.Text(), cursor):cursor])
			apply(m, action.DeleteWordLeft)
		}
		feed(m, deleted)
		return string(m.Text()) == before
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestCompletedLine(t *testing.T) {
	m := New(Spec{Prompt: "> "})
	feed(m, "Hi")
	apply(m, action.Submit)
	if !m.NeedsLineAdvance() {
		t.Errorf("NeedsLineAdvance -> false after Submit")
	}

	line, ok := m.CheckForCompletedLine()
	if line != "Hi" || !ok {
		t.Errorf("CheckForCompletedLine -> (%q, %v), want (\"Hi\", true)", line, ok)
	}
	checkLine(t, m, "", 0)
	if diff := cmp.Diff([]string{"Hi"}, m.History().Entries()); diff != "" {
		t.Errorf("history (-want +got):\n%s", diff)
	}

	if _, ok := m.CheckForCompletedLine(); ok {
		t.Errorf("CheckForCompletedLine -> ok with no submitted line")
	}
}

func TestCompletedLine_SubmitFromMiddle(t *testing.T) {
	m := modelWith("hello", 2)
	apply(m, action.Submit)
	checkLine(t, m, "hello\r", 6)
	line, _ := m.CheckForCompletedLine()
	if line != "hello" {
		t.Errorf("got %q, want \"hello\"", line)
	}
}

func TestCompletedLine_Paste(t *testing.T) {
	m := New(Spec{})
	feed(m, "foo\rbar\r")

	m.ClearLineAdvance()
	line, ok := m.CheckForCompletedLine()
	if line != "foo" || !ok {
		t.Errorf("first line -> (%q, %v), want (\"foo\", true)", line, ok)
	}
	if !m.NeedsLineAdvance() {
		t.Errorf("NeedsLineAdvance -> false with a queued line")
	}

	m.ClearLineAdvance()
	line, ok = m.CheckForCompletedLine()
	if line != "bar" || !ok {
		t.Errorf("second line -> (%q, %v), want (\"bar\", true)", line, ok)
	}
	if m.NeedsLineAdvance() {
		t.Errorf("NeedsLineAdvance -> true with no queued line")
	}
	checkLine(t, m, "", 0)
	if diff := cmp.Diff([]string{"bar", "foo"}, m.History().Entries()); diff != "" {
		t.Errorf("history (-want +got):\n%s", diff)
	}
}

func TestTypeAheadLeavesSubmittedLine(t *testing.T) {
	tests := []struct {
		name     string
		after    func(m *ConsoleModel)
		wantRest string
	}{
		{"HistoryUp", func(m *ConsoleModel) { apply(m, action.HistoryUp) }, "old"},
		{"HistoryStart", func(m *ConsoleModel) { apply(m, action.HistoryStart) }, "old"},
		{"ClearLine", func(m *ConsoleModel) { apply(m, action.ClearLine) }, ""},
		{"CursorStart and insert", func(m *ConsoleModel) {
			apply(m, action.CursorStart)
			feed(m, "x")
		}, "x"},
		{"Cursor motion", func(m *ConsoleModel) {
			apply(m, action.CursorLeft, action.WordLeft, action.DeleteCharLeft,
				action.DeleteWordLeft)
			feed(m, "y")
		}, "y"},
		{"DeleteCharLeft", func(m *ConsoleModel) { apply(m, action.DeleteCharLeft) }, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := New(Spec{History: histutil.New(10, nil)})
			m.History().Record("old")
			feed(m, "ls\r")
			test.after(m)

			line, ok := m.CheckForCompletedLine()
			if line != "ls" || !ok {
				t.Errorf("got (%q, %v), want (\"ls\", true)", line, ok)
			}
			if got := string(m.Text()); got != test.wantRest {
				t.Errorf("remaining text %q, want %q", got, test.wantRest)
			}
		})
	}
}

func TestTypeAheadNeverChangesSubmittedLine(t *testing.T) {
	f := func(s string, ops []uint8) bool {
		s = strings.ReplaceAll(s, string(Terminator), "")
		hist := histutil.New(10, nil)
		hist.Record("old")
		m := New(Spec{History: hist, Completer: complete.NewWordProvider("alpha")})
		feed(m, s+"\r")
		for _, op := range ops {
			// Everything but Submit, with InsertChar inserting 'a'.
			typ := action.Type(op % uint8(action.Submit))
			if typ == action.InsertChar {
				m.Apply(action.Insert('a'))
			} else {
				m.Apply(action.Of(typ))
			}
		}
		line, ok := m.CheckForCompletedLine()
		return ok && line == s
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestTypeAheadAutocomplete(t *testing.T) {
	m := New(Spec{Completer: complete.NewWordProvider("help")})
	feed(m, "x\rh")
	apply(m, action.AutoCompleteForward)
	checkLine(t, m, "x\rhelp", 6)
	line, _ := m.CheckForCompletedLine()
	if line != "x" {
		t.Errorf("got %q, want \"x\"", line)
	}
	checkLine(t, m, "help", 4)
}

func TestTypeAheadKeepsCursor(t *testing.T) {
	m := New(Spec{})
	feed(m, "a\rx")
	m.CheckForCompletedLine()
	checkLine(t, m, "x", 1)
	feed(m, "y")
	checkLine(t, m, "xy", 2)
}

func TestRecalledThenTypeAhead(t *testing.T) {
	hist := histutil.New(10, nil)
	hist.Record("old")
	m := New(Spec{History: hist})
	// The recalled line is submitted unchanged, then a new line is edited.
	apply(m, action.HistoryUp, action.Submit)
	feed(m, "new")
	m.CheckForCompletedLine()
	if diff := cmp.Diff([]string{"old"}, hist.Entries()); diff != "" {
		t.Errorf("history (-want +got):\n%s", diff)
	}
	checkLine(t, m, "new", 3)
}

func TestHistoryRecording(t *testing.T) {
	m := New(Spec{History: histutil.New(2, nil)})
	submit := func(s string) {
		feed(m, s+"\r")
		m.CheckForCompletedLine()
	}
	submit("a")
	submit("a")
	if m.History().Len() != 1 {
		t.Errorf("history size %d after a duplicate submission, want 1", m.History().Len())
	}
	submit("b")
	submit("c")
	if diff := cmp.Diff([]string{"c", "b"}, m.History().Entries()); diff != "" {
		t.Errorf("history (-want +got):\n%s", diff)
	}
}

func TestHistoryBrowsing(t *testing.T) {
	hist := histutil.New(10, nil)
	for _, s := range []string{"first", "second", "third"} {
		hist.Record(s)
	}
	m := New(Spec{History: hist})
	feed(m, "draft")

	apply(m, action.HistoryUp)
	checkLine(t, m, "third", 5)
	apply(m, action.HistoryUp)
	checkLine(t, m, "second", 6)
	apply(m, action.HistoryDown)
	checkLine(t, m, "third", 5)
	// Nothing newer than the newest entry.
	apply(m, action.HistoryDown)
	checkLine(t, m, "third", 5)
	apply(m, action.HistoryStart)
	checkLine(t, m, "first", 5)
	// Nothing older than the oldest entry.
	apply(m, action.HistoryUp)
	checkLine(t, m, "first", 5)
	apply(m, action.HistoryEnd)
	checkLine(t, m, "third", 5)

	// Editing leaves browsing; Up starts over from the newest entry.
	apply(m, action.HistoryStart, action.DeleteCharLeft)
	checkLine(t, m, "firs", 4)
	apply(m, action.HistoryUp)
	checkLine(t, m, "third", 5)
}

func TestHistoryBrowsing_CursorMotionKeepsSelection(t *testing.T) {
	hist := histutil.New(10, nil)
	hist.Record("one")
	hist.Record("two")
	m := New(Spec{History: hist})

	apply(m, action.HistoryUp, action.HistoryUp, action.CursorLeft, action.HistoryDown)
	checkLine(t, m, "two", 3)
}

func TestHistoryBrowsing_RecalledLineNotRecordedAgain(t *testing.T) {
	hist := histutil.New(10, nil)
	hist.Record("old")
	hist.Record("new")
	m := New(Spec{History: hist})

	apply(m, action.HistoryUp, action.HistoryUp, action.Submit)
	line, _ := m.CheckForCompletedLine()
	if line != "old" {
		t.Errorf("got %q, want \"old\"", line)
	}
	if diff := cmp.Diff([]string{"new", "old"}, hist.Entries()); diff != "" {
		t.Errorf("history (-want +got):\n%s", diff)
	}
	if hist.Browsing() {
		t.Errorf("still browsing after the line is extracted")
	}

	// The same line, typed out, is recorded.
	feed(m, "old\r")
	m.CheckForCompletedLine()
	if diff := cmp.Diff([]string{"old", "new", "old"}, hist.Entries()); diff != "" {
		t.Errorf("history (-want +got):\n%s", diff)
	}
}

func TestHistoryDown_EmptyHistoryClearsLine(t *testing.T) {
	m := modelWith("draft", 2)
	apply(m, action.HistoryDown)
	checkLine(t, m, "", 0)

	// With entries, Down from a live edit is a no-op.
	m.History().Record("x")
	feed(m, "draft")
	apply(m, action.HistoryDown)
	checkLine(t, m, "draft", 5)
}

func TestAutocomplete(t *testing.T) {
	m := New(Spec{Completer: complete.NewWordProvider("history", "help")})
	feed(m, "echo h")

	apply(m, action.AutoCompleteForward)
	checkLine(t, m, "echo help", 9)
	if !m.Completing() {
		t.Errorf("Completing -> false during a session")
	}
	apply(m, action.AutoCompleteForward)
	checkLine(t, m, "echo history", 12)
	apply(m, action.AutoCompleteBackward, action.AutoCompleteBackward)
	checkLine(t, m, "echo h", 6)

	// Any other action ends the session, keeping the text.
	apply(m, action.AutoCompleteForward, action.CursorLeft)
	if m.Completing() {
		t.Errorf("Completing -> true after another action")
	}
	checkLine(t, m, "echo help", 8)
	apply(m, action.CursorEnd, action.AutoCompleteForward)
	// A new session starts from "help", which completes to itself.
	checkLine(t, m, "echo help", 9)
}

func TestAutocomplete_ForwardBackwardRoundTrip(t *testing.T) {
	p := complete.NewWordProvider("alpha", "alpine", "beta", "bet")
	f := func(s string) bool {
		s = strings.ReplaceAll(s, string(Terminator), "")
		m := New(Spec{Completer: p})
		feed(m, s)
		apply(m, action.AutoCompleteForward, action.AutoCompleteBackward)
		return string(m.Text()) == s
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
	for _, s := range []string{"al", "b", "x be", ""} {
		if !f(s) {
			t.Errorf("round trip fails for %q", s)
		}
	}
}

func TestAutocomplete_NoProvider(t *testing.T) {
	m := modelWith("abc", 1)
	m.ClearRedraw()
	apply(m, action.AutoCompleteForward)
	checkLine(t, m, "abc", 1)
	if m.NeedsRedraw() {
		t.Errorf("NeedsRedraw -> true after a no-op autocomplete")
	}
}

func TestRedrawFlags(t *testing.T) {
	m := New(Spec{Prompt: "> "})
	if !m.NeedsRedraw() {
		t.Errorf("new model does not need a redraw")
	}
	m.ClearRedraw()

	apply(m, action.NoAction)
	if m.NeedsRedraw() {
		t.Errorf("NeedsRedraw -> true after NoAction")
	}
	feed(m, "x")
	if !m.NeedsRedraw() {
		t.Errorf("NeedsRedraw -> false after InsertChar")
	}
	m.ClearRedraw()

	m.SetPrompt("$ ")
	if !m.NeedsRedraw() || m.Prompt() != "$ " {
		t.Errorf("SetPrompt does not force a redraw")
	}
	m.ClearRedraw()

	m.SetEchoEnabled(false)
	if !m.NeedsRedraw() || m.EchoEnabled() {
		t.Errorf("SetEchoEnabled(false) does not force a redraw")
	}
	// Input still accumulates.
	feed(m, "y")
	checkLine(t, m, "xy", 2)
}
