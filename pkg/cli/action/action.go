// Package action translates raw key records into editing actions.
package action

import (
	"fmt"

	"src.conedit.dev/pkg/cli/term"
)

// Type identifies an editing action.
type Type int

// Possible values of Type.
const (
	NoAction Type = iota
	CursorLeft
	CursorRight
	CursorStart
	CursorEnd
	WordLeft
	WordRight
	HistoryUp
	HistoryDown
	HistoryStart
	HistoryEnd
	ClearLine
	DeleteCharLeft
	DeleteCharRight
	DeleteWordLeft
	DeleteWordRight
	AutoCompleteForward
	AutoCompleteBackward
	InsertChar
	Submit
)

var typeNames = [...]string{
	"NoAction", "CursorLeft", "CursorRight", "CursorStart", "CursorEnd",
	"WordLeft", "WordRight", "HistoryUp", "HistoryDown", "HistoryStart",
	"HistoryEnd", "ClearLine", "DeleteCharLeft", "DeleteCharRight",
	"DeleteWordLeft", "DeleteWordRight", "AutoCompleteForward",
	"AutoCompleteBackward", "InsertChar", "Submit",
}

func (t Type) String() string {
	if 0 <= t && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Action is a single editing action. Char is only meaningful for InsertChar,
// and holds one UTF-16 code unit widened to a rune; surrogates are joined by
// the consumer.
type Action struct {
	Type Type
	Char rune
}

// Of returns an Action without a character.
func Of(t Type) Action { return Action{Type: t} }

// Insert returns an InsertChar action.
func Insert(r rune) Action { return Action{InsertChar, r} }

func (a Action) String() string {
	if a.Type == InsertChar {
		return fmt.Sprintf("InsertChar(%q)", a.Char)
	}
	return a.Type.String()
}

const (
	ctrlMask = term.LeftCtrlPressed | term.RightCtrlPressed
	altMask  = term.LeftAltPressed | term.RightAltPressed
)

// Translate maps a key record to an action. Key releases map to NoAction,
// except that a release carrying a character while Alt is held, or of the Alt
// key itself, inserts the character; that is how Alt+numpad entry delivers
// its result.
func Translate(rec term.KeyRecord) Action {
	if !rec.KeyDown {
		if isPrintable(rec.UnicodeChar) &&
			(rec.ControlKeyState&term.LeftAltPressed != 0 || rec.VirtualKeyCode == term.VKMenu) {
			return Insert(rune(rec.UnicodeChar))
		}
		return Of(NoAction)
	}
	ctrl := rec.ControlKeyState&ctrlMask != 0
	shift := rec.ControlKeyState&term.ShiftPressed != 0
	switch rec.VirtualKeyCode {
	case term.VKBack:
		if ctrl {
			return Of(DeleteWordLeft)
		}
		return Of(DeleteCharLeft)
	case term.VKTab:
		if shift {
			return Of(AutoCompleteBackward)
		}
		return Of(AutoCompleteForward)
	case term.VKEscape:
		return Of(ClearLine)
	case term.VKLeft:
		if ctrl {
			return Of(WordLeft)
		}
		return Of(CursorLeft)
	case term.VKRight:
		if ctrl {
			return Of(WordRight)
		}
		return Of(CursorRight)
	case term.VKUp:
		return Of(HistoryUp)
	case term.VKDown:
		return Of(HistoryDown)
	case term.VKPrior:
		return Of(HistoryStart)
	case term.VKNext:
		return Of(HistoryEnd)
	case term.VKHome:
		return Of(CursorStart)
	case term.VKEnd:
		return Of(CursorEnd)
	case term.VKDelete:
		if ctrl {
			return Of(DeleteWordRight)
		}
		return Of(DeleteCharRight)
	case term.VKReturn:
		return Of(Submit)
	}
	if isPrintable(rec.UnicodeChar) {
		return Insert(rune(rec.UnicodeChar))
	}
	return Of(NoAction)
}

func isPrintable(u uint16) bool {
	return u >= 0x20 && u != 0x7f
}
