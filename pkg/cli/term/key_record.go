package term

import (
	"unicode/utf16"

	"src.conedit.dev/pkg/ui"
)

var functionKeyCodes = map[rune]uint16{
	ui.Up: VKUp, ui.Down: VKDown, ui.Right: VKRight, ui.Left: VKLeft,
	ui.Home: VKHome, ui.Insert: VKInsert, ui.Delete: VKDelete, ui.End: VKEnd,
	ui.PageUp: VKPrior, ui.PageDown: VKNext,
}

// KeyRecords converts a decoded key into key-down records. Most keys give one
// record; a character outside the BMP gives two, one per surrogate.
func KeyRecords(k ui.Key) []KeyRecord {
	rec := KeyRecord{KeyDown: true, RepeatCount: 1, ControlKeyState: controlState(k.Mod)}
	switch {
	case ui.F12 <= k.Rune && k.Rune <= ui.F1:
		rec.VirtualKeyCode = VKF1 + uint16(ui.F1-k.Rune)
	case k.Rune < 0:
		code, ok := functionKeyCodes[k.Rune]
		if !ok {
			return nil
		}
		rec.VirtualKeyCode = code
	case k.Rune == ui.Tab:
		rec.VirtualKeyCode, rec.UnicodeChar = VKTab, '\t'
	case k.Rune == ui.Enter || k.Rune == '\r':
		rec.VirtualKeyCode, rec.UnicodeChar = VKReturn, '\r'
	case k.Rune == ui.Backspace || k.Rune == '\b':
		rec.VirtualKeyCode, rec.UnicodeChar = VKBack, '\b'
	case k.Rune == '[' && k.Mod == ui.Ctrl:
		// A lone ESC byte.
		rec.VirtualKeyCode, rec.UnicodeChar = VKEscape, 0x1b
		rec.ControlKeyState = 0
	case k.Rune == 'H' && k.Mod == ui.Ctrl:
		// Many terminals send ^H for Ctrl-Backspace.
		rec.VirtualKeyCode, rec.UnicodeChar = VKBack, '\b'
	case k.Mod&ui.Ctrl != 0 && '@' <= k.Rune && k.Rune <= '_':
		rec.VirtualKeyCode, rec.UnicodeChar = charKeyCode(k.Rune), uint16(k.Rune-'@')
	case k.Mod&ui.Ctrl != 0 && k.Mod&ui.Alt == 0:
		// Other Ctrl combinations do not input a character.
		rec.VirtualKeyCode = charKeyCode(k.Rune)
	default:
		rec.VirtualKeyCode = charKeyCode(k.Rune)
		if k.Rune > 0xffff {
			r1, r2 := utf16.EncodeRune(k.Rune)
			rec2 := rec
			rec.UnicodeChar, rec2.UnicodeChar = uint16(r1), uint16(r2)
			return []KeyRecord{rec, rec2}
		}
		rec.UnicodeChar = uint16(k.Rune)
	}
	return []KeyRecord{rec}
}

func charKeyCode(r rune) uint16 {
	switch {
	case 'a' <= r && r <= 'z':
		return uint16(r - 'a' + 'A')
	case 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return uint16(r)
	case r == ' ':
		return VKSpace
	}
	return 0
}

func controlState(mod ui.Mod) uint32 {
	var state uint32
	if mod&ui.Alt != 0 {
		state |= LeftAltPressed
	}
	if mod&ui.Ctrl != 0 {
		state |= LeftCtrlPressed
	}
	if mod&ui.Shift != 0 {
		state |= ShiftPressed
	}
	return state
}
