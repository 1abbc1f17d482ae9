package term

import (
	"testing"

	"src.conedit.dev/pkg/sys/ewindows"
	"src.conedit.dev/pkg/tt"
)

func TestConvertEvent(t *testing.T) {
	tt.Test(t, convertEvent,
		// Only convert KeyEvent
		Args(&ewindows.MouseEvent{}).Rets(KeyRecord{}, false),

		Args(&ewindows.KeyEvent{
			BKeyDown: 1, WRepeatCount: 2, WVirtualKeyCode: 'A',
			UChar: [2]byte{'a', 0}, DwControlKeyState: ewindows.SHIFT_PRESSED,
		}).Rets(KeyRecord{
			KeyDown: true, RepeatCount: 2, VirtualKeyCode: 'A',
			UnicodeChar: 'a', ControlKeyState: ShiftPressed,
		}, true),

		// Key releases are kept; the translator decides what to do with them.
		Args(&ewindows.KeyEvent{
			BKeyDown: 0, WVirtualKeyCode: VKMenu, UChar: [2]byte{0xe9, 0},
		}).Rets(KeyRecord{VirtualKeyCode: VKMenu, UnicodeChar: 0xe9}, true),

		// A surrogate unit is passed through as is.
		Args(&ewindows.KeyEvent{
			BKeyDown: 1, UChar: [2]byte{0x3d, 0xd8},
		}).Rets(KeyRecord{KeyDown: true, UnicodeChar: 0xd83d}, true),
	)
}
