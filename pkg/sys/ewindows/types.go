//go:build windows

package ewindows

// Event types of InputRecord.
const (
	KEY_EVENT                = 0x1
	MOUSE_EVENT              = 0x2
	WINDOW_BUFFER_SIZE_EVENT = 0x4
	MENU_EVENT               = 0x8
	FOCUS_EVENT              = 0x10
)

// Flags of KeyEvent.DwControlKeyState.
const (
	RIGHT_ALT_PRESSED  = 0x1
	LEFT_ALT_PRESSED   = 0x2
	RIGHT_CTRL_PRESSED = 0x4
	LEFT_CTRL_PRESSED  = 0x8
	SHIFT_PRESSED      = 0x10
)

// InputRecord is the INPUT_RECORD struct. Event is a union, decoded by
// GetEvent.
type InputRecord struct {
	EventType uint16
	_         uint16
	Event     [16]byte
}

// KeyEvent is the KEY_EVENT_RECORD struct. UChar holds one UTF-16 code unit.
type KeyEvent struct {
	BKeyDown          int32
	WRepeatCount      uint16
	WVirtualKeyCode   uint16
	WVirtualScanCode  uint16
	UChar             [2]byte
	DwControlKeyState uint32
}

// Coord is the COORD struct.
type Coord struct {
	X, Y int16
}

// MouseEvent is the MOUSE_EVENT_RECORD struct.
type MouseEvent struct {
	DwMousePosition   Coord
	DwButtonState     uint32
	DwControlKeyState uint32
	DwEventFlags      uint32
}

// WindowBufferSizeEvent is the WINDOW_BUFFER_SIZE_RECORD struct.
type WindowBufferSizeEvent struct {
	DwSize Coord
}

// MenuEvent is the MENU_EVENT_RECORD struct.
type MenuEvent struct {
	DwCommandID uint32
}

// FocusEvent is the FOCUS_EVENT_RECORD struct.
type FocusEvent struct {
	BSetFocus int32
}
