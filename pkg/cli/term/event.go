package term

// Event represents an event that can be read from the terminal.
type Event interface {
	isEvent()
}

// KeyRecord is a raw key event, laid out after the Windows console
// KEY_EVENT_RECORD. The Unix reader synthesizes records of the same shape from
// escape sequences.
type KeyRecord struct {
	KeyDown        bool
	VirtualKeyCode uint16
	// UnicodeChar is a single UTF-16 code unit; characters outside the BMP
	// arrive as two records carrying a surrogate pair.
	UnicodeChar     uint16
	ControlKeyState uint32
	RepeatCount     uint16
}

// CursorPosition represents a cursor position report, as 1-based row and
// column.
type CursorPosition struct {
	Row, Col int
}

func (KeyRecord) isEvent()      {}
func (CursorPosition) isEvent() {}

// Pos is a line/column position, 0-based.
type Pos struct {
	Line, Col int
}

// Flags of KeyRecord.ControlKeyState.
const (
	RightAltPressed  uint32 = 0x01
	LeftAltPressed   uint32 = 0x02
	RightCtrlPressed uint32 = 0x04
	LeftCtrlPressed  uint32 = 0x08
	ShiftPressed     uint32 = 0x10
)

// A subset of virtual key codes listed in
// https://learn.microsoft.com/en-us/windows/win32/inputdev/virtual-key-codes
const (
	VKBack   uint16 = 0x08
	VKTab    uint16 = 0x09
	VKReturn uint16 = 0x0d
	VKShift  uint16 = 0x10
	VKCtrl   uint16 = 0x11
	VKMenu   uint16 = 0x12
	VKEscape uint16 = 0x1b
	VKSpace  uint16 = 0x20
	VKPrior  uint16 = 0x21
	VKNext   uint16 = 0x22
	VKEnd    uint16 = 0x23
	VKHome   uint16 = 0x24
	VKLeft   uint16 = 0x25
	VKUp     uint16 = 0x26
	VKRight  uint16 = 0x27
	VKDown   uint16 = 0x28
	VKInsert uint16 = 0x2d
	VKDelete uint16 = 0x2e
	VKF1     uint16 = 0x70
)
