//go:build windows

// Package ewindows wraps the parts of the Windows console API that
// golang.org/x/sys/windows does not cover.
package ewindows

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	readConsoleInput              = kernel32.NewProc("ReadConsoleInputW")
	peekConsoleInput              = kernel32.NewProc("PeekConsoleInputW")
	getNumberOfConsoleInputEvents = kernel32.NewProc("GetNumberOfConsoleInputEvents")
)

// ReadConsoleInput input wraps the homonymous Windows API call. It blocks
// until at least one record is available.
func ReadConsoleInput(h windows.Handle, buf []InputRecord) (int, error) {
	return callRecords(readConsoleInput, h, buf)
}

// PeekConsoleInput wraps the homonymous Windows API call. It never blocks and
// leaves the records in the input buffer.
func PeekConsoleInput(h windows.Handle, buf []InputRecord) (int, error) {
	return callRecords(peekConsoleInput, h, buf)
}

func callRecords(proc *windows.LazyProc, h windows.Handle, buf []InputRecord) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	var nr uint32
	r, _, err := proc.Call(uintptr(h),
		uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)), uintptr(unsafe.Pointer(&nr)))
	if r != 0 {
		err = nil
	}
	return int(nr), err
}

// GetNumberOfConsoleInputEvents wraps the homonymous Windows API call.
func GetNumberOfConsoleInputEvents(h windows.Handle) (int, error) {
	var n uint32
	r, _, err := getNumberOfConsoleInputEvents.Call(uintptr(h), uintptr(unsafe.Pointer(&n)))
	if r != 0 {
		err = nil
	}
	return int(n), err
}

// CursorPosition returns the cursor position of the screen buffer, as
// 0-based line and column.
func CursorPosition(h windows.Handle) (line, col int, err error) {
	var info windows.ConsoleScreenBufferInfo
	err = windows.GetConsoleScreenBufferInfo(h, &info)
	if err != nil {
		return 0, 0, err
	}
	return int(info.CursorPosition.Y), int(info.CursorPosition.X), nil
}

// InputEvent is either a KeyEvent, MouseEvent, WindowBufferSizeEvent,
// MenuEvent or FocusEvent.
type InputEvent interface {
	isInputEvent()
}

func (*KeyEvent) isInputEvent()              {}
func (*MouseEvent) isInputEvent()            {}
func (*WindowBufferSizeEvent) isInputEvent() {}
func (*MenuEvent) isInputEvent()             {}
func (*FocusEvent) isInputEvent()            {}

// GetEvent converts InputRecord to InputEvent.
func (input *InputRecord) GetEvent() InputEvent {
	switch input.EventType {
	case KEY_EVENT:
		return (*KeyEvent)(unsafe.Pointer(&input.Event))
	case MOUSE_EVENT:
		return (*MouseEvent)(unsafe.Pointer(&input.Event))
	case WINDOW_BUFFER_SIZE_EVENT:
		return (*WindowBufferSizeEvent)(unsafe.Pointer(&input.Event))
	case MENU_EVENT:
		return (*MenuEvent)(unsafe.Pointer(&input.Event))
	case FOCUS_EVENT:
		return (*FocusEvent)(unsafe.Pointer(&input.Event))
	default:
		return nil
	}
}
