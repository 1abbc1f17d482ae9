package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"

	"src.conedit.dev/pkg/sys/ewindows"
)

type reader struct {
	console windows.Handle
	closed  bool
}

// Creates a new Reader instance.
func newReader(file *os.File) (*reader, error) {
	console, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return nil, fmt.Errorf("GetStdHandle(STD_INPUT_HANDLE): %w", err)
	}
	return &reader{console: console}, nil
}

func (r *reader) Poll() ([]Event, error) {
	if r.closed {
		return nil, ErrClosed
	}
	n, err := ewindows.GetNumberOfConsoleInputEvents(r.console)
	if err != nil {
		return nil, fmt.Errorf("GetNumberOfConsoleInputEvents: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	buf := make([]ewindows.InputRecord, n)
	nr, err := ewindows.ReadConsoleInput(r.console, buf)
	if err != nil {
		return nil, fmt.Errorf("ReadConsoleInput: %w", err)
	}
	var events []Event
	for i := range buf[:nr] {
		if rec, ok := convertEvent(buf[i].GetEvent()); ok {
			events = append(events, rec)
		}
	}
	return events, nil
}

func (r *reader) Close() {
	r.closed = true
}

// Converts the native ewindows.InputEvent type to a KeyRecord. Events other
// than key events are ignored.
func convertEvent(event ewindows.InputEvent) (KeyRecord, bool) {
	switch event := event.(type) {
	case *ewindows.KeyEvent:
		return KeyRecord{
			KeyDown:         event.BKeyDown != 0,
			VirtualKeyCode:  event.WVirtualKeyCode,
			UnicodeChar:     uint16(event.UChar[0]) | uint16(event.UChar[1])<<8,
			ControlKeyState: event.DwControlKeyState,
			RepeatCount:     event.WRepeatCount,
		}, true
	default:
		return KeyRecord{}, false
	}
}
