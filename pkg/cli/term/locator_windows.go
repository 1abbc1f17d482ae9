package term

import (
	"os"

	"golang.org/x/sys/windows"

	"src.conedit.dev/pkg/sys/ewindows"
)

// consoleLocator asks the console for the cursor position synchronously, so
// every Locate is fresh.
type consoleLocator struct {
	h windows.Handle
}

func newLocator(out *os.File, _ Writer) Locator {
	return consoleLocator{windows.Handle(out.Fd())}
}

func (l consoleLocator) Locate() (Pos, bool) {
	line, col, err := ewindows.CursorPosition(l.h)
	if err != nil {
		return Pos{}, false
	}
	return Pos{Line: line, Col: col}, true
}

func (consoleLocator) Invalidate()           {}
func (consoleLocator) Query() error          { return nil }
func (consoleLocator) Report(CursorPosition) {}
