package term

import "os"

// Locator tracks the terminal cursor position, so that output written behind
// the editor's back can be detected.
type Locator interface {
	// Locate returns the cursor position if a fresh one has become known
	// since the previous call.
	Locate() (Pos, bool)
	// Invalidate forgets any position known or requested so far. It is
	// called after the editor itself moves the cursor.
	Invalidate()
	// Query asks for a fresh position, which becomes available to Locate
	// either immediately or once the terminal answers.
	Query() error
	// Report delivers a CursorPosition event read from the terminal.
	Report(CursorPosition)
}

// NewLocator returns the Locator suitable for the platform. On Windows it
// asks the console directly; elsewhere it sends cursor position requests via
// w and relies on the reports being passed to Report.
func NewLocator(out *os.File, w Writer) Locator {
	return newLocator(out, w)
}

// ReportLocator is a Locator driven by cursor position reports.
type ReportLocator struct {
	w Writer
	// Number of requests sent and not yet answered.
	outstanding int
	// Number of outstanding requests whose answers are stale.
	stale int
	pos   Pos
	fresh bool
}

// NewReportLocator creates a ReportLocator that sends requests via w.
func NewReportLocator(w Writer) *ReportLocator {
	return &ReportLocator{w: w}
}

func (l *ReportLocator) Locate() (Pos, bool) {
	if !l.fresh {
		return Pos{}, false
	}
	l.fresh = false
	return l.pos, true
}

func (l *ReportLocator) Invalidate() {
	l.stale = l.outstanding
	l.fresh = false
}

func (l *ReportLocator) Query() error {
	if l.outstanding > l.stale {
		// A live request is already on its way.
		return nil
	}
	err := l.w.RequestCursorPosition()
	if err != nil {
		return err
	}
	l.outstanding++
	return nil
}

func (l *ReportLocator) Report(cp CursorPosition) {
	if l.outstanding > 0 {
		l.outstanding--
	}
	if l.stale > 0 {
		l.stale--
		return
	}
	l.pos = Pos{Line: cp.Row - 1, Col: cp.Col - 1}
	l.fresh = true
}
