// Package redraw decides when and how the line editor repaints the line.
package redraw

import (
	"src.conedit.dev/pkg/cli/model"
	"src.conedit.dev/pkg/cli/term"
	"src.conedit.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[cli/redraw] ")

// Model is the read-only view of the editing state used by the Coordinator,
// plus the methods to consume the redraw flags.
type Model interface {
	Prompt() string
	Text() []rune
	Cursor() int
	EchoEnabled() bool
	NeedsRedraw() bool
	ClearRedraw()
	NeedsLineAdvance() bool
	ClearLineAdvance()
}

var _ Model = (*model.ConsoleModel)(nil)

// CursorLocator reports where the terminal cursor is. It is satisfied by
// term.Locator.
type CursorLocator interface {
	Locate() (term.Pos, bool)
	Invalidate()
	Query() error
}

// Coordinator turns the editing state into Snapshots, and forces a repaint
// when the terminal cursor is found away from where the last paint left it,
// which means something else has written to the terminal.
type Coordinator struct {
	m       Model
	locator CursorLocator
	margin  int

	baseline     term.Pos
	haveBaseline bool
	// Whether the next known cursor position becomes the baseline.
	awaiting bool
}

// New creates a Coordinator. The locator may be nil, which disables drift
// detection. A non-positive margin means ScrollMargin.
func New(m Model, locator CursorLocator, margin int) *Coordinator {
	if margin <= 0 {
		margin = ScrollMargin
	}
	return &Coordinator{m: m, locator: locator, margin: margin}
}

// Prepare builds the Snapshot for a terminal of the given width.
func (c *Coordinator) Prepare(width int) (Snapshot, error) {
	drift, err := c.checkDrift()
	s := Snapshot{Prompt: c.m.Prompt()}
	text := c.m.Text()
	cursor := c.m.Cursor()
	if i := indexTerminator(text); i >= 0 {
		text = text[:i]
	}
	if !c.m.EchoEnabled() {
		text = nil
	}
	if cursor > len(text) {
		cursor = len(text)
	}
	s.Text = string(text)
	prompt := []rune(s.Prompt)
	s.ScrollOffset, s.CursorColumn = scroll(
		append(prompt, text...), len(prompt)+cursor, width, c.margin)
	s.NeedsRepaint = c.m.NeedsRedraw() || drift
	s.NeedsLineAdvance = c.m.NeedsLineAdvance()
	return s, err
}

func (c *Coordinator) checkDrift() (bool, error) {
	if c.locator == nil {
		return false, nil
	}
	drift := false
	if pos, ok := c.locator.Locate(); ok {
		switch {
		case c.awaiting:
			c.baseline, c.haveBaseline, c.awaiting = pos, true, false
		case c.haveBaseline && pos != c.baseline:
			logger.Printf("cursor moved from %v to %v, repainting", c.baseline, pos)
			drift = true
		}
	}
	return drift, c.locator.Query()
}

// Painted must be called after the Snapshot has been painted. It clears the
// redraw flag and records a new baseline.
func (c *Coordinator) Painted() error {
	c.m.ClearRedraw()
	return c.rebase()
}

// Advanced must be called after the host has moved to a new row. It clears
// the line-advance flag.
func (c *Coordinator) Advanced() error {
	c.m.ClearLineAdvance()
	return c.rebase()
}

func (c *Coordinator) rebase() error {
	c.haveBaseline = false
	if c.locator == nil {
		return nil
	}
	c.locator.Invalidate()
	if err := c.locator.Query(); err != nil {
		c.awaiting = true
		return err
	}
	if pos, ok := c.locator.Locate(); ok {
		c.baseline, c.haveBaseline, c.awaiting = pos, true, false
	} else {
		c.awaiting = true
	}
	return nil
}

func indexTerminator(text []rune) int {
	for i, r := range text {
		if r == model.Terminator {
			return i
		}
	}
	return -1
}
