// Package cli implements an interactive line editor that keeps the line being
// edited intact while other output is written to the same terminal.
package cli

import (
	"errors"
	"fmt"
	"os"

	"src.conedit.dev/pkg/cli/action"
	"src.conedit.dev/pkg/cli/complete"
	"src.conedit.dev/pkg/cli/histutil"
	"src.conedit.dev/pkg/cli/model"
	"src.conedit.dev/pkg/cli/redraw"
	"src.conedit.dev/pkg/cli/term"
	"src.conedit.dev/pkg/logutil"
	"src.conedit.dev/pkg/sys"
)

var logger = logutil.GetLogger("[cli] ")

// ConsoleSpec specifies the configuration and initial state of a Console.
type ConsoleSpec struct {
	Prompt    string
	History   *histutil.History
	Completer complete.Provider
	NoEcho    bool
	// Columns kept between the cursor and the edges of the terminal when the
	// line scrolls. Defaults to redraw.ScrollMargin.
	ScrollMargin int
}

// Console reads lines from a terminal without blocking. All methods must be
// called from the same goroutine.
type Console struct {
	reader  term.Reader
	writer  term.Writer
	locator term.Locator
	width   func() int
	restore func() error

	model   *model.ConsoleModel
	coord   *redraw.Coordinator
	decoder *term.UnitDecoder
}

// Open puts the terminal in raw mode and creates a Console reading from in and
// painting to out. Call Close to restore the terminal.
func Open(in, out *os.File, spec ConsoleSpec) (*Console, error) {
	restore, err := term.Setup(in, out)
	if err != nil {
		return nil, fmt.Errorf("set up terminal: %w", err)
	}
	reader, err := term.NewReader(in)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create reader: %w", err), restore())
	}
	writer := term.NewWriter(out)
	width := func() int {
		_, col := sys.WinSize(out)
		return col
	}
	c := New(reader, writer, term.NewLocator(out, writer), width, spec)
	c.restore = restore
	return c, nil
}

// New creates a Console from its parts. The locator may be nil, which
// disables the detection of foreign output. The width function returns the
// width of the terminal; a non-positive width disables scrolling.
func New(reader term.Reader, writer term.Writer, locator term.Locator,
	width func() int, spec ConsoleSpec) *Console {

	m := model.New(model.Spec{
		Prompt:    spec.Prompt,
		History:   spec.History,
		Completer: spec.Completer,
		NoEcho:    spec.NoEcho,
	})
	var cl redraw.CursorLocator
	if locator != nil {
		cl = locator
	}
	return &Console{
		reader:  reader,
		writer:  writer,
		locator: locator,
		width:   width,
		model:   m,
		coord:   redraw.New(m, cl, spec.ScrollMargin),
		decoder: term.NewUnitDecoder(),
	}
}

// PollForCompletedLine processes all input available now, repaints the line
// if needed, and returns the oldest submitted line if there is one. It never
// waits for input. When several lines were submitted at once, each call
// returns one of them.
func (c *Console) PollForCompletedLine() (string, bool, error) {
	events, err := c.reader.Poll()
	if err != nil {
		return "", false, fmt.Errorf("read terminal: %w", err)
	}
	for _, event := range events {
		c.handle(event)
	}
	if err := c.refresh(); err != nil {
		return "", false, err
	}
	line, ok := c.model.CheckForCompletedLine()
	return line, ok, nil
}

func (c *Console) handle(event term.Event) {
	switch event := event.(type) {
	case term.KeyRecord:
		a := action.Translate(event)
		n := max(1, int(event.RepeatCount))
		for i := 0; i < n; i++ {
			c.apply(a)
		}
	case term.CursorPosition:
		if c.locator != nil {
			c.locator.Report(event)
		}
	default:
		logger.Printf("unhandled event %#v", event)
	}
}

// apply applies one action, assembling characters from UTF-16 code units.
func (c *Console) apply(a action.Action) {
	if a.Type == action.NoAction {
		return
	}
	if a.Type == action.InsertChar {
		for _, r := range c.decoder.Feed(uint16(a.Char)) {
			c.model.Apply(action.Insert(r))
		}
		return
	}
	if c.decoder.Pending() {
		for _, r := range c.decoder.Flush() {
			c.model.Apply(action.Insert(r))
		}
	}
	c.model.Apply(a)
}

// refresh paints the line and moves to a new row as needed.
func (c *Console) refresh() error {
	width := c.width()
	s, err := c.coord.Prepare(width)
	if err != nil {
		// The cursor position request failed; painting may still work.
		logger.Println("failed to query cursor position:", err)
	}
	if s.NeedsRepaint {
		text, col := s.Render(width)
		if err := c.writer.PaintLine(text, col); err != nil {
			return fmt.Errorf("paint line: %w", err)
		}
		if err := c.coord.Painted(); err != nil {
			logger.Println("failed to query cursor position:", err)
		}
	}
	if s.NeedsLineAdvance {
		if err := c.writer.Advance(); err != nil {
			return fmt.Errorf("advance line: %w", err)
		}
		if err := c.coord.Advanced(); err != nil {
			logger.Println("failed to query cursor position:", err)
		}
	}
	return nil
}

// SetPrompt changes the prompt. It is painted on the next poll.
func (c *Console) SetPrompt(prompt string) { c.model.SetPrompt(prompt) }

// SetEchoEnabled enables or disables echo of the line being edited. Input is
// accepted either way.
func (c *Console) SetEchoEnabled(echo bool) { c.model.SetEchoEnabled(echo) }

// History returns the history of the Console.
func (c *Console) History() *histutil.History { return c.model.History() }

// Close releases the reader and restores the terminal if the Console was
// created by Open.
func (c *Console) Close() error {
	c.reader.Close()
	if c.restore != nil {
		return c.restore()
	}
	return nil
}
