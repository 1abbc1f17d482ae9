// Package model implements the editing state machine of the line editor.
package model

import (
	"src.conedit.dev/pkg/cli/action"
	"src.conedit.dev/pkg/cli/complete"
	"src.conedit.dev/pkg/cli/histutil"
)

// Spec specifies the configuration and initial state of a ConsoleModel.
type Spec struct {
	// Prompt shown before the line.
	Prompt string
	// History to browse and record into. If nil, an in-memory History with
	// the default capacity is used.
	History *histutil.History
	// Provider of completions. If nil, autocompletion is a no-op.
	Completer complete.Provider
	// Disables echo of the line.
	NoEcho bool
}

// ConsoleModel owns the line buffer, the history and the autocomplete
// session, and applies actions to them. It also keeps the redraw flags that
// the redraw coordinator consumes.
type ConsoleModel struct {
	buf    Buffer
	hist   *histutil.History
	comp   *complete.Adapter
	prompt string
	echo   bool

	redraw      bool
	lineAdvance bool
	// One entry per submitted line not yet extracted: whether the line was an
	// unmodified recall of a history entry.
	recalled []bool
}

// New creates a new ConsoleModel from the given spec.
func New(spec Spec) *ConsoleModel {
	hist := spec.History
	if hist == nil {
		hist = histutil.New(0, nil)
	}
	return &ConsoleModel{
		hist:   hist,
		comp:   complete.NewAdapter(spec.Completer),
		prompt: spec.Prompt,
		echo:   !spec.NoEcho,
		redraw: true,
	}
}

// Apply applies one action.
func (m *ConsoleModel) Apply(a action.Action) {
	if a.Type != action.AutoCompleteForward && a.Type != action.AutoCompleteBackward {
		m.comp.Deactivate()
	}
	// Only the live tail is edited; submitted lines are left alone.
	start, cursor := m.buf.TailStart(), m.buf.Cursor()
	text := m.buf.Tail()
	switch a.Type {
	case action.NoAction:
	case action.CursorLeft:
		m.buf.MoveTo(cursor - 1)
	case action.CursorRight:
		m.buf.MoveTo(cursor + 1)
	case action.CursorStart:
		m.buf.MoveTo(start)
	case action.CursorEnd:
		m.buf.MoveTo(m.buf.Len())
	case action.WordLeft:
		m.buf.MoveTo(start + wordLeft(text, cursor-start))
	case action.WordRight:
		m.buf.MoveTo(start + wordRight(text, cursor-start))
	case action.HistoryUp:
		m.recall(m.hist.Up())
	case action.HistoryDown:
		if m.hist.Len() == 0 && !m.hist.Browsing() {
			// Back to a blank line.
			m.edit()
			m.buf.Clear()
		} else {
			m.recall(m.hist.Down())
		}
	case action.HistoryStart:
		m.recall(m.hist.Oldest())
	case action.HistoryEnd:
		m.recall(m.hist.Newest())
	case action.ClearLine:
		m.edit()
		m.buf.Clear()
	case action.DeleteCharLeft:
		if cursor > start {
			m.edit()
			m.buf.Erase(cursor-1, cursor)
		}
	case action.DeleteCharRight:
		if cursor < m.buf.Len() {
			m.edit()
			m.buf.Erase(cursor, cursor+1)
		}
	case action.DeleteWordLeft:
		if cursor > start {
			m.edit()
			m.buf.Erase(start+wordLeft(text, cursor-start), cursor)
		}
	case action.DeleteWordRight:
		if cursor < m.buf.Len() {
			m.edit()
			m.buf.Erase(cursor, start+wordRight(text, cursor-start))
		}
	case action.AutoCompleteForward:
		m.autocomplete(true)
	case action.AutoCompleteBackward:
		m.autocomplete(false)
	case action.InsertChar:
		if a.Char == Terminator {
			m.submit()
			break
		}
		m.edit()
		m.buf.Insert(cursor, a.Char)
	case action.Submit:
		m.submit()
	}
}

// submit queues the live tail as a completed line and starts a new one.
func (m *ConsoleModel) submit() {
	m.recalled = append(m.recalled, m.hist.Browsing())
	m.hist.Leave()
	m.buf.Insert(m.buf.Len(), Terminator)
	m.lineAdvance = true
}

// Marks the line as a live edit rather than a recalled history entry.
func (m *ConsoleModel) edit() { m.hist.Leave() }

func (m *ConsoleModel) recall(entry string, ok bool) {
	if ok {
		m.buf.SetText(entry)
	}
}

func (m *ConsoleModel) autocomplete(forward bool) {
	line, ok := m.comp.Trigger(string(m.buf.Tail()), forward)
	if !ok {
		return
	}
	m.edit()
	m.buf.SetText(line)
}

// CheckForCompletedLine extracts the first submitted line from the buffer,
// if there is one, and records it in the history. A line that was submitted
// as an unmodified recall of a history entry is not recorded again. At most
// one line is extracted per call; text typed after the line stays in the
// buffer.
func (m *ConsoleModel) CheckForCompletedLine() (string, bool) {
	line, ok := m.buf.ExtractLine()
	if !ok {
		return "", false
	}
	recalled := false
	if len(m.recalled) > 0 {
		recalled = m.recalled[0]
		m.recalled = m.recalled[1:]
	}
	if !recalled {
		m.hist.Record(line)
	}
	if m.buf.IndexTerminator() >= 0 {
		// Each queued line gets a row of its own.
		m.lineAdvance = true
	}
	return line, true
}

// SetPrompt sets the prompt and forces a redraw.
func (m *ConsoleModel) SetPrompt(prompt string) {
	m.prompt = prompt
	m.redraw = true
}

// Prompt returns the prompt.
func (m *ConsoleModel) Prompt() string { return m.prompt }

// SetEchoEnabled enables or disables echo of the line. Input keeps
// accumulating either way.
func (m *ConsoleModel) SetEchoEnabled(echo bool) {
	if m.echo != echo {
		m.echo = echo
		m.redraw = true
	}
}

// EchoEnabled returns whether the line is echoed.
func (m *ConsoleModel) EchoEnabled() bool { return m.echo }

// Text returns the content of the buffer, including any submitted lines not
// yet extracted. The returned slice must not be modified.
func (m *ConsoleModel) Text() []rune { return m.buf.Text() }

// Cursor returns the insertion position.
func (m *ConsoleModel) Cursor() int { return m.buf.Cursor() }

// History returns the history.
func (m *ConsoleModel) History() *histutil.History { return m.hist }

// Completing returns whether an autocomplete session is active.
func (m *ConsoleModel) Completing() bool { return m.comp.Active() }

// NeedsRedraw returns whether the line needs to be repainted.
func (m *ConsoleModel) NeedsRedraw() bool { return m.redraw || m.buf.Dirty() }

// ClearRedraw clears the flag returned by NeedsRedraw.
func (m *ConsoleModel) ClearRedraw() {
	m.redraw = false
	m.buf.ClearDirty()
}

// NeedsLineAdvance returns whether the host must move to a new row before
// the next line is painted.
func (m *ConsoleModel) NeedsLineAdvance() bool { return m.lineAdvance }

// ClearLineAdvance clears the flag returned by NeedsLineAdvance.
func (m *ConsoleModel) ClearLineAdvance() { m.lineAdvance = false }
