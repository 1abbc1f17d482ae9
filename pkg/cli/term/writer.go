package term

import (
	"bytes"
	"fmt"
	"io"
)

// Writer represents the output to a terminal.
type Writer interface {
	// PaintLine replaces the current row with text, which must already fit the
	// terminal width, and places the cursor at the given column.
	PaintLine(text string, cursorCol int) error
	// Advance moves the cursor to the start of the next row.
	Advance() error
	// RequestCursorPosition asks the terminal to report the cursor position.
	// The report arrives as a CursorPosition event.
	RequestCursorPosition() error
}

// writer writes VT100 sequences.
type writer struct {
	file io.Writer
}

// NewWriter returns a Writer that writes VT100 sequences to the given
// io.Writer.
func NewWriter(f io.Writer) Writer {
	return &writer{f}
}

const (
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
	eraseLine  = "\033[K"
	queryCPR   = "\033[6n"
)

func (w *writer) PaintLine(text string, cursorCol int) error {
	// Store all the output in a buffer, so that we only write to the terminal
	// once.
	output := new(bytes.Buffer)
	// Hide cursor at the beginning to minimize flickering.
	output.WriteString(hideCursor)
	output.WriteString("\r")
	output.WriteString(text)
	output.WriteString(eraseLine)
	output.WriteString("\r")
	if cursorCol > 0 {
		fmt.Fprintf(output, "\033[%dC", cursorCol)
	}
	output.WriteString(showCursor)
	_, err := w.file.Write(output.Bytes())
	return err
}

func (w *writer) Advance() error {
	_, err := io.WriteString(w.file, "\r\n")
	return err
}

func (w *writer) RequestCursorPosition() error {
	_, err := io.WriteString(w.file, queryCPR)
	return err
}
