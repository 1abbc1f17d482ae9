package model

import "unicode"

// Terminator marks the end of a submitted line inside the buffer.
const Terminator = '\r'

// Buffer is the text being edited and the insertion position. All positions
// are rune indices.
//
// Text up to the last Terminator has been submitted and waits to be
// extracted with ExtractLine; the rest is the live tail. Every other mutator
// and the cursor are confined to the live tail.
type Buffer struct {
	text   []rune
	cursor int
	dirty  bool
}

// Text returns the content of the buffer. The returned slice must not be
// modified.
func (b *Buffer) Text() []rune { return b.text }

func (b *Buffer) String() string { return string(b.text) }

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int { return len(b.text) }

// Cursor returns the insertion position.
func (b *Buffer) Cursor() int { return b.cursor }

// Dirty returns whether the buffer has changed since the last ClearDirty.
func (b *Buffer) Dirty() bool { return b.dirty }

// ClearDirty clears the flag returned by Dirty.
func (b *Buffer) ClearDirty() { b.dirty = false }

// TailStart returns the index just past the last Terminator, or 0.
func (b *Buffer) TailStart() int {
	for i := len(b.text) - 1; i >= 0; i-- {
		if b.text[i] == Terminator {
			return i + 1
		}
	}
	return 0
}

// Tail returns the live tail. The returned slice must not be modified.
func (b *Buffer) Tail() []rune { return b.text[b.TailStart():] }

// clamp clamps pos into the live tail.
func (b *Buffer) clamp(pos int) int {
	if start := b.TailStart(); pos < start {
		return start
	}
	if pos > len(b.text) {
		return len(b.text)
	}
	return pos
}

// Insert inserts r at pos and leaves the cursor just past it.
func (b *Buffer) Insert(pos int, r rune) {
	pos = b.clamp(pos)
	b.text = append(b.text, 0)
	copy(b.text[pos+1:], b.text[pos:])
	b.text[pos] = r
	b.cursor = pos + 1
	b.dirty = true
}

// Erase removes the runes in [start, end) and moves the cursor to start. The
// bounds are swapped if start > end.
func (b *Buffer) Erase(start, end int) {
	if start > end {
		start, end = end, start
	}
	start, end = b.clamp(start), b.clamp(end)
	b.text = append(b.text[:start], b.text[end:]...)
	b.cursor = start
	b.dirty = true
}

// SetText replaces the live tail and moves the cursor to the end.
func (b *Buffer) SetText(s string) {
	b.text = append(b.text[:b.TailStart()], []rune(s)...)
	b.cursor = len(b.text)
	b.dirty = true
}

// MoveTo moves the cursor.
func (b *Buffer) MoveTo(pos int) {
	b.cursor = b.clamp(pos)
	b.dirty = true
}

// Clear empties the live tail.
func (b *Buffer) Clear() { b.SetText("") }

// IndexTerminator returns the index of the first Terminator, or -1.
func (b *Buffer) IndexTerminator() int {
	for i, r := range b.text {
		if r == Terminator {
			return i
		}
	}
	return -1
}

// ExtractLine removes the first submitted line and its Terminator, and
// returns the line. The cursor keeps its place in the remaining text.
func (b *Buffer) ExtractLine() (string, bool) {
	i := b.IndexTerminator()
	if i < 0 {
		return "", false
	}
	line := string(b.text[:i])
	n := copy(b.text, b.text[i+1:])
	b.text = b.text[:n]
	b.cursor = max(0, b.cursor-(i+1))
	b.dirty = true
	return line, true
}

// isWordBoundary returns whether i separates whitespace from
// non-whitespace, or is either end of text.
func isWordBoundary(text []rune, i int) bool {
	if i <= 0 || i >= len(text) {
		return true
	}
	return unicode.IsSpace(text[i-1]) != unicode.IsSpace(text[i])
}

// wordLeft returns the nearest word boundary strictly left of pos, or 0.
func wordLeft(text []rune, pos int) int {
	for i := pos - 1; i > 0; i-- {
		if isWordBoundary(text, i) {
			return i
		}
	}
	return 0
}

// wordRight returns the nearest word boundary strictly right of pos, or
// len(text).
func wordRight(text []rune, pos int) int {
	for i := pos + 1; i < len(text); i++ {
		if isWordBoundary(text, i) {
			return i
		}
	}
	return len(text)
}
