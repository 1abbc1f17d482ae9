// Package histutil keeps the command history of the line editor and the
// state of browsing through it.
package histutil

import (
	"src.conedit.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[cli/histutil] ")

// DefaultCapacity is the capacity used when New is given a non-positive one.
const DefaultCapacity = 100

// History is a bounded list of submitted lines, most recent first, together
// with a browsing cursor.
type History struct {
	entries  []string
	capacity int
	db       DB

	// Index of the selected entry. Only meaningful when entered is true.
	index int
	// Whether the line being edited is an unmodified recall of entries[index].
	entered bool
}

// New creates a History. If db is not nil, the History is seeded with the
// most recent entries of db, db is trimmed to the capacity, and every
// recorded line is appended to it. Errors from db are logged and otherwise
// ignored.
func New(capacity int, db DB) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	h := &History{capacity: capacity, db: db, index: -1}
	if db == nil {
		return h
	}
	cmds, err := db.LastCmds(capacity)
	if err != nil {
		logger.Println("failed to load history:", err)
	}
	for _, cmd := range cmds {
		h.push(cmd.Text)
	}
	if _, err := db.TrimCmds(capacity); err != nil {
		logger.Println("failed to trim history:", err)
	}
	return h
}

// Record adds line to the front of the history, unless it is empty or equal to
// the current front entry. The oldest entry is evicted when the capacity is
// exceeded. Recording ends browsing.
func (h *History) Record(line string) {
	h.Leave()
	h.index = -1
	if !h.push(line) {
		return
	}
	if h.db != nil {
		if _, err := h.db.AddCmd(line); err != nil {
			logger.Println("failed to persist history entry:", err)
		}
	}
}

func (h *History) push(line string) bool {
	if line == "" || (len(h.entries) > 0 && h.entries[0] == line) {
		return false
	}
	if len(h.entries) == h.capacity {
		h.entries = h.entries[:h.capacity-1]
	}
	h.entries = append(h.entries, "")
	copy(h.entries[1:], h.entries)
	h.entries[0] = line
	return true
}

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Capacity returns the maximum number of entries.
func (h *History) Capacity() int { return h.capacity }

// Entries returns a copy of all entries, most recent first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Selected returns the entry that the line being edited is an unmodified
// recall of, if any.
func (h *History) Selected() (string, bool) {
	if !h.entered {
		return "", false
	}
	return h.entries[h.index], true
}

// Browsing returns whether the line being edited is an unmodified recall of a
// history entry.
func (h *History) Browsing() bool { return h.entered }

// Leave ends browsing. It is called whenever the line is modified.
func (h *History) Leave() { h.entered = false }

// Up selects the entry one older than the selected one. When not browsing, it
// selects the most recent entry.
func (h *History) Up() (string, bool) {
	if h.entered {
		// Continue browsing relative to the selected entry.
		return h.selectIndex(h.index + 1)
	}
	// Start browsing from a live edit.
	return h.selectIndex(0)
}

// Down selects the entry one newer than the selected one. When not browsing,
// there is nothing newer, so it is a no-op.
func (h *History) Down() (string, bool) {
	if h.entered {
		return h.selectIndex(h.index - 1)
	}
	return "", false
}

// Oldest selects the oldest entry.
func (h *History) Oldest() (string, bool) { return h.selectIndex(len(h.entries) - 1) }

// Newest selects the most recent entry.
func (h *History) Newest() (string, bool) { return h.selectIndex(0) }

// selectIndex selects the given entry. A target outside the history is a
// no-op, and returns false.
func (h *History) selectIndex(i int) (string, bool) {
	if i < 0 || i >= len(h.entries) {
		return "", false
	}
	h.index = i
	h.entered = true
	return h.entries[i], true
}
