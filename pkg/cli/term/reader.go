package term

import (
	"errors"
	"fmt"
	"os"
	"time"

	"src.conedit.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[cli/term] ")

// Reader reads events from the terminal without blocking.
type Reader interface {
	// Poll returns all events that are available now, possibly none. It does
	// not wait for more input, except for the brief keySeqTimeout used to
	// complete an escape sequence that has started arriving.
	Poll() ([]Event, error)
	// Close releases resources associated with the Reader. It does not close
	// the underlying file.
	Close()
}

// ErrClosed is returned by Reader.Poll after Close has been called.
var ErrClosed = errors.New("reader closed")

var errTimeout = errors.New("timed out")

type seqError struct {
	msg string
	seq string
}

func (err seqError) Error() string {
	return fmt.Sprintf("%s: %q", err.msg, err.seq)
}

// Timeout for bytes in escape sequences. Modern terminal emulators send escape
// sequences very fast, so 10ms is more than sufficient. SSH connections on a
// slow link might be problematic though.
var keySeqTimeout = 10 * time.Millisecond

// NewReader creates a new Reader on the given terminal file.
func NewReader(f *os.File) (Reader, error) {
	return newReader(f)
}
