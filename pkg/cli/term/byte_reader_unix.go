//go:build unix

package term

import (
	"io"
	"time"

	"golang.org/x/sys/unix"

	"src.conedit.dev/pkg/sys"
)

// A helper for reading bytes from a file descriptor with a timeout.
type byteReaderWithTimeout interface {
	// ReadByteWithTimeout reads a single byte, waiting at most timeout. A
	// negative timeout means no timeout and a zero timeout does not wait.
	ReadByteWithTimeout(timeout time.Duration) (byte, error)
	// Buffered returns whether any byte can be returned without waiting.
	Buffered() bool
}

type fdReader struct {
	fd   int
	buf  []byte
	next int
}

func (r *fdReader) Buffered() bool {
	if r.next < len(r.buf) {
		return true
	}
	ready, err := sys.WaitForRead(0, r.fd)
	return err == nil && ready[0]
}

func (r *fdReader) ReadByteWithTimeout(timeout time.Duration) (byte, error) {
	if r.next < len(r.buf) {
		b := r.buf[r.next]
		r.next++
		return b, nil
	}
	ready, err := sys.WaitForRead(timeout, r.fd)
	if err != nil {
		return 0, err
	}
	if !ready[0] {
		return 0, errTimeout
	}
	var chunk [256]byte
	n, err := unix.Read(r.fd, chunk[:])
	if err != nil {
		if err == unix.EAGAIN || err == unix.EINTR {
			return 0, errTimeout
		}
		return 0, err
	}
	if n <= 0 {
		return 0, io.EOF
	}
	r.buf = append(r.buf[:0], chunk[:n]...)
	r.next = 1
	return r.buf[0], nil
}
