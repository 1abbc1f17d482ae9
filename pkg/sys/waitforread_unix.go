//go:build unix

package sys

import (
	"time"

	"golang.org/x/sys/unix"
)

// WaitForRead blocks until any of the given file descriptors is ready to be
// read or timeout. A negative timeout means no timeout and a zero timeout
// returns immediately. It returns a boolean array indicating which file
// descriptors are ready to be read and any possible error.
//
// The descriptors are taken as ints rather than *os.File, since calling Fd on
// an *os.File puts it in blocking mode.
func WaitForRead(timeout time.Duration, fds ...int) (ready []bool, err error) {
	pollFds := make([]unix.PollFd, len(fds))
	for i, fd := range fds {
		pollFds[i] = unix.PollFd{Fd: int32(fd), Events: unix.POLLIN}
	}
	ms := -1
	if timeout >= 0 {
		ms = int(timeout / time.Millisecond)
	}
	for {
		_, err = unix.Poll(pollFds, ms)
		if err != unix.EINTR {
			break
		}
	}
	ready = make([]bool, len(fds))
	if err != nil {
		return ready, err
	}
	for i := range pollFds {
		ready[i] = pollFds[i].Revents&(unix.POLLIN|unix.POLLHUP) != 0
	}
	return ready, nil
}
