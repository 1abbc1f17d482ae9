//go:build unix

package term

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

func setup(in, _ *os.File) (func() error, error) {
	fd := int(in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("make raw: %w", err)
	}
	return func() error { return term.Restore(fd, state) }, nil
}
