package term

import "os"

// Setup sets up the terminal so that it is suitable for the line editor. It
// returns a function that restores the original state.
func Setup(in, out *os.File) (func() error, error) {
	return setup(in, out)
}
