package testutil

import (
	"os"
)

// MustPipe calls os.Pipe and panics if an error is returned.
func MustPipe() (*os.File, *os.File) {
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	return r, w
}

// MustWriteFile calls os.WriteFile and panics if an error occurs.
func MustWriteFile(filename, data string) {
	err := os.WriteFile(filename, []byte(data), 0600)
	if err != nil {
		panic(err)
	}
}
