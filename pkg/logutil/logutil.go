// Package logutil provides logging utilities.
//
// Loggers obtained from GetLogger discard everything until an output is set.
// The editor owns the terminal, so log output must never go there; the usual
// destination is a file set with SetOutputFile.
package logutil

import (
	"io"
	"log"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Limits for the rotated log file.
const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 28
)

var (
	mutex   sync.Mutex
	out     io.Writer = io.Discard
	file    *lumberjack.Logger
	loggers []*log.Logger
)

// GetLogger gets a logger with a prefix.
func GetLogger(prefix string) *log.Logger {
	mutex.Lock()
	defer mutex.Unlock()
	logger := log.New(out, prefix, log.LstdFlags|log.Lmicroseconds)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to the
// new io.Writer. If the old output was a file opened by SetOutputFile, it is
// closed.
func SetOutput(newout io.Writer) {
	mutex.Lock()
	defer mutex.Unlock()
	setOutput(newout)
	if file != nil && newout != io.Writer(file) {
		file.Close()
		file = nil
	}
}

func setOutput(newout io.Writer) {
	out = newout
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger to
// the named file, which is rotated once it grows past a fixed size. If the old
// output was a file opened by SetOutputFile, it is closed. An empty name
// discards log output.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	newFile := &lumberjack.Logger{
		Filename:   fname,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
	}
	// lumberjack opens the file lazily; do a zero-length write so that a bad
	// path is reported here rather than swallowed by the first log call.
	if _, err := newFile.Write(nil); err != nil {
		return err
	}
	mutex.Lock()
	defer mutex.Unlock()
	if file != nil {
		file.Close()
	}
	file = newFile
	setOutput(newFile)
	return nil
}
