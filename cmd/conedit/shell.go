package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"src.conedit.dev/pkg/cli/histutil"
	"src.conedit.dev/pkg/store"
)

var builtins = []string{"echo", "exit", "history", "prompt", "quit"}

type console interface {
	SetPrompt(string)
	SetEchoEnabled(bool)
	History() *histutil.History
}

type shell struct {
	c   console
	out io.Writer
	// Persistent history; nil if history is only kept in memory.
	db store.Store
}

// The terminal is in raw mode, so lines end with \r\n.
func (sh *shell) println(a ...any) {
	fmt.Fprint(sh.out, a...)
	io.WriteString(sh.out, "\r\n")
}

// handle runs one line, and returns whether the shell should exit.
func (sh *shell) handle(line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimLeft(line, " "), " ")
	switch strings.TrimSpace(cmd) {
	case "":
	case "exit", "quit":
		return true
	case "prompt":
		sh.c.SetPrompt(arg)
	case "echo":
		switch strings.TrimSpace(arg) {
		case "on":
			sh.c.SetEchoEnabled(true)
		case "off":
			sh.c.SetEchoEnabled(false)
		default:
			sh.println(line)
		}
	case "history":
		if err := sh.history(strings.Fields(arg)); err != nil {
			sh.println("history: ", err)
		}
	default:
		sh.println(line)
	}
	return false
}

// history runs the history builtin. Without arguments it lists the history,
// numbered by sequence number if it is persistent. "show <seq>" and
// "rm <seq>" act on one persisted entry.
func (sh *shell) history(args []string) error {
	if len(args) == 0 {
		if sh.db == nil {
			entries := sh.c.History().Entries()
			for i := len(entries) - 1; i >= 0; i-- {
				sh.println(fmt.Sprintf("%4d  %s", len(entries)-i, entries[i]))
			}
			return nil
		}
		next, err := sh.db.NextCmdSeq()
		if err != nil {
			return err
		}
		cmds, err := sh.db.CmdsWithSeq(0, next)
		if err != nil {
			return err
		}
		for _, cmd := range cmds {
			sh.println(fmt.Sprintf("%4d  %s", cmd.Seq, cmd.Text))
		}
		return nil
	}
	if len(args) != 2 || (args[0] != "show" && args[0] != "rm") {
		return errHistoryUsage
	}
	if sh.db == nil {
		return errNoHistoryDB
	}
	seq, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad sequence number %q", args[1])
	}
	if args[0] == "show" {
		text, err := sh.db.Cmd(seq)
		if err != nil {
			return err
		}
		sh.println(text)
		return nil
	}
	return sh.db.DelCmd(seq)
}

var (
	errHistoryUsage = errors.New("usage: history [show|rm <seq>]")
	errNoHistoryDB  = errors.New("no history database")
)

// startTicker writes a line to out at every interval until the returned
// function is called. The lines are written without regard to the line
// editor, which repaints its line afterwards.
func startTicker(out io.Writer, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		for {
			select {
			case t := <-ticker.C:
				fmt.Fprintf(out, "[%s] tick\r\n", t.Format(time.TimeOnly))
			case <-done:
				return
			}
		}
	}()
	return func() {
		ticker.Stop()
		close(done)
		<-stopped
	}
}
