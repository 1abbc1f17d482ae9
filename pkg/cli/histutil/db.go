package histutil

import (
	"src.conedit.dev/pkg/store"
)

// DB is the interface of the storage database used by History. It is
// satisfied by store.Store.
type DB interface {
	AddCmd(text string) (int, error)
	LastCmds(n int) ([]store.Cmd, error)
	TrimCmds(keep int) (int, error)
}

// TestDB is an implementation of the DB interface that can be used for testing.
type TestDB struct {
	AllCmds []string

	OneOffError error
}

func (s *TestDB) error() error {
	err := s.OneOffError
	s.OneOffError = nil
	return err
}

func (s *TestDB) AddCmd(text string) (int, error) {
	if s.OneOffError != nil {
		return -1, s.error()
	}
	s.AllCmds = append(s.AllCmds, text)
	return len(s.AllCmds) - 1, nil
}

func (s *TestDB) LastCmds(n int) ([]store.Cmd, error) {
	if s.OneOffError != nil {
		return nil, s.error()
	}
	from := len(s.AllCmds) - n
	if from < 0 {
		from = 0
	}
	var cmds []store.Cmd
	for i := from; i < len(s.AllCmds); i++ {
		cmds = append(cmds, store.Cmd{Text: s.AllCmds[i], Seq: i})
	}
	return cmds, nil
}

func (s *TestDB) TrimCmds(keep int) (int, error) {
	if s.OneOffError != nil {
		return 0, s.error()
	}
	if len(s.AllCmds) <= keep {
		return 0, nil
	}
	n := len(s.AllCmds) - keep
	s.AllCmds = s.AllCmds[n:]
	return n, nil
}
