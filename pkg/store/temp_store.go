package store

import (
	"path/filepath"

	"src.conedit.dev/pkg/testutil"
)

// Cleanuper is the subset of testing.TB used by MustTempStore.
type Cleanuper interface {
	testutil.Cleanuper
	TempDir() string
}

// MustTempStore returns a Store backed by a file in a temporary directory. The
// Store is closed when the test finishes. It panics if the Store can't be
// created.
func MustTempStore(c Cleanuper) Store {
	st, err := NewStore(filepath.Join(c.TempDir(), "history.db"))
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() { st.Close() })
	return st
}
