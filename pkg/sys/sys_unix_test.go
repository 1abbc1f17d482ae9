//go:build unix

package sys

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"

	"src.conedit.dev/pkg/testutil"
)

func TestWinSize(t *testing.T) {
	ptmx, tty := openPty(t)
	err := pty.Setsize(ptmx, &pty.Winsize{Rows: 30, Cols: 100})
	if err != nil {
		t.Fatal(err)
	}
	row, col := WinSize(tty)
	if row != 30 || col != 100 {
		t.Errorf("WinSize -> (%v, %v), want (30, 100)", row, col)
	}
}

func TestWinSize_NotTerminal(t *testing.T) {
	r, w := testutil.MustPipe()
	defer closeAll(r, w)
	row, col := WinSize(r)
	if row != -1 || col != -1 {
		t.Errorf("WinSize -> (%v, %v), want (-1, -1)", row, col)
	}
}

func TestIsATTY(t *testing.T) {
	_, tty := openPty(t)
	if !IsATTY(tty.Fd()) {
		t.Errorf("IsATTY(tty) -> false, want true")
	}
	r, w := testutil.MustPipe()
	defer closeAll(r, w)
	if IsATTY(r.Fd()) {
		t.Errorf("IsATTY(pipe) -> true, want false")
	}
}

func TestWaitForRead(t *testing.T) {
	r0, w0 := testutil.MustPipe()
	r1, w1 := testutil.MustPipe()
	defer closeAll(r0, w0, r1, w1)

	w0.WriteString("x")
	ready, err := WaitForRead(-1, int(r0.Fd()), int(r1.Fd()))
	if err != nil {
		t.Error("WaitForRead errors:", err)
	}
	if !ready[0] {
		t.Error("Want ready[0]")
	}
	if ready[1] {
		t.Error("Don't want ready[1]")
	}
}

func TestWaitForRead_ZeroTimeout(t *testing.T) {
	r, w := testutil.MustPipe()
	defer closeAll(r, w)

	start := time.Now()
	ready, err := WaitForRead(0, int(r.Fd()))
	if err != nil {
		t.Error("WaitForRead errors:", err)
	}
	if ready[0] {
		t.Error("Don't want ready[0]")
	}
	if d := time.Since(start); d > time.Second {
		t.Errorf("WaitForRead with zero timeout took %v", d)
	}
}

func TestWaitForRead_Pty(t *testing.T) {
	ptmx, tty := openPty(t)
	ptmx.WriteString("x\n")
	ready, err := WaitForRead(time.Second, int(tty.Fd()))
	if err != nil {
		t.Error("WaitForRead errors:", err)
	}
	if !ready[0] {
		t.Error("Want tty to be ready")
	}
}

func openPty(t *testing.T) (ptmx, tty *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("pty not available:", err)
	}
	t.Cleanup(func() { closeAll(ptmx, tty) })
	return ptmx, tty
}

func closeAll(files ...io.Closer) {
	for _, file := range files {
		file.Close()
	}
}
