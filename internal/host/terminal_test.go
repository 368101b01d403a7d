//go:build !windows

package host

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for the terminal's copy goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// TestPtyTerminalRunsSentText verifies text sent to the terminal is executed
// by its shell and the output is mirrored once shown.
func TestPtyTerminalRunsSentText(t *testing.T) {
	out := &syncBuffer{}
	term, err := startPty("Package Manager", "/bin/sh", t.TempDir(), out)
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer term.Close()

	term.Show()
	term.Show()
	// The echoed input contains the unexpanded form; only the shell prints 42.
	if err := term.SendText("echo pmrun-$((40+2))"); err != nil {
		t.Fatalf("SendText() error = %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(out.String(), "pmrun-42") {
		if time.Now().After(deadline) {
			t.Fatalf("output %q never contained shell result", out.String())
		}
		time.Sleep(20 * time.Millisecond)
	}

	if n := strings.Count(out.String(), "Package Manager"); n != 1 {
		t.Errorf("title printed %d times, want 1", n)
	}
}

// TestPtyTerminalClose verifies Close stops the shell so further text fails.
func TestPtyTerminalClose(t *testing.T) {
	term, err := startPty("Package Manager", "/bin/sh", t.TempDir(), &syncBuffer{})
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	if err := term.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := term.SendText("echo late"); err == nil {
		t.Error("SendText() after Close error = nil, want error")
	}
}
