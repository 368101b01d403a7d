package host

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/creack/pty"
)

var titleStyle = lipgloss.NewStyle().Bold(true).
	Foreground(lipgloss.Color("0")).
	Background(lipgloss.Color("12"))

// ptyTerminal is a shell running on a pseudo-terminal. Text sent to it is
// typed into the shell; its output is mirrored to out once shown.
type ptyTerminal struct {
	name string
	out  io.Writer
	cmd  *exec.Cmd
	tty  *os.File

	show sync.Once
}

func startPty(name, shell, dir string, out io.Writer) (*ptyTerminal, error) {
	cmd := exec.Command(shell)
	cmd.Dir = dir
	f, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", shell, err)
	}
	return &ptyTerminal{
		name: name,
		out:  out,
		cmd:  cmd,
		tty:  f,
	}, nil
}

// Show prints the title bar and starts mirroring output. Later calls are no-ops.
func (t *ptyTerminal) Show() {
	t.show.Do(func() {
		fmt.Fprintln(t.out, titleStyle.Render(" "+t.name+" "))
		go func() {
			// Copy ends with an error once the shell exits and the pty closes.
			_, _ = io.Copy(t.out, t.tty)
		}()
	})
}

func (t *ptyTerminal) SendText(text string) error {
	if _, err := io.WriteString(t.tty, text+"\n"); err != nil {
		return fmt.Errorf("send to %s: %w", t.name, err)
	}
	return nil
}

// Close stops the shell and releases the pty.
func (t *ptyTerminal) Close() error {
	if t.cmd.Process != nil {
		_ = t.cmd.Process.Kill()
	}
	_ = t.cmd.Wait()
	return t.tty.Close()
}
