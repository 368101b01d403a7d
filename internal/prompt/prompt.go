// Package prompt asks the user for a single line of text.
// On a terminal it shows a Bubble Tea text input; otherwise it prints the
// prompt and reads one line, so piped input keeps working.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Field describes one input box.
type Field struct {
	Prompt      string
	Placeholder string
}

// Prompter reads answers from in and renders to out.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
	tty    bool
}

// New returns a Prompter over in/out. Nil streams default to stdin/stdout.
func New(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{in: in, out: out, tty: isTerminal(in)}
}

// Input asks for f and returns the answer. ok is false when the user
// cancelled or submitted nothing.
func (p *Prompter) Input(ctx context.Context, f Field) (value string, ok bool, err error) {
	if !p.tty {
		return p.readLine(f)
	}

	prog := tea.NewProgram(newModel(f),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := prog.Run()
	if err != nil {
		return "", false, err
	}
	m := final.(inputModel)
	if m.cancelled {
		return "", false, nil
	}
	value = m.input.Value()
	return value, value != "", nil
}

func (p *Prompter) readLine(f Field) (string, bool, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.in)
	}
	fmt.Fprint(p.out, label(f.Prompt))

	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	line = strings.TrimRight(line, "\r\n")
	return line, line != "", nil
}

func label(prompt string) string {
	if strings.HasSuffix(prompt, " ") {
		return prompt
	}
	return prompt + ": "
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ── model ─────────────────────────────────────────────────────────────────────

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type inputModel struct {
	input     textinput.Model
	prompt    string
	submitted bool
	cancelled bool
}

func newModel(f Field) inputModel {
	ti := textinput.New()
	ti.Placeholder = f.Placeholder
	ti.Width = 50
	ti.Focus()
	return inputModel{input: ti, prompt: strings.TrimSpace(f.Prompt)}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			m.submitted = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.cancelled {
		return ""
	}
	if m.submitted {
		return promptStyle.Render(m.prompt) + " " + valueStyle.Render(m.input.Value()) + "\n"
	}
	var b strings.Builder
	b.WriteString(promptStyle.Render(m.prompt) + "\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString(helpStyle.Render("enter submit · esc cancel"))
	return b.String()
}
