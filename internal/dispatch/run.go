package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/kb-labs/pmrun/internal/pm"
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// RunAll runs commands in order and stops at the first non-zero exit code,
// which it returns. It returns 0 when every command succeeds.
func (d *Dispatcher) RunAll(ctx context.Context, m pm.Manager, commands []string, dryRun bool) int {
	for _, c := range commands {
		if code := d.Run(ctx, m, c, dryRun); code != 0 {
			return code
		}
	}
	return 0
}

// Run hands one command to m and returns its exit code. In dry-run mode the
// composed line is printed instead. A command that cannot be started is
// reported on Stderr and yields 1.
func (d *Dispatcher) Run(ctx context.Context, m pm.Manager, command string, dryRun bool) int {
	line := pm.ShellLine(m, command)
	if dryRun {
		fmt.Fprintf(d.Stdout, "[Dry Run] Running command: %s\n", line)
		return 0
	}

	d.log().Debug("running", "line", line)
	code, err := d.shell(ctx, line)
	if err != nil {
		fmt.Fprintln(d.Stderr, errStyle.Render("Error executing command: "+err.Error()))
		return 1
	}
	return code
}

// shell interprets line with inherited standard streams. External programs,
// the manager included, run as child processes of the interpreter.
func (d *Dispatcher) shell(ctx context.Context, line string) (int, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(line), "")
	if err != nil {
		return 0, err
	}

	opts := []interp.RunnerOption{interp.StdIO(d.Stdin, d.Stdout, d.Stderr)}
	if d.Dir != "" {
		opts = append(opts, interp.Dir(d.Dir))
	}
	runner, err := interp.New(opts...)
	if err != nil {
		return 0, err
	}

	err = runner.Run(ctx, file)
	if status, ok := interp.IsExitStatus(err); ok {
		return int(status), nil
	}
	if err != nil {
		return 0, err
	}
	return 0, nil
}
