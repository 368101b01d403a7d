// Package dispatch implements the pmrun command line flow: resolve the
// command list and the package manager, then hand each command to the
// manager through a shell.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kb-labs/pmrun/internal/logger"
	"github.com/kb-labs/pmrun/internal/nodeversion"
	"github.com/kb-labs/pmrun/internal/pm"
	"github.com/kb-labs/pmrun/internal/prompt"
	"github.com/kb-labs/pmrun/internal/runfile"
)

const managerPrompt = "Please select a package manager (bun, pnpm, npm, yarn): "

// Dispatcher runs package manager commands for one working directory.
type Dispatcher struct {
	Dir    string
	Stdin  io.Reader // nil gives commands no input; pass an *os.File to share it
	Stdout io.Writer
	Stderr io.Writer
	Log    *logger.Logger // created from --debug when nil

	// NodeVersion reports the installed Node.js. Nil skips the advisory.
	NodeVersion func(ctx context.Context) (string, error)
	// Detect picks a manager for Dir when --manager is absent.
	Detect func(dir string) pm.Manager
	// Prompt asks the user for a manager when Detect returns "".
	Prompt func(ctx context.Context) (string, error)
}

// New returns a Dispatcher wired to the process: current directory, standard
// streams, lockfile detection with the CLI default and a terminal prompt.
func New() (*Dispatcher, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("working directory: %w", err)
	}
	ask := prompt.New(os.Stdin, os.Stdout)
	return &Dispatcher{
		Dir:         cwd,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		NodeVersion: nodeversion.Installed,
		Detect: func(dir string) pm.Manager {
			return pm.Detect(dir, pm.DefaultCLI)
		},
		Prompt: func(ctx context.Context) (string, error) {
			answer, _, err := ask.Input(ctx, prompt.Field{Prompt: managerPrompt})
			return answer, err
		},
	}, nil
}

// Main runs the whole CLI flow for args (without the program name) and
// returns the exit code. A non-nil error is fatal and has not been printed.
func (d *Dispatcher) Main(ctx context.Context, args []string) (int, error) {
	opts, commands := ParseArgs(args)
	if d.Log == nil {
		d.Log = logger.New(d.Stderr, opts.Debug)
	}

	if len(commands) == 0 {
		loaded, err := runfile.Load(d.Dir)
		if err != nil {
			return 1, err
		}
		if len(loaded) == 0 {
			fmt.Fprintln(d.Stdout, "Please provide a command to run")
			return 0, nil
		}
		d.Log.Debug("using runfile", "path", runfile.Path(d.Dir), "commands", len(loaded))
		commands = loaded
	}

	d.checkNode(ctx)

	m, err := d.resolveManager(ctx, opts)
	if err != nil {
		return 1, err
	}
	if !opts.Silent {
		fmt.Fprintf(d.Stdout, "Selected package manager: %s\n", m)
	}

	return d.RunAll(ctx, m, commands, opts.DryRun), nil
}

func (d *Dispatcher) checkNode(ctx context.Context) {
	if d.NodeVersion == nil {
		return
	}
	current, err := d.NodeVersion(ctx)
	if err != nil {
		d.log().Debug("skipping node version check", "err", err)
		return
	}
	outdated, err := nodeversion.Outdated(current)
	if err != nil {
		d.log().Debug("skipping node version check", "err", err)
		return
	}
	d.log().Debug("node version", "current", current, "outdated", outdated)
	if outdated {
		nodeversion.Warn(d.Stderr, current)
	}
}

// errNoManager is returned when neither detection nor the prompt produced a manager.
var errNoManager = errors.New("no package manager selected")

func (d *Dispatcher) resolveManager(ctx context.Context, opts Options) (pm.Manager, error) {
	if opts.Manager != "" {
		m := pm.Manager(opts.Manager)
		d.noteUnknown(m)
		return m, nil
	}
	if d.Detect != nil {
		if m := d.Detect(d.Dir); m != "" {
			d.log().Debug("detected package manager", "dir", d.Dir, "manager", m)
			return m, nil
		}
	}

	if !opts.Silent {
		fmt.Fprintln(d.Stdout, "Unable to detect package manager")
	}
	if d.Prompt == nil {
		return "", errNoManager
	}
	answer, err := d.Prompt(ctx)
	if err != nil {
		return "", fmt.Errorf("select package manager: %w", err)
	}
	if answer == "" {
		return "", errNoManager
	}
	m := pm.Manager(answer)
	d.noteUnknown(m)
	return m, nil
}

// noteUnknown notes a manager name outside the lockfile table. It is still run.
func (d *Dispatcher) noteUnknown(m pm.Manager) {
	if !pm.Known(m) {
		d.log().Debug("unknown package manager, running as given", "manager", m)
	}
}

func (d *Dispatcher) log() *logger.Logger {
	if d.Log == nil {
		d.Log = logger.NewDiscard()
	}
	return d.Log
}
