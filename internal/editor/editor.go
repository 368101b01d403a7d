// Package editor is the editor integration for pmrun. It registers one
// command that asks for a package manager command and types it, prefixed
// with the detected manager, into a dedicated terminal.
//
// The package talks to its editor only through Host, so any editor (or the
// terminal session in package host) can run it.
package editor

import (
	"context"

	"github.com/kb-labs/pmrun/internal/logger"
	"github.com/kb-labs/pmrun/internal/pm"
)

const (
	// CommandID is the identifier the command is registered under.
	CommandID = "changeelog.runPackageManager"
	// TerminalName is the title of the terminal commands are sent to.
	TerminalName = "Package Manager"

	inputPrompt      = "Enter package manager command"
	inputPlaceholder = "e.g., install lodash"
)

// InputBoxOptions configures Host.ShowInputBox.
type InputBoxOptions struct {
	Prompt      string
	Placeholder string
}

// Disposable releases something registered with a Host.
type Disposable interface {
	Dispose()
}

// Terminal is an editor terminal panel.
type Terminal interface {
	// Show brings the terminal to the foreground.
	Show()
	// SendText types text into the terminal followed by a newline.
	SendText(text string) error
}

// Host is the part of the editor API the extension uses.
type Host interface {
	RegisterCommand(id string, handler func(ctx context.Context) error) Disposable
	// ShowInputBox returns ok == false when the user dismissed the box or
	// entered nothing.
	ShowInputBox(ctx context.Context, opts InputBoxOptions) (value string, ok bool, err error)
	// WorkspaceFolders returns the open folders' filesystem paths.
	WorkspaceFolders() []string
	CreateTerminal(name string) (Terminal, error)
}

// Extension is one activation of the editor integration.
type Extension struct {
	host     Host
	log      *logger.Logger
	command  Disposable
	terminal Terminal
}

// Activate registers the command with host and returns the live extension.
func Activate(host Host, log *logger.Logger) *Extension {
	if log == nil {
		log = logger.NewDiscard()
	}
	e := &Extension{host: host, log: log}
	log.Info("Extension activated")
	e.command = host.RegisterCommand(CommandID, e.handle)
	return e
}

// Deactivate disposes the command registration.
func (e *Extension) Deactivate() {
	if e.command != nil {
		e.command.Dispose()
		e.command = nil
	}
}

func (e *Extension) handle(ctx context.Context) error {
	command, ok, err := e.host.ShowInputBox(ctx, InputBoxOptions{
		Prompt:      inputPrompt,
		Placeholder: inputPlaceholder,
	})
	if err != nil {
		return err
	}
	if !ok || command == "" {
		return nil
	}
	return e.RunPackageManagerCommand(command)
}

// DetectManager detects the manager of the first workspace folder. With no
// folder open it returns pm.DefaultEditor without probing.
func (e *Extension) DetectManager() pm.Manager {
	folders := e.host.WorkspaceFolders()
	if len(folders) == 0 {
		return pm.DefaultEditor
	}
	return pm.Detect(folders[0], pm.DefaultEditor)
}

// RunPackageManagerCommand sends command, prefixed with the detected
// manager, to the extension's terminal. The terminal is created on first
// use and reused for the rest of the activation.
func (e *Extension) RunPackageManagerCommand(command string) error {
	m := e.DetectManager()
	e.log.Infof("Detected package manager: %s", m)

	if e.terminal == nil {
		t, err := e.host.CreateTerminal(TerminalName)
		if err != nil {
			return err
		}
		e.terminal = t
	}

	e.terminal.Show()
	return e.terminal.SendText(pm.TerminalCommand(m, command))
}
