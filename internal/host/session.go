// Package host runs the editor integration inside a plain terminal.
// A Session plays the editor: it keeps the command registry, shows input
// boxes as terminal prompts and backs editor terminals with a shell on a
// pseudo-terminal.
package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/kb-labs/pmrun/internal/editor"
	"github.com/kb-labs/pmrun/internal/logger"
	"github.com/kb-labs/pmrun/internal/prompt"
)

// Options configures a Session.
type Options struct {
	// Folders are the workspace folders; the first one is the project root.
	Folders []string
	// Shell started in each terminal. Defaults to $SHELL, then /bin/sh.
	Shell string
	In    io.Reader
	Out   io.Writer
	Log   *logger.Logger
	// NewTerminal overrides terminal creation. Nil starts a shell on a pty.
	NewTerminal func(name, dir string) (editor.Terminal, error)
}

// Session is a terminal-hosted editor. It implements editor.Host.
type Session struct {
	folders     []string
	out         io.Writer
	log         *logger.Logger
	prompt      *prompt.Prompter
	newTerminal func(name, dir string) (editor.Terminal, error)

	mu        sync.Mutex
	commands  map[string]func(ctx context.Context) error
	terminals []editor.Terminal
	dismissed bool
}

// New creates a Session from opts.
func New(opts Options) *Session {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	log := opts.Log
	if log == nil {
		log = logger.NewDiscard()
	}
	s := &Session{
		folders:     append([]string(nil), opts.Folders...),
		out:         out,
		log:         log,
		prompt:      prompt.New(opts.In, out),
		newTerminal: opts.NewTerminal,
		commands:    make(map[string]func(ctx context.Context) error),
	}
	if s.newTerminal == nil {
		shell := opts.Shell
		if shell == "" {
			shell = defaultShell()
		}
		s.newTerminal = func(name, dir string) (editor.Terminal, error) {
			return startPty(name, shell, dir, out)
		}
	}
	return s
}

type disposeFunc func()

func (f disposeFunc) Dispose() { f() }

// RegisterCommand makes handler available under id until disposed.
func (s *Session) RegisterCommand(id string, handler func(ctx context.Context) error) editor.Disposable {
	s.mu.Lock()
	s.commands[id] = handler
	s.mu.Unlock()
	s.log.Debug("registered command", "id", id)

	return disposeFunc(func() {
		s.mu.Lock()
		delete(s.commands, id)
		s.mu.Unlock()
	})
}

// ExecuteCommand runs the handler registered under id.
func (s *Session) ExecuteCommand(ctx context.Context, id string) error {
	s.mu.Lock()
	handler, ok := s.commands[id]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("command %q not found", id)
	}
	return handler(ctx)
}

// ShowInputBox asks for one line of text. Dismissing it ends Serve.
func (s *Session) ShowInputBox(ctx context.Context, opts editor.InputBoxOptions) (string, bool, error) {
	value, ok, err := s.prompt.Input(ctx, prompt.Field{
		Prompt:      opts.Prompt,
		Placeholder: opts.Placeholder,
	})
	if err == nil && !ok {
		s.mu.Lock()
		s.dismissed = true
		s.mu.Unlock()
	}
	return value, ok, err
}

// WorkspaceFolders returns the session's folders.
func (s *Session) WorkspaceFolders() []string {
	return append([]string(nil), s.folders...)
}

// CreateTerminal starts a terminal rooted at the first workspace folder.
func (s *Session) CreateTerminal(name string) (editor.Terminal, error) {
	dir := ""
	if len(s.folders) > 0 {
		dir = s.folders[0]
	}
	t, err := s.newTerminal(name, dir)
	if err != nil {
		return nil, fmt.Errorf("create terminal %q: %w", name, err)
	}
	s.log.Debug("created terminal", "name", name, "dir", dir)

	s.mu.Lock()
	s.terminals = append(s.terminals, t)
	s.mu.Unlock()
	return t, nil
}

// Serve invokes the package manager command until the user dismisses its
// input box or ctx is done.
func (s *Session) Serve(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.mu.Lock()
		s.dismissed = false
		s.mu.Unlock()

		if err := s.ExecuteCommand(ctx, editor.CommandID); err != nil {
			return err
		}

		s.mu.Lock()
		done := s.dismissed
		s.mu.Unlock()
		if done {
			return nil
		}
	}
}

// Close shuts down every terminal the session created.
func (s *Session) Close() error {
	s.mu.Lock()
	terminals := s.terminals
	s.terminals = nil
	s.mu.Unlock()

	var errs []error
	for _, t := range terminals {
		if c, ok := t.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func defaultShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}
