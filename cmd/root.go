// Package cmd implements the pmrun CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kb-labs/pmrun/internal/dispatch"
)

var buildVersion = "dev"

// SetVersionInfo is called from main.go with values injected at build time via -ldflags.
// It must be called before Execute().
func SetVersionInfo(version, commit, date string) {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"pmrun %s (commit %s, built %s)\n", version, commit, date,
	))
	rootCmd.Version = version
	buildVersion = version
}

var rootCmd = &cobra.Command{
	Use:   "pmrun [--manager <bun|pnpm|npm|yarn>] [--silent] [--debug] [--dry-run] <command...>",
	Short: "Run a command with the project's package manager",
	Long: `pmrun detects the package manager from the lockfile in the current
directory (bun.lockb, pnpm-lock.yaml, package-lock.json, yarn.lock; first
match wins, bun when none) and runs the command with it.

Flags are only read before the command; everything from the first other
token on is passed to the package manager. Without a command the
"commands" list from runfile.json is run.

Examples:
  pmrun install                 install with the detected manager
  pmrun --manager npm test      force npm
  pmrun --dry-run run build     print the command without running it
  pmrun                         run the commands from runfile.json
  pmrun editor                  interactive package manager terminal`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE:               runRoot,
}

func init() {
	// Declared for help output; dispatch.ParseArgs does the parsing.
	rootCmd.Flags().String("manager", "", "package manager to use instead of detection")
	rootCmd.Flags().Bool("silent", false, "do not print the selected package manager")
	rootCmd.Flags().Bool("debug", false, "print debug logs to stderr")
	rootCmd.Flags().Bool("dry-run", false, "print the commands instead of running them")
}

// exitError carries a non-zero exit code whose cause was already reported.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	d, err := dispatch.New()
	if err != nil {
		return err
	}
	code, err := d.Main(cmd.Context(), args)
	if err != nil {
		return err
	}
	if code != 0 {
		return &exitError{code: code}
	}
	return nil
}

// commandArgs routes args: a leading "editor" goes to cobra, anything else
// is shielded behind "--" so cobra cannot mistake a token such as "help"
// for one of its own commands.
func commandArgs(args []string) []string {
	if len(args) > 0 && args[0] == editorCmd.Name() {
		return args
	}
	return append([]string{"--"}, args...)
}

// Execute is the main entry point called from main.go.
func Execute() {
	rootCmd.SetArgs(commandArgs(os.Args[1:]))
	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return
	}

	var exit *exitError
	if errors.As(err, &exit) {
		os.Exit(exit.code)
	}
	bad := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	fmt.Fprintln(os.Stderr, bad.Render("Error: "+err.Error()))
	os.Exit(1)
}
