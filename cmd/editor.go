package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kb-labs/pmrun/internal/editor"
	"github.com/kb-labs/pmrun/internal/host"
	"github.com/kb-labs/pmrun/internal/logger"
)

var editorCmd = &cobra.Command{
	Use:   "editor [folder...]",
	Short: "Open an interactive package manager terminal",
	Long: `Runs the changeelog.runPackageManager editor command in this terminal.

Each prompt takes one package manager command (e.g. "install lodash"). It is
prefixed with the manager detected in the first folder (pnpm when none) and
typed into the "Package Manager" shell. Press esc or submit an empty line
to quit. Folders default to the current directory.`,
	RunE: runEditor,
}

var (
	flagShell       string
	flagEditorDebug bool
)

func init() {
	rootCmd.AddCommand(editorCmd)
	editorCmd.Flags().StringVar(&flagShell, "shell", "", "shell started in the terminal (default $SHELL)")
	editorCmd.Flags().BoolVar(&flagEditorDebug, "debug", false, "write debug lines to the session log")
}

func runEditor(cmd *cobra.Command, args []string) error {
	folders := make([]string, 0, len(args))
	for _, a := range args {
		abs, err := filepath.Abs(a)
		if err != nil {
			return err
		}
		folders = append(folders, abs)
	}
	if len(folders) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		folders = append(folders, cwd)
	}

	log := openSessionLog(flagEditorDebug)
	defer log.Close()

	sess := host.New(host.Options{
		Folders: folders,
		Shell:   flagShell,
		In:      os.Stdin,
		Out:     os.Stdout,
		Log:     log,
	})
	defer sess.Close()

	ext := editor.Activate(sess, log)
	defer ext.Deactivate()

	printBanner(folders[0], log.LogPath())
	return sess.Serve(cmd.Context())
}

// openSessionLog logs to the user cache dir, or nowhere if that is unavailable.
func openSessionLog(debug bool) *logger.Logger {
	cache, err := os.UserCacheDir()
	if err != nil {
		return logger.NewDiscard()
	}
	log, err := logger.NewFile(filepath.Join(cache, "pmrun"), debug)
	if err != nil {
		return logger.NewDiscard()
	}
	return log
}

func printBanner(folder, logPath string) {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	val := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	fmt.Println()
	fmt.Println(title.Render("pmrun editor") + dim.Render("  "+buildVersion))
	fmt.Printf("  Folder:  %s\n", val.Render(folder))
	if logPath != "" {
		fmt.Printf("  Log:     %s\n", dim.Render(logPath))
	}
	fmt.Println()
}
