// Package nodeversion checks the installed Node.js against the minimum the
// supported package managers need. The check is advisory only.
package nodeversion

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/lipgloss"
)

// Minimum is the supported Node.js range.
const Minimum = ">=18.0.0"

var minimum = semver.MustParse(strings.TrimPrefix(Minimum, ">="))

// Installed returns the output of `node --version`, e.g. "v20.11.1".
func Installed(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "node", "--version").Output()
	if err != nil {
		return "", fmt.Errorf("node --version: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Outdated reports whether current is older than Minimum.
// Versions compare semantically, so v9.11.2 is outdated and v100.0.0 is not.
func Outdated(current string) (bool, error) {
	v, err := semver.NewVersion(current)
	if err != nil {
		return false, fmt.Errorf("parse node version %q: %w", current, err)
	}
	return v.LessThan(minimum), nil
}

// Warn writes the upgrade advisory for current to w.
func Warn(w io.Writer, current string) {
	warn := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	fmt.Fprintln(w, warn.Render(fmt.Sprintf(
		"Your Node.js version (%s) is outdated. Please upgrade to at least %s.", current, Minimum,
	)))
}
