// Package pm knows the JavaScript package managers pmrun can dispatch to.
// Use Detect() to pick the manager for a project directory from its lockfile.
package pm

import (
	"os"
	"path/filepath"
)

// Manager names a package manager binary, e.g. "pnpm".
// Values typed by a user are accepted as-is; see Known.
type Manager string

const (
	Bun  Manager = "bun"
	Pnpm Manager = "pnpm"
	Npm  Manager = "npm"
	Yarn Manager = "yarn"
)

// Fallbacks used when no lockfile is found. The CLI and the editor
// command have always defaulted differently.
const (
	DefaultCLI    = Bun
	DefaultEditor = Pnpm
)

// Lockfile pairs a manager with the file that marks a project as using it.
type Lockfile struct {
	Manager Manager
	File    string
}

// lockfiles is ordered by priority: the first existing file wins.
var lockfiles = [...]Lockfile{
	{Manager: Bun, File: "bun.lockb"},
	{Manager: Pnpm, File: "pnpm-lock.yaml"},
	{Manager: Npm, File: "package-lock.json"},
	{Manager: Yarn, File: "yarn.lock"},
}

// Find returns the highest-priority lockfile present in dir.
// A stat error of any kind counts as "not present".
func Find(dir string) (Lockfile, bool) {
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(dir, lf.File)); err == nil {
			return lf, true
		}
	}
	return Lockfile{}, false
}

// Detect returns the manager whose lockfile is present in dir, or fallback.
func Detect(dir string, fallback Manager) Manager {
	if lf, ok := Find(dir); ok {
		return lf.Manager
	}
	return fallback
}

// Known reports whether m is one of the managers in the lockfile table.
func Known(m Manager) bool {
	for _, lf := range lockfiles {
		if lf.Manager == m {
			return true
		}
	}
	return false
}
