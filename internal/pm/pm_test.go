package pm

import (
	"os"
	"path/filepath"
	"testing"
)

// touch creates empty files named names inside dir.
func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// TestDetectSingleLockfile verifies that each lockfile on its own selects its manager.
func TestDetectSingleLockfile(t *testing.T) {
	want := map[string]Manager{
		"bun.lockb":         Bun,
		"pnpm-lock.yaml":    Pnpm,
		"package-lock.json": Npm,
		"yarn.lock":         Yarn,
	}
	for file, m := range want {
		dir := t.TempDir()
		touch(t, dir, file)

		if got := Detect(dir, DefaultCLI); got != m {
			t.Errorf("Detect(%s) = %q, want %q", file, got, m)
		}
	}
}

// TestDetectFallback verifies that an empty directory yields the supplied default.
func TestDetectFallback(t *testing.T) {
	dir := t.TempDir()

	if got := Detect(dir, DefaultCLI); got != Bun {
		t.Errorf("Detect(empty, DefaultCLI) = %q, want %q", got, Bun)
	}
	if got := Detect(dir, DefaultEditor); got != Pnpm {
		t.Errorf("Detect(empty, DefaultEditor) = %q, want %q", got, Pnpm)
	}
}

// TestDetectPriority verifies that with several lockfiles the earliest in
// bun, pnpm, npm, yarn order wins.
func TestDetectPriority(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "yarn.lock", "package-lock.json")
	if got := Detect(dir, DefaultCLI); got != Npm {
		t.Errorf("Detect(yarn+npm) = %q, want %q", got, Npm)
	}

	touch(t, dir, "pnpm-lock.yaml")
	if got := Detect(dir, DefaultCLI); got != Pnpm {
		t.Errorf("Detect(yarn+npm+pnpm) = %q, want %q", got, Pnpm)
	}

	touch(t, dir, "bun.lockb")
	if got := Detect(dir, DefaultCLI); got != Bun {
		t.Errorf("Detect(all) = %q, want %q", got, Bun)
	}
}

// TestDetectMissingDir verifies that probing a non-existent directory is not an error.
func TestDetectMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")
	if got := Detect(dir, DefaultEditor); got != Pnpm {
		t.Errorf("Detect(missing) = %q, want %q", got, Pnpm)
	}
}

// TestFindReportsLockfile verifies that Find returns the matching table entry.
func TestFindReportsLockfile(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "yarn.lock")

	lf, ok := Find(dir)
	if !ok {
		t.Fatal("Find() ok = false, want true")
	}
	if lf.Manager != Yarn || lf.File != "yarn.lock" {
		t.Errorf("Find() = %+v, want {yarn yarn.lock}", lf)
	}
}

// TestLockfileOrder verifies the priority order of the table.
func TestLockfileOrder(t *testing.T) {
	order := []Manager{Bun, Pnpm, Npm, Yarn}
	if len(lockfiles) != len(order) {
		t.Fatalf("lockfiles len = %d, want %d", len(lockfiles), len(order))
	}
	for i, m := range order {
		if lockfiles[i].Manager != m {
			t.Errorf("lockfiles[%d] = %q, want %q", i, lockfiles[i].Manager, m)
		}
	}
}

// TestKnown verifies table membership checks.
func TestKnown(t *testing.T) {
	for _, m := range []Manager{Bun, Pnpm, Npm, Yarn} {
		if !Known(m) {
			t.Errorf("Known(%q) = false, want true", m)
		}
	}
	if Known("deno") {
		t.Error(`Known("deno") = true, want false`)
	}
}
