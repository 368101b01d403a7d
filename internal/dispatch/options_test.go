package dispatch

import "testing"

// TestParseArgsManagerAndCommand verifies "--manager pnpm build".
func TestParseArgsManagerAndCommand(t *testing.T) {
	opts, cmds := ParseArgs([]string{"--manager", "pnpm", "build"})

	if opts.Manager != "pnpm" {
		t.Errorf("Manager = %q, want pnpm", opts.Manager)
	}
	if len(cmds) != 1 || cmds[0] != "build" {
		t.Errorf("commands = %v, want [build]", cmds)
	}
}

// TestParseArgsStopsAtFirstCommand verifies flags after the first command token
// belong to the command.
func TestParseArgsStopsAtFirstCommand(t *testing.T) {
	opts, cmds := ParseArgs([]string{"build", "--silent"})

	if opts.Silent {
		t.Error("Silent = true, want false: --silent follows the command")
	}
	if len(cmds) != 1 || cmds[0] != "build --silent" {
		t.Errorf("commands = %v, want [\"build --silent\"]", cmds)
	}
}

// TestParseArgsAllFlags verifies every boolean flag is recognised.
func TestParseArgsAllFlags(t *testing.T) {
	opts, cmds := ParseArgs([]string{"--silent", "--debug", "--dry-run", "install", "lodash"})

	if !opts.Silent || !opts.Debug || !opts.DryRun {
		t.Errorf("opts = %+v, want all flags set", opts)
	}
	if len(cmds) != 1 || cmds[0] != "install lodash" {
		t.Errorf("commands = %v, want [\"install lodash\"]", cmds)
	}
}

// TestParseArgsOnlyFlags verifies that flags with no trailing tokens leave
// the command list empty.
func TestParseArgsOnlyFlags(t *testing.T) {
	opts, cmds := ParseArgs([]string{"--silent", "--dry-run"})

	if !opts.Silent || !opts.DryRun {
		t.Errorf("opts = %+v", opts)
	}
	if len(cmds) != 0 {
		t.Errorf("commands = %v, want none", cmds)
	}
}

// TestParseArgsManagerWithoutValue verifies a trailing --manager is tolerated.
func TestParseArgsManagerWithoutValue(t *testing.T) {
	opts, cmds := ParseArgs([]string{"--manager"})

	if opts.Manager != "" {
		t.Errorf("Manager = %q, want \"\"", opts.Manager)
	}
	if len(cmds) != 0 {
		t.Errorf("commands = %v, want none", cmds)
	}
}

// TestParseArgsUnknownFlagStartsCommand verifies unknown flags are passed on.
func TestParseArgsUnknownFlagStartsCommand(t *testing.T) {
	_, cmds := ParseArgs([]string{"--version"})
	if len(cmds) != 1 || cmds[0] != "--version" {
		t.Errorf("commands = %v, want [--version]", cmds)
	}
}

// TestParseArgsEmpty verifies no args yields zero options and no commands.
func TestParseArgsEmpty(t *testing.T) {
	opts, cmds := ParseArgs(nil)
	if opts != (Options{}) || len(cmds) != 0 {
		t.Errorf("ParseArgs(nil) = %+v, %v", opts, cmds)
	}
}
