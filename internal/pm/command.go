package pm

import "strings"

// npm needs "run"/"exec" to reach package scripts; everything else is one
// of its own subcommands.
func npmPassthrough(first string) bool {
	return first == "run" || first == "exec"
}

// NormalizeArgs returns the argument string the CLI passes to m.
// For npm commands that do not start with a run/exec token the tokens are
// re-joined with single spaces; order never changes. Other input is
// returned verbatim.
func NormalizeArgs(m Manager, command string) string {
	if m != Npm {
		return command
	}
	fields := strings.Fields(command)
	if len(fields) == 0 || npmPassthrough(fields[0]) {
		return command
	}
	return strings.Join(fields, " ")
}

// ShellLine is the full line the CLI hands to the shell for command.
func ShellLine(m Manager, command string) string {
	return string(m) + " " + NormalizeArgs(m, command)
}

// TerminalCommand is the text the editor command types into its terminal.
// The run/exec check is a plain prefix test, so "runner" counts as "run".
func TerminalCommand(m Manager, command string) string {
	if m == Npm && !strings.HasPrefix(command, "run") && !strings.HasPrefix(command, "exec") {
		return "npm " + command
	}
	return string(m) + " " + command
}
