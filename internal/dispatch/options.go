package dispatch

import "strings"

// Options are the flags accepted in front of the command list.
type Options struct {
	Manager string
	Silent  bool
	Debug   bool
	DryRun  bool
}

// ParseArgs consumes known flags from the start of args. The first token
// that is not one of them and everything after it form one command, so
// "build --silent" is a two-token command rather than a flag. The tokens
// are joined unquoted because the shell interprets the result.
func ParseArgs(args []string) (Options, []string) {
	var opts Options
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--manager":
			if i+1 < len(args) {
				opts.Manager = args[i+1]
			}
			i++
		case "--silent":
			opts.Silent = true
		case "--debug":
			opts.Debug = true
		case "--dry-run":
			opts.DryRun = true
		default:
			return opts, []string{strings.Join(args[i:], " ")}
		}
	}
	return opts, nil
}
