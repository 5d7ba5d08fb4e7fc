package pipeline

import "strings"

// Command is one fully expanded external invocation: the tool path and its
// argument vector. It is built the same way for execution and for dry-run
// preview, so the printed line is byte-for-byte what would run.
type Command struct {
	Path string
	Args []string
}

// String renders the command line exactly as it would be executed.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Path
	}
	return c.Path + " " + strings.Join(c.Args, " ")
}
