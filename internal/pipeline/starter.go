package pipeline

import (
	"context"
	"io"
	"os/exec"
)

// Starter runs one external command synchronously. The pipeline runner only
// talks to this interface; tests substitute a recording fake to assert that
// dry-run never creates a process.
type Starter interface {
	Run(ctx context.Context, cmd Command) error
}

// execStarter is the production Starter backed by os/exec. The child
// inherits the given output streams; the orchestrator never captures or
// interprets tool output.
type execStarter struct {
	stdout io.Writer
	stderr io.Writer
}

// NewStarter returns a Starter that executes commands with os/exec, wiring
// the child's standard output and error to the given writers.
func NewStarter(stdout, stderr io.Writer) Starter {
	return &execStarter{stdout: stdout, stderr: stderr}
}

func (s *execStarter) Run(ctx context.Context, cmd Command) error {
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Stdout = s.stdout
	c.Stderr = s.stderr
	return c.Run()
}
