package pipeline

import "fmt"

// Outcome classifies how a run ended. HaltedDryRun is distinct from both
// success and failure so callers can assert on the explain-and-stop contract
// precisely.
type Outcome int

const (
	// Completed means every planned stage validated and executed successfully.
	Completed Outcome = iota

	// HaltedDryRun means the run stopped after printing the first planned
	// stage's command line, with zero external processes created.
	HaltedDryRun

	// Failed means a stage failed validation or an external tool failed.
	Failed
)

// RunResult is the aggregate outcome of one pipeline run.
type RunResult struct {
	Outcome Outcome

	// Err carries the validation or execution failure when Outcome is Failed.
	Err error
}

// ExecutionError reports an external tool that exited non-zero or could not
// be started, carrying the offending command line.
type ExecutionError struct {
	Command Command
	Err     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("command failed: %s: %v", e.Command, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
