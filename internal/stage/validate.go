package stage

import (
	"errors"
	"fmt"
	"os"

	"hogpipe/internal/config"
)

// Sentinel precondition failures. MissingLabelFile and LabelFileNotFound are
// deliberately distinct: "you never told me which label file" and "the file
// you named is not there" need different user-facing messages.
var (
	ErrMissingLabelFile    = errors.New("no label file given (use -l)")
	ErrLabelFileNotFound   = errors.New("label file not found")
	ErrMissingKeyword      = errors.New("no keyword given")
	ErrMissingFraction     = errors.New("no training fraction given")
	ErrMissingCells        = errors.New("no cell count given")
	ErrMissingBins         = errors.New("no bin count given")
	ErrEmptyFeaturePattern = errors.New("no dataset configured, cannot locate feature directories")
)

// ValidationError reports that a requested stage lacks a required input. The
// run aborts before any external process starts.
type ValidationError struct {
	Stage Stage
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks the preconditions of one stage against the effective
// configuration. featurePattern is the derived glob prefix consumed by the
// classify stage; the other stages ignore it. The existence of matching
// result directories is deliberately not checked here — that is a runtime
// concern of the external scoring tool, not a planning one.
func Validate(cfg config.Model, s Stage, featurePattern string) error {
	fail := func(err error) error {
		return &ValidationError{Stage: s, Err: err}
	}

	switch s {
	case Partition:
		if cfg.Keyword == "" {
			return fail(ErrMissingKeyword)
		}
		if cfg.Fraction == "" {
			return fail(ErrMissingFraction)
		}
		if cfg.LabelFile == "" {
			return fail(ErrMissingLabelFile)
		}
		if _, err := os.Stat(cfg.LabelFile); err != nil {
			return fail(fmt.Errorf("%w: %s", ErrLabelFileNotFound, cfg.LabelFile))
		}
	case ExtractFeatures:
		if cfg.Cells == "" {
			return fail(ErrMissingCells)
		}
		if cfg.Bins == "" {
			return fail(ErrMissingBins)
		}
	case Classify:
		if cfg.Cells == "" {
			return fail(ErrMissingCells)
		}
		if cfg.Bins == "" {
			return fail(ErrMissingBins)
		}
		if featurePattern == "" {
			return fail(ErrEmptyFeaturePattern)
		}
	}
	return nil
}
