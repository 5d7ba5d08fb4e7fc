// Package pipeline dispatches the planned stages to their external tools, in
// fixed order, stopping the whole run on the first validation failure, the
// first tool failure, or the first dry-run preview.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"hogpipe/internal/config"
	"hogpipe/internal/ctxlog"
	"hogpipe/internal/fsutil"
	"hogpipe/internal/paths"
	"hogpipe/internal/stage"
)

// errNoResultDirs is the execution failure for a classify fan-out that found
// nothing to score. Planning does not check the disk, so this surfaces at
// run time like any other tool failure.
var errNoResultDirs = errors.New("no result directories match pattern")

// Runner executes (or previews) one stage plan against one effective
// configuration. It holds only read-only state and is used for a single run.
type Runner struct {
	cfg     config.Model
	layout  *paths.Layout
	starter Starter
	outW    io.Writer
}

// NewRunner wires a runner for one invocation. The starter abstracts process
// creation so tests can record commands instead of spawning them.
func NewRunner(cfg config.Model, layout *paths.Layout, starter Starter, outW io.Writer) *Runner {
	return &Runner{cfg: cfg, layout: layout, starter: starter, outW: outW}
}

// Run walks the plan in order. For each stage it validates preconditions,
// builds the external command, and then either prints it (dry-run, halting
// the entire run) or executes it synchronously. A validation failure always
// wins over the dry-run preview: a run that could not execute is reported as
// such, not previewed.
func (r *Runner) Run(ctx context.Context, plan []stage.Stage) RunResult {
	logger := ctxlog.FromContext(ctx)

	for _, s := range plan {
		if err := stage.Validate(r.cfg, s, r.layout.FeaturePattern); err != nil {
			logger.Debug("Stage validation failed.", "stage", s.String(), "error", err)
			return RunResult{Outcome: Failed, Err: err}
		}

		if s == stage.Classify {
			if res, done := r.runClassify(ctx); done {
				return res
			}
			continue
		}

		var cmd Command
		switch s {
		case stage.Partition:
			cmd = r.partitionCommand()
		case stage.ExtractFeatures:
			cmd = r.extractCommand()
		}

		if r.cfg.DryRun {
			fmt.Fprintln(r.outW, cmd)
			logger.Info("Dry run, halting before execution.", "stage", s.String())
			return RunResult{Outcome: HaltedDryRun}
		}

		logger.Info("Running stage.", "stage", s.String(), "command", cmd.String())
		if err := r.starter.Run(ctx, cmd); err != nil {
			return RunResult{Outcome: Failed, Err: &ExecutionError{Command: cmd, Err: err}}
		}
	}

	return RunResult{Outcome: Completed}
}

// runClassify handles the one-to-many fan-out: one scoring invocation per
// result directory matching the feature glob. Invocations are sequential and
// independently error-captured; a failure in one does not prevent attempting
// the others, but any failure marks the whole run failed. The second return
// value reports whether the run should stop here.
func (r *Runner) runClassify(ctx context.Context) (RunResult, bool) {
	logger := ctxlog.FromContext(ctx)

	dirs, err := fsutil.MatchingDirs(r.layout.FeatureGlob)
	if err != nil {
		return RunResult{Outcome: Failed, Err: &ExecutionError{Command: r.scoreCommand(r.layout.FeatureGlob), Err: err}}, true
	}

	if r.cfg.DryRun {
		for _, dir := range dirs {
			fmt.Fprintln(r.outW, r.scoreCommand(dir))
		}
		logger.Info("Dry run, halting before execution.", "stage", stage.Classify.String(), "matches", len(dirs))
		return RunResult{Outcome: HaltedDryRun}, true
	}

	if len(dirs) == 0 {
		err := fmt.Errorf("%w: %s", errNoResultDirs, r.layout.FeatureGlob)
		return RunResult{Outcome: Failed, Err: &ExecutionError{Command: r.scoreCommand(r.layout.FeatureGlob), Err: err}}, true
	}

	var failures []error
	for _, dir := range dirs {
		cmd := r.scoreCommand(dir)
		logger.Info("Running stage.", "stage", stage.Classify.String(), "command", cmd.String())
		if err := r.starter.Run(ctx, cmd); err != nil {
			logger.Warn("Scoring invocation failed, continuing with remaining directories.", "dir", dir, "error", err)
			failures = append(failures, &ExecutionError{Command: cmd, Err: err})
		}
	}
	if len(failures) > 0 {
		return RunResult{Outcome: Failed, Err: errors.Join(failures...)}, true
	}
	return RunResult{Outcome: Completed}, false
}
