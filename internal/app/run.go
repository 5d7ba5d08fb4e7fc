package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"hogpipe/internal/config"
	"hogpipe/internal/ctxlog"
	"hogpipe/internal/paths"
	"hogpipe/internal/pipeline"
	"hogpipe/internal/report"
	"hogpipe/internal/stage"
)

// Run executes one full invocation: load the configuration file, resolve the
// effective configuration, report it, derive the file-system layout, and
// dispatch the planned stages. A nil return covers success, dry-run halts,
// and the "no stages requested" report-only case.
func (a *App) Run(ctx context.Context) error {
	logger := a.logger.With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Run method started.")

	store := config.LoadStore(ctx, a.cfg.ConfigFile)
	cfg := config.Resolve(config.Defaults(), store, a.cfg.Overrides)
	logger.Debug("Configuration resolved.", "config_file", a.cfg.ConfigFile)

	plan := stage.Plan(cfg)

	// The report always precedes execution, dry-run included.
	fmt.Fprint(a.outW, report.Render(cfg, plan))

	if len(plan) == 0 {
		logger.Info("No stages requested, nothing to do.")
		return nil
	}

	layout, err := paths.NewLayout(cfg)
	if err != nil {
		// A nonsensical fraction must never become a destination name.
		return &stage.ValidationError{Stage: stage.None, Err: err}
	}
	logger.Debug("Derived layout.", "destination", layout.Destination, "feature_pattern", layout.FeaturePattern)

	runner := pipeline.NewRunner(cfg, layout, a.starter, a.outW)
	result := runner.Run(ctx, plan)

	switch result.Outcome {
	case pipeline.HaltedDryRun:
		logger.Info("Dry run complete, no external process was started.")
		return nil
	case pipeline.Failed:
		return result.Err
	}

	logger.Info("All requested stages completed.")
	return nil
}
