// Package app wires the configuration, reporting and pipeline components
// into one runnable application with an isolated logger.
package app

import (
	"io"
	"log/slog"

	"hogpipe/internal/config"
	"hogpipe/internal/pipeline"
)

// Config holds everything the App needs for one invocation: where to find
// the configuration file, the sparse command-line overrides, and the ambient
// logging settings.
type Config struct {
	ConfigFile string
	Overrides  config.Overrides

	LogLevel  string
	LogFormat string
}

// App encapsulates the application's dependencies and lifecycle for a single
// invocation.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	cfg     *Config
	starter pipeline.Starter
}

// NewApp is the constructor for the main application. User-facing output
// (report, dry-run preview) goes to outW; logs go to logW. A nil starter
// selects the real os/exec starter inheriting both writers, which is the
// seam tests use to record commands instead of spawning processes.
func NewApp(outW, logW io.Writer, cfg *Config, starter pipeline.Starter) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if starter == nil {
		starter = pipeline.NewStarter(outW, logW)
	}

	return &App{
		outW:    outW,
		logger:  logger,
		cfg:     cfg,
		starter: starter,
	}
}
