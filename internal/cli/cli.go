package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"hogpipe/internal/app"
	"hogpipe/internal/config"
)

// Exit codes. Usage and validation failures are distinguishable from
// external tool failures.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// DefaultConfigFile is consulted when -cfg is not given. A missing file is
// not an error; it simply contributes no values.
const DefaultConfigFile = "hogpipe.conf"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// flagAliases maps every value-flag name (short and long form) to its
// configuration key, so flag.Visit can build the sparse CLI layer.
var flagAliases = map[string]string{
	"k": config.KeyKeyword, "keyword": config.KeyKeyword,
	"f": config.KeyFraction, "fraction": config.KeyFraction,
	"w": config.KeyCells, "cells": config.KeyCells,
	"b": config.KeyBins, "bins": config.KeyBins,
	"d": config.KeyDataset, "dataset": config.KeyDataset,
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly (help was
// requested), or an ExitError for unusable input. Arguments after "--" are
// reserved for the external tools and ignored here.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("hogpipe", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `hogpipe - orchestrates the partition / HoG extraction / classification pipeline.

Usage:
  hogpipe [options] [-- tool arguments]

Stages (any subset; always run in the order partition, hogs, classify):
  -p, --partition     partition the labeled dataset into train/test groups
  -x, --hogs          extract HoG feature vectors
  -c, --classify      classify images and score the result

Options:
  -cfg, --config_file  path to the key=value configuration file (default `+DefaultConfigFile+`)
  -l,   --label_file   label file for the partition stage
  -d,   --dataset      dataset identifier
  -k,   --keyword      class keyword (default disc)
  -f,   --fraction     training fraction in (0,1] (default 0.80)
  -w,   --cells        HoG cell count, or * for any (default 8)
  -b,   --bins         HoG bin count, or * for any (default 8)
  -n,   --dry_run      print the planned command instead of executing
  -h,   --help         print this help and exit
        --log-level    debug, info, warn or error (default info)
        --log-format   text or json (default text)

With no stage flag, hogpipe reports the effective configuration and exits.
`)
	}

	var (
		cfgPath     string
		labelFile   string
		dataset     string
		keyword     string
		fraction    string
		cells       string
		bins        string
		doPartition bool
		doExtract   bool
		doClassify  bool
		dryRun      bool
		logLevel    string
		logFormat   string
	)

	// Each option is registered under both its short and long alias, bound
	// to one variable, matching the documented flag table.
	flagSet.StringVar(&cfgPath, "cfg", "", "")
	flagSet.StringVar(&cfgPath, "config_file", "", "")
	flagSet.StringVar(&labelFile, "l", "", "")
	flagSet.StringVar(&labelFile, "label_file", "", "")
	flagSet.StringVar(&dataset, "d", "", "")
	flagSet.StringVar(&dataset, "dataset", "", "")
	flagSet.StringVar(&keyword, "k", "", "")
	flagSet.StringVar(&keyword, "keyword", "", "")
	flagSet.StringVar(&fraction, "f", "", "")
	flagSet.StringVar(&fraction, "fraction", "", "")
	flagSet.StringVar(&cells, "w", "", "")
	flagSet.StringVar(&cells, "cells", "", "")
	flagSet.StringVar(&bins, "b", "", "")
	flagSet.StringVar(&bins, "bins", "", "")
	flagSet.BoolVar(&doPartition, "p", false, "")
	flagSet.BoolVar(&doPartition, "partition", false, "")
	flagSet.BoolVar(&doExtract, "x", false, "")
	flagSet.BoolVar(&doExtract, "hogs", false, "")
	flagSet.BoolVar(&doClassify, "c", false, "")
	flagSet.BoolVar(&doClassify, "classify", false, "")
	flagSet.BoolVar(&dryRun, "n", false, "")
	flagSet.BoolVar(&dryRun, "dry_run", false, "")
	flagSet.StringVar(&logLevel, "log-level", "info", "")
	flagSet.StringVar(&logFormat, "log-format", "text", "")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	// Only explicitly set flags enter the CLI layer; everything else is left
	// to the configuration file and the built-in defaults.
	values := config.Values{}
	flagSet.Visit(func(f *flag.Flag) {
		if key, ok := flagAliases[f.Name]; ok {
			values[key] = f.Value.String()
		}
	})

	if cfgPath == "" {
		cfgPath = DefaultConfigFile
	}

	logLevel = strings.ToLower(logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	logFormat = strings.ToLower(logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	return &app.Config{
		ConfigFile: cfgPath,
		Overrides: config.Overrides{
			Values:      values,
			LabelFile:   labelFile,
			DryRun:      dryRun,
			DoPartition: doPartition,
			DoExtract:   doExtract,
			DoClassify:  doClassify,
		},
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}, false, nil
}
