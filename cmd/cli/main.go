package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"hogpipe/internal/app"
	"hogpipe/internal/cli"
	"hogpipe/internal/stage"
)

// main is the entrypoint for the hogpipe orchestrator.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. User-facing output goes to outW, logs and tool stderr to errW.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	a := app.NewApp(outW, errW, appConfig, nil)
	return a.Run(context.Background())
}

// exitCode maps an error to the process exit status: usage and validation
// problems exit 2, external tool failures exit 1.
func exitCode(err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var valErr *stage.ValidationError
	if errors.As(err, &valErr) {
		return cli.ExitUsage
	}
	return cli.ExitFailure
}
