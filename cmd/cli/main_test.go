package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hogpipe/internal/cli"
	"hogpipe/internal/stage"
)

func TestRun_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "help exits cleanly")
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_UnknownFlag(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Equal(t, cli.ExitUsage, exitCode(err))
}

func TestRun_ReportOnly(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	args := []string{"-cfg", filepath.Join(t.TempDir(), "absent.conf")}

	err := run(out, &bytes.Buffer{}, args)

	require.NoError(t, err, "no stage flags means report configuration and exit 0")
	require.Contains(t, out.String(), "Configuration:")
}

func TestRun_MissingLabelFileIsValidationExit(t *testing.T) {
	t.Parallel()

	args := []string{"-cfg", filepath.Join(t.TempDir(), "absent.conf"), "-p"}

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, args)

	require.ErrorIs(t, err, stage.ErrMissingLabelFile)
	require.Equal(t, cli.ExitUsage, exitCode(err))
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2, exitCode(&cli.ExitError{Code: 2, Message: "bad flag"}))
	require.Equal(t, cli.ExitUsage, exitCode(&stage.ValidationError{Stage: stage.Partition, Err: stage.ErrMissingLabelFile}))
	require.Equal(t, cli.ExitFailure, exitCode(errors.New("exit status 3")))
}
