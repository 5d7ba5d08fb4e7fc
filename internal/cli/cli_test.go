package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"hogpipe/internal/config"
)

func TestParse_ShortAndLongAliases(t *testing.T) {
	t.Parallel()

	short, exit, err := Parse([]string{"-k", "jump", "-f", "0.65", "-w", "4", "-b", "12", "-d", "shapes"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	long, exit, err := Parse([]string{"--keyword", "jump", "--fraction", "0.65", "--cells", "4", "--bins", "12", "--dataset", "shapes"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	require.Equal(t, short.Overrides.Values, long.Overrides.Values, "short and long forms are the same flag")
	require.Equal(t, config.Values{
		config.KeyKeyword:  "jump",
		config.KeyFraction: "0.65",
		config.KeyCells:    "4",
		config.KeyBins:     "12",
		config.KeyDataset:  "shapes",
	}, short.Overrides.Values)
}

func TestParse_UntouchedFlagsStayAbsent(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{"-k", "jump"}, &bytes.Buffer{})
	require.NoError(t, err)

	_, present := cfg.Overrides.Values[config.KeyFraction]
	require.False(t, present, "an unset flag must not enter the CLI layer, or it would shadow the file value")
	require.Len(t, cfg.Overrides.Values, 1)
}

func TestParse_StageAndModeFlags(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{"-p", "--hogs", "-c", "-n", "-l", "/labels/disc.txt"}, &bytes.Buffer{})
	require.NoError(t, err)

	require.True(t, cfg.Overrides.DoPartition)
	require.True(t, cfg.Overrides.DoExtract)
	require.True(t, cfg.Overrides.DoClassify)
	require.True(t, cfg.Overrides.DryRun)
	require.Equal(t, "/labels/disc.txt", cfg.Overrides.LabelFile)
}

func TestParse_ConfigFileDefaultAndOverride(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, DefaultConfigFile, cfg.ConfigFile)

	cfg, _, err = Parse([]string{"-cfg", "/etc/hogpipe.conf"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "/etc/hogpipe.conf", cfg.ConfigFile)

	cfg, _, err = Parse([]string{"--config_file", "/etc/other.conf"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "/etc/other.conf", cfg.ConfigFile)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, exit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	require.True(t, exit, "help must exit immediately with no further processing")
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_UnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"--frobnicate"}, &bytes.Buffer{})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, ExitUsage, exitErr.Code)
}

func TestParse_ArgumentsAfterDoubleDashIgnored(t *testing.T) {
	t.Parallel()

	cfg, exit, err := Parse([]string{"-p", "--", "--whatever", "-x"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	require.True(t, cfg.Overrides.DoPartition)
	require.False(t, cfg.Overrides.DoExtract, "arguments after -- are reserved for the external tools")
}

func TestParse_InvalidLogSettings(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"--log-level", "loud"}, &bytes.Buffer{})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, ExitUsage, exitErr.Code)

	_, _, err = Parse([]string{"--log-format", "xml"}, &bytes.Buffer{})
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, ExitUsage, exitErr.Code)
}
