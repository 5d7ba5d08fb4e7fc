package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestResolve_Precedence(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// KEYWORD only in the file, CELLS in both file and CLI, BINS nowhere but
	// the defaults, DATASET only on the CLI.
	store := &Store{values: Values{
		KeyKeyword: "jump",
		KeyCells:   "12",
	}}
	ov := Overrides{
		Values: Values{
			KeyCells:   "4",
			KeyDataset: "shapes",
		},
		DoClassify: true,
	}

	// --- Act ---
	got := Resolve(Defaults(), store, ov)

	// --- Assert ---
	want := Model{
		Cells:      "4",      // CLI beats file
		Bins:       "8",      // default, untouched by either layer
		Dataset:    "shapes", // CLI only
		Keyword:    "jump",   // file beats default
		Fraction:   "0.80",   // default
		DoClassify: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("resolved configuration mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_AbsentLayerNeverClobbers(t *testing.T) {
	t.Parallel()

	store := &Store{values: Values{KeyFraction: "0.65"}}

	got := Resolve(Defaults(), store, Overrides{})

	require.Equal(t, "0.65", got.Fraction, "an empty CLI layer must not clobber the file value")
	require.Equal(t, "disc", got.Keyword, "an absent file key must fall back to the default")
}

func TestResolve_EmptyOverrideValueStillWins(t *testing.T) {
	t.Parallel()

	// An explicitly supplied empty value is a real override: clearing a
	// defaulted field is how extract-features can be made invalid.
	store := &Store{values: Values{}}
	ov := Overrides{Values: Values{KeyCells: ""}}

	got := Resolve(Defaults(), store, ov)

	require.Equal(t, "", got.Cells)
}

func TestResolve_CLIOnlyFields(t *testing.T) {
	t.Parallel()

	ov := Overrides{
		LabelFile:   "/labels/disc.txt",
		DryRun:      true,
		DoPartition: true,
	}

	got := Resolve(Defaults(), &Store{values: Values{}}, ov)

	require.Equal(t, "/labels/disc.txt", got.LabelFile)
	require.True(t, got.DryRun)
	require.True(t, got.DoPartition)
	require.False(t, got.DoExtract)
}
