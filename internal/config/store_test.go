package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hogpipe.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadStore_LastOccurrenceWins(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "KEYWORD=disc\nCELLS=12\nKEYWORD=jump\n")

	store := LoadStore(context.Background(), path)

	v, ok := store.Read("KEYWORD")
	require.True(t, ok)
	require.Equal(t, "jump", v, "the last occurrence of a repeated key must win")

	v, ok = store.Read("CELLS")
	require.True(t, ok)
	require.Equal(t, "12", v)
}

func TestLoadStore_MissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	store := LoadStore(context.Background(), filepath.Join(t.TempDir(), "no-such-file.conf"))

	_, ok := store.Read("KEYWORD")
	require.False(t, ok, "a missing configuration file must behave as an empty layer, not an error")
}

func TestLoadStore_SkipsMalformedLines(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "not a pair\n=orphan\nDATASET=shapes\n")

	store := LoadStore(context.Background(), path)

	_, ok := store.Read("not a pair")
	require.False(t, ok)
	_, ok = store.Read("")
	require.False(t, ok)

	v, ok := store.Read("DATASET")
	require.True(t, ok)
	require.Equal(t, "shapes", v)
}

func TestLoadStore_ValueMayContainSeparator(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "DATASET=a=b\n")

	store := LoadStore(context.Background(), path)

	v, ok := store.Read("DATASET")
	require.True(t, ok)
	require.Equal(t, "a=b", v, "only the first separator splits key from value")
}

func TestStore_ExactAnchoredKeyMatch(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "KEYWORDX=1\nXKEYWORD=2\n")

	store := LoadStore(context.Background(), path)

	_, ok := store.Read("KEYWORD")
	require.False(t, ok, "keys must match by exact equality, never by substring")
}

func TestLoadStore_WindowsLineEndings(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "KEYWORD=disc\r\nCELLS=8\r\n")

	store := LoadStore(context.Background(), path)

	v, ok := store.Read("KEYWORD")
	require.True(t, ok)
	require.Equal(t, "disc", v)
}
