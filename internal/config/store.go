package config

import (
	"bufio"
	"context"
	"os"
	"strings"

	"hogpipe/internal/ctxlog"
)

// Store holds the values read from one configuration file. A missing file
// yields an empty store rather than an error: the file is an optional layer,
// and "not there" simply means defaults and CLI flags decide everything.
type Store struct {
	values Values
}

// LoadStore reads a KEY=value configuration file. When the same key appears
// on multiple lines the last occurrence wins, matching an append-only,
// log-like configuration file. Lines without a separator or with an empty
// key are skipped.
func LoadStore(ctx context.Context, path string) *Store {
	logger := ctxlog.FromContext(ctx)
	store := &Store{values: Values{}}

	f, err := os.Open(path)
	if err != nil {
		// Unreadable is treated the same as absent; every lookup will
		// report "not present" and the lower layers apply.
		logger.Debug("Configuration file not readable, using defaults and flags only.", "path", path, "error", err)
		return store
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			logger.Debug("Skipping malformed configuration line.", "path", path, "line", line)
			continue
		}
		store.values[key] = value
	}
	if err := scanner.Err(); err != nil {
		logger.Warn("Error while reading configuration file, keeping values read so far.", "path", path, "error", err)
	}

	logger.Debug("Configuration file loaded.", "path", path, "keys", len(store.values))
	return store
}

// Read reports the value for key and whether the file supplied one. Keys are
// matched by exact, anchored equality.
func (s *Store) Read(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}
