package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-dvd/internal/storage"
)

func openStatsStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)
	return store
}

func TestPrintStats(t *testing.T) {
	store := openStatsStore(t)
	defer store.Close()

	_, err := store.SaveSession(storage.Session{Logo: "dvd", ScreenW: 80, ScreenH: 24, Steps: 60, Bounces: 4, Corners: 1, Duration: time.Minute})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printStats(&buf, store, 10, false))

	out := buf.String()
	assert.Contains(t, out, "Recent sessions")
	assert.Contains(t, out, "80x24")
	assert.Contains(t, out, "Total: 1 sessions, 4 bounces, 1 corner hits, 1m0s watched")
}

func TestPrintStatsEmpty(t *testing.T) {
	store := openStatsStore(t)
	defer store.Close()

	var buf bytes.Buffer
	require.NoError(t, printStats(&buf, store, 10, true))
	assert.Contains(t, buf.String(), "Most corner hits")
	assert.Contains(t, buf.String(), "No sessions recorded yet.")
}

func TestPrintStatsQueryError(t *testing.T) {
	store := openStatsStore(t)
	require.NoError(t, store.Close())

	var buf bytes.Buffer
	assert.Error(t, printStats(&buf, store, 10, false))
}
