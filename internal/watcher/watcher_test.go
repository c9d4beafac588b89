package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_SignalsOnChapterWrite(t *testing.T) {
	dir := t.TempDir()

	w, err := New(Config{ContentDir: dir, DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ch, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "001.json"), []byte("{}"), 0644))

	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change signal after writing a chapter file")
	}
}

func TestWatcher_IgnoresNonChapterFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := New(Config{ContentDir: dir, DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ch, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	select {
	case <-ch:
		t.Fatal("non-JSON files must not trigger a reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()

	w, err := New(Config{ContentDir: dir, DebounceDur: 100 * time.Millisecond})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ch, err := w.Start()
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "001.json"), []byte("{}"), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatal("expected one signal after the burst settles")
	}

	select {
	case <-ch:
		t.Fatal("burst should collapse into a single signal")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := New(DefaultConfig(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	_, err = w.Start()
	require.Error(t, err, "watching a missing directory should fail up front")
}
