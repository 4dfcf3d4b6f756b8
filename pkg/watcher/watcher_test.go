package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bladekit/bladekit/pkg/watcher"
)

func TestWatcher(t *testing.T) {
	t.Parallel()

	t.Run("requires a callback", func(t *testing.T) {
		t.Parallel()
		_, err := watcher.New(t.TempDir(), nil)
		require.Error(t, err)
	})

	t.Run("notifies on resource file writes", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "i18n"), 0o755))

		changed := make(chan string, 8)
		w, err := watcher.New(dir, func(path string) { changed <- path })
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		go w.Run(ctx) //nolint:errcheck

		// Give the watch loop a moment to start before producing events.
		time.Sleep(100 * time.Millisecond)

		target := filepath.Join(dir, "i18n", "en.properties")
		require.NoError(t, os.WriteFile(target, []byte("k=v\n"), 0o644))

		select {
		case got := <-changed:
			assert.Equal(t, target, got)
		case <-ctx.Done():
			t.Fatal("no change notification received")
		}
	})

	t.Run("ignores unrelated files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		changed := make(chan string, 8)
		w, err := watcher.New(dir, func(path string) { changed <- path })
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go w.Run(ctx) //nolint:errcheck

		time.Sleep(100 * time.Millisecond)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

		select {
		case got := <-changed:
			t.Fatalf("unexpected notification for %s", got)
		case <-time.After(300 * time.Millisecond):
		}
	})
}

func TestLocaleFromPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "en", watcher.LocaleFromPath("app/i18n/en.properties"))
	assert.Equal(t, "en", watcher.LocaleFromPath("app/i18n/grid_en.properties"))
	assert.Equal(t, "en-gb", watcher.LocaleFromPath("app/i18n/en_GB.properties"))
	assert.Equal(t, "en-gb", watcher.LocaleFromPath("app/i18n/grid_en_GB.properties"))
	assert.Equal(t, "", watcher.LocaleFromPath("app/i18n/messages.properties"))
}
