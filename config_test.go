package bladekit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bladekit/bladekit"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("normalizes locales and defaults", func(t *testing.T) {
		t.Parallel()

		cfg := bladekit.Config{
			App:     "mybank",
			Locales: []string{"EN", "de", "en_GB"},
		}
		require.NoError(t, cfg.Validate())

		assert.Equal(t, []string{"en", "de", "en-gb"}, cfg.Locales)
		assert.Equal(t, "en", cfg.DefaultLocale)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "/mybank", cfg.BasePath())
	})

	t.Run("deduplicates locales", func(t *testing.T) {
		t.Parallel()

		cfg := bladekit.Config{
			App:     "mybank",
			Locales: []string{"en", "EN", "en"},
		}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, []string{"en"}, cfg.Locales)
	})

	t.Run("default locale must be supported", func(t *testing.T) {
		t.Parallel()

		cfg := bladekit.Config{
			App:           "mybank",
			Locales:       []string{"en", "de"},
			DefaultLocale: "fr",
		}
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects invalid locale tag", func(t *testing.T) {
		t.Parallel()

		cfg := bladekit.Config{
			App:     "mybank",
			Locales: []string{"not a locale"},
		}
		require.Error(t, cfg.Validate())
	})

	t.Run("requires app name", func(t *testing.T) {
		t.Parallel()

		cfg := bladekit.Config{Locales: []string{"en"}}
		require.Error(t, cfg.Validate())
	})

	t.Run("requires locales", func(t *testing.T) {
		t.Parallel()

		cfg := bladekit.Config{App: "mybank"}
		require.Error(t, cfg.Validate())
	})
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bladekit.yaml")
	data := []byte(`app: mybank
addr: ":9090"
locales: [en, de]
default_locale: de
resource_dir: ./resources
asset_dir: ./assets
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	t.Run("reads yaml", func(t *testing.T) {
		cfg, err := bladekit.LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "mybank", cfg.App)
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, []string{"en", "de"}, cfg.Locales)
		assert.Equal(t, "de", cfg.DefaultLocale)
		assert.Equal(t, "./resources", cfg.ResourceDir)
		assert.Equal(t, "./assets", cfg.AssetDir)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("BLADEKIT_ADDR", ":7070")
		t.Setenv("BLADEKIT_DEFAULT_LOCALE", "en")

		cfg, err := bladekit.LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, ":7070", cfg.Addr)
		assert.Equal(t, "en", cfg.DefaultLocale)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := bladekit.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
