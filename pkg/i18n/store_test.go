package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bladekit/bladekit/pkg/i18n"
)

func appFS() fstest.MapFS {
	return fstest.MapFS{
		"i18n/en.properties": {Data: []byte(
			"mybank.title=My Bank\n" +
				"mybank.greeting=Hello [name]\n",
		)},
		"i18n/de.properties": {Data: []byte(
			"mybank.title=Meine Bank\n",
		)},
		"bladesets/accounts/i18n/en.properties": {Data: []byte(
			"mybank.accounts.header=Accounts\n" +
				"mybank.title=Accounts Bank\n",
		)},
		"bladesets/accounts/blades/summary/i18n/en.properties": {Data: []byte(
			"mybank.accounts.summary.total=Total\n" +
				"mybank.title=Summary Bank\n",
		)},
	}
}

func newStore(t *testing.T, fsys fstest.MapFS, locales ...string) *i18n.Store {
	t.Helper()
	if len(locales) == 0 {
		locales = []string{"en", "de"}
	}
	store, err := i18n.NewStore(fsys, i18n.WithSupportedLocales(locales...))
	require.NoError(t, err)
	return store
}

func TestNewStore(t *testing.T) {
	t.Parallel()

	t.Run("builds scope tree from directory layout", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, appFS())

		root := store.Root()
		require.Equal(t, i18n.ScopeAspect, root.Kind)
		require.Len(t, root.Children(), 1)

		bs := root.Children()[0]
		assert.Equal(t, i18n.ScopeBladeSet, bs.Kind)
		assert.Equal(t, "accounts", bs.Name)
		require.Len(t, bs.Children(), 1)
		assert.Equal(t, i18n.ScopeBlade, bs.Children()[0].Kind)
		assert.Equal(t, "default/accounts/summary", bs.Children()[0].Path())
	})

	t.Run("requires at least one supported locale", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewStore(appFS())
		require.Error(t, err)
	})

	t.Run("orders files by scope specificity", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, appFS())

		files := store.FilesForLocale("en")
		require.Len(t, files, 3)
		assert.Equal(t, i18n.ScopeAspect, files[0].Scope.Kind)
		assert.Equal(t, i18n.ScopeBladeSet, files[1].Scope.Kind)
		assert.Equal(t, i18n.ScopeBlade, files[2].Scope.Kind)
	})

	t.Run("missing locale is not fatal", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, appFS())
		assert.Empty(t, store.FilesForLocale("es"))
	})

	t.Run("fails when a scope declares i18n but has no usable files", func(t *testing.T) {
		t.Parallel()
		fsys := appFS()
		fsys["bladesets/empty/i18n/.keep"] = &fstest.MapFile{Data: []byte("")}
		_, err := i18n.NewStore(fsys, i18n.WithSupportedLocales("en"))
		require.Error(t, err)
		require.ErrorIs(t, err, i18n.ErrResourceNotFound)
		assert.Contains(t, err.Error(), "default/empty")
	})

	t.Run("warns about undeclared locales", func(t *testing.T) {
		t.Parallel()
		fsys := appFS()
		fsys["i18n/fr.properties"] = &fstest.MapFile{Data: []byte("k=v\n")}
		store := newStore(t, fsys, "en", "de")

		require.Len(t, store.Warnings(), 1)
		assert.Contains(t, store.Warnings()[0], "fr")
		assert.Empty(t, store.FilesForLocale("fr"))
	})

	t.Run("accepts prefixed and region-qualified filenames", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"i18n/grid_en.properties": {Data: []byte("a=1\n")},
			"i18n/en_GB.properties":   {Data: []byte("b=2\n")},
		}
		store := newStore(t, fsys, "en", "en-GB")

		require.Len(t, store.FilesForLocale("en"), 1)
		require.Len(t, store.FilesForLocale("en-GB"), 1)
	})

	t.Run("propagates parse failures", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"i18n/en.properties": {Data: []byte("no separator here\n")},
		}
		_, err := i18n.NewStore(fsys, i18n.WithSupportedLocales("en"))
		require.Error(t, err)
	})
}

func TestStoreVisibleFiles(t *testing.T) {
	t.Parallel()

	store := newStore(t, appFS())
	blade := store.Root().Children()[0].Children()[0]

	t.Run("blade sees ancestors plus own files", func(t *testing.T) {
		t.Parallel()
		files := store.VisibleFiles(blade, "en")
		require.Len(t, files, 3)
		assert.Equal(t, i18n.ScopeAspect, files[0].Scope.Kind)
		assert.Equal(t, i18n.ScopeBlade, files[2].Scope.Kind)
	})

	t.Run("aspect sees only its own files", func(t *testing.T) {
		t.Parallel()
		files := store.VisibleFiles(store.Root(), "en")
		require.Len(t, files, 1)
		assert.Equal(t, i18n.ScopeAspect, files[0].Scope.Kind)
	})

	t.Run("bladeset does not see sibling blades", func(t *testing.T) {
		t.Parallel()
		bs := store.Root().Children()[0]
		files := store.VisibleFiles(bs, "en")
		require.Len(t, files, 2)
	})
}

func TestNormalizeLocale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "en-gb", i18n.NormalizeLocale("en_GB"))
	assert.Equal(t, "de", i18n.NormalizeLocale(" DE "))
	assert.Equal(t, "en", i18n.BaseLocale("en-gb"))
	assert.Equal(t, "zh", i18n.BaseLocale("zh"))
}

func TestLocaleFromFilename(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]string{
		"en.properties":         "en",
		"grid_en.properties":    "en",
		"en_GB.properties":      "en-gb",
		"grid_en_GB.properties": "en-gb",
		"grid_en":               "en",
	} {
		locale, ok := i18n.LocaleFromFilename(name)
		require.True(t, ok, name)
		assert.Equal(t, want, locale, name)
	}

	_, ok := i18n.LocaleFromFilename("messages.properties")
	assert.False(t, ok)
}
