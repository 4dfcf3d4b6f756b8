package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bladekit/bladekit/middlewares"
	"github.com/bladekit/bladekit/pkg/i18n"
)

func testResolver(t *testing.T) *i18n.Resolver {
	t.Helper()
	fsys := fstest.MapFS{
		"i18n/en.properties": {Data: []byte("mybank.title=My Bank\n")},
		"i18n/de.properties": {Data: []byte("mybank.title=Meine Bank\n")},
	}
	store, err := i18n.NewStore(fsys, i18n.WithSupportedLocales("en", "de"))
	require.NoError(t, err)
	return i18n.NewResolver(store)
}

func TestI18nMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("binds a translator for qualified URLs", func(t *testing.T) {
		t.Parallel()
		resolver := testResolver(t)

		var got string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tr := middlewares.GetTranslator(r.Context())
			require.NotNil(t, tr)
			got, _ = tr.T("mybank.title")
			assert.Equal(t, "de", middlewares.GetLocale(r.Context()))
			w.WriteHeader(http.StatusOK)
		})

		mw := middlewares.I18n(resolver, "/mybank")
		rec := httptest.NewRecorder()
		mw(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mybank/de/home", nil))

		assert.Equal(t, "Meine Bank", got)
	})

	t.Run("passes through unqualified URLs without translator", func(t *testing.T) {
		t.Parallel()
		resolver := testResolver(t)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Nil(t, middlewares.GetTranslator(r.Context()))
			assert.Empty(t, middlewares.GetLocale(r.Context()))
			w.WriteHeader(http.StatusOK)
		})

		mw := middlewares.I18n(resolver, "/mybank")
		rec := httptest.NewRecorder()
		mw(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mybank/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("request translators share the configured reporter", func(t *testing.T) {
		t.Parallel()
		resolver := testResolver(t)
		collector := &i18n.CollectingReporter{}

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			out, err := middlewares.GetTranslator(r.Context()).T("missing.key")
			require.NoError(t, err)
			assert.Equal(t, "??? missing.key ???", out)
		})

		mw := middlewares.I18n(resolver, "/mybank", middlewares.WithI18nReporter(collector))
		mw(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/mybank/en/", nil))

		require.Len(t, collector.Events(), 1)
		assert.Equal(t, "missing.key", collector.Events()[0].Key)
	})

	t.Run("locale extractor feeds the logger", func(t *testing.T) {
		t.Parallel()
		resolver := testResolver(t)
		ex := middlewares.LocaleExtractor()

		var sawAttr bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attr, ok := ex(r.Context())
			sawAttr = ok && attr.Value.String() == "en"
		})

		mw := middlewares.I18n(resolver, "/mybank")
		mw(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/mybank/en/home", nil))
		assert.True(t, sawAttr)
	})
}
