package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bladekit/bladekit/pkg/cookie"
)

func TestManager(t *testing.T) {
	t.Parallel()

	t.Run("set then get round-trips", func(t *testing.T) {
		t.Parallel()
		m := cookie.New()

		rec := httptest.NewRecorder()
		m.Set(rec, "de")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range rec.Result().Cookies() {
			req.AddCookie(c)
		}

		locale, ok := m.Get(req)
		require.True(t, ok)
		assert.Equal(t, "de", locale)
	})

	t.Run("get misses without cookie", func(t *testing.T) {
		t.Parallel()
		m := cookie.New()
		_, ok := m.Get(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.False(t, ok)
	})

	t.Run("custom name and attributes", func(t *testing.T) {
		t.Parallel()
		m := cookie.New(
			cookie.WithName("lang"),
			cookie.WithPath("/app"),
			cookie.WithMaxAge(time.Hour),
			cookie.WithSecure(true),
			cookie.WithSameSite(http.SameSiteStrictMode),
		)
		assert.Equal(t, "lang", m.Name())

		rec := httptest.NewRecorder()
		m.Set(rec, "en")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, "lang", c.Name)
		assert.Equal(t, "/app", c.Path)
		assert.Equal(t, 3600, c.MaxAge)
		assert.True(t, c.Secure)
		assert.True(t, c.HttpOnly)
	})

	t.Run("clear expires the cookie", func(t *testing.T) {
		t.Parallel()
		m := cookie.New()
		rec := httptest.NewRecorder()
		m.Clear(rec)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Negative(t, cookies[0].MaxAge)
		assert.Empty(t, cookies[0].Value)
	})
}
