package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bladekit/bladekit/pkg/i18n"
)

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "de", "es"}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"highest quality wins", "de,en;q=0.8", "de"},
		{"quality order overrides listing order", "en;q=0.5,de;q=0.9", "de"},
		{"no supported match returns empty", "fr", ""},
		{"empty header returns empty", "", ""},
		{"region tag matches base language", "en-US,fr;q=0.5", "en"},
		{"wildcard is ignored", "*", ""},
		{"wildcard with fallback tag", "*,es;q=0.3", "es"},
		{"zero quality is dropped", "de;q=0,en;q=0.5", "en"},
		{"malformed quality defaults to one", "de;q=banana,en;q=0.9", "de"},
		{"whitespace tolerated", " de , en ; q=0.8 ", "de"},
		{"case insensitive", "DE", "de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, i18n.MatchAcceptLanguage(tt.header, supported))
		})
	}

	t.Run("empty supported set returns empty", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", i18n.MatchAcceptLanguage("en", nil))
	})

	t.Run("exact region match preferred over base match", func(t *testing.T) {
		t.Parallel()
		got := i18n.MatchAcceptLanguage("en-gb", []string{"en", "en-gb"})
		assert.Equal(t, "en-gb", got)
	})

	t.Run("oversized header is truncated not rejected", func(t *testing.T) {
		t.Parallel()
		header := "de," + strings.Repeat("x", 10000)
		assert.Equal(t, "de", i18n.MatchAcceptLanguage(header, supported))
	})
}
