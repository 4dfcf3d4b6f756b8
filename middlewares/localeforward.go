package middlewares

import (
	"net/http"
	"slices"
	"strings"

	"github.com/bladekit/bladekit/internal"
	"github.com/bladekit/bladekit/pkg/cookie"
	"github.com/bladekit/bladekit/pkg/i18n"
)

// LocaleForwardConfig configures the locale forwarder.
type LocaleForwardConfig struct {
	// BasePath is the application mount point, e.g. "/mybank".
	BasePath string
	// Supported is the declared supported locale set.
	Supported []string
	// Default is used when no client signal matches a supported locale.
	Default string
	// Cookies reads the forced-locale cookie. Defaults to cookie.New().
	Cookies *cookie.Manager
	// Extractor overrides the locale signal chain (cookie, then
	// Accept-Language). Candidates outside the supported set are ignored.
	Extractor internal.Extractor

	extractorSet bool
}

// LocaleForwardOption configures LocaleForwardConfig.
type LocaleForwardOption func(*LocaleForwardConfig)

// WithForwardCookies sets the cookie manager used to read the forced locale.
func WithForwardCookies(m *cookie.Manager) LocaleForwardOption {
	return func(cfg *LocaleForwardConfig) {
		if m != nil {
			cfg.Cookies = m
		}
	}
}

// WithForwardExtractor sets a custom locale signal chain.
func WithForwardExtractor(ex internal.Extractor) LocaleForwardOption {
	return func(cfg *LocaleForwardConfig) {
		cfg.Extractor = ex
		cfg.extractorSet = true
	}
}

// FromAcceptLanguage returns a source that negotiates against the
// Accept-Language header, yielding only supported locales.
func FromAcceptLanguage(supported []string) internal.Source {
	return func(r *http.Request) (string, bool) {
		lang := i18n.MatchAcceptLanguage(r.Header.Get("Accept-Language"), supported)
		return lang, lang != ""
	}
}

// LocaleForward returns middleware that redirects unqualified application
// URLs to their locale-qualified variant.
//
// A request to the bare base path starts in the deciding state: the locale
// comes from the forced-locale cookie if it names a supported locale, else
// from Accept-Language preference order, else from the configured default,
// and the client is redirected to BasePath + "/" + locale + "/". Requests
// already carrying a supported locale as the first path segment are
// forwarded state and pass through untouched, so a redirect can never loop.
// Changing locale requires a fresh request to the unqualified URL.
func LocaleForward(basePath string, supported []string, defaultLocale string, opts ...LocaleForwardOption) func(http.Handler) http.Handler {
	normalized := make([]string, 0, len(supported))
	for _, l := range supported {
		normalized = append(normalized, i18n.NormalizeLocale(l))
	}

	cfg := &LocaleForwardConfig{
		BasePath:  strings.TrimSuffix(basePath, "/"),
		Supported: normalized,
		Default:   i18n.NormalizeLocale(defaultLocale),
		Cookies:   cookie.New(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.extractorSet {
		cfg.Extractor = internal.NewExtractor(
			fromLocaleCookie(cfg.Cookies, cfg.Supported),
			FromAcceptLanguage(cfg.Supported),
		)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rest, ok := strings.CutPrefix(r.URL.Path, cfg.BasePath)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			if rest == "" || rest == "/" {
				locale, found := cfg.Extractor.Extract(r)
				locale = i18n.NormalizeLocale(locale)
				if !found || !slices.Contains(cfg.Supported, locale) {
					locale = cfg.Default
				}
				http.Redirect(w, r, cfg.BasePath+"/"+locale+"/", http.StatusFound)
				return
			}

			// Locale-qualified and asset URLs never re-enter the decision.
			next.ServeHTTP(w, r)
		})
	}
}

// fromLocaleCookie yields the cookie locale only when it is supported, so an
// unknown or stale cookie falls through to Accept-Language negotiation.
func fromLocaleCookie(m *cookie.Manager, supported []string) internal.Source {
	return func(r *http.Request) (string, bool) {
		v, ok := m.Get(r)
		if !ok {
			return "", false
		}
		v = i18n.NormalizeLocale(v)
		if !slices.Contains(supported, v) {
			return "", false
		}
		return v, true
	}
}

// PathLocale extracts the locale segment from a locale-qualified path under
// basePath. Returns "" for unqualified paths or unsupported segments.
func PathLocale(path, basePath string, supported []string) string {
	rest, ok := strings.CutPrefix(path, strings.TrimSuffix(basePath, "/"))
	if !ok {
		return ""
	}
	rest = strings.TrimPrefix(rest, "/")
	segment, _, _ := strings.Cut(rest, "/")
	segment = i18n.NormalizeLocale(segment)
	for _, l := range supported {
		if i18n.NormalizeLocale(l) == segment {
			return segment
		}
	}
	return ""
}
