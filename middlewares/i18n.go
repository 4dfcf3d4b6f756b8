package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bladekit/bladekit/pkg/i18n"
	"github.com/bladekit/bladekit/pkg/logger"
)

type translatorKey struct{}
type localeKey struct{}

// I18nConfig configures the I18n middleware.
type I18nConfig struct {
	Reporter i18n.MissingReporter
}

// I18nOption configures I18nConfig.
type I18nOption func(*I18nConfig)

// WithI18nReporter sets the reporter receiving missing-translation events
// from request-scoped translators.
func WithI18nReporter(r i18n.MissingReporter) I18nOption {
	return func(cfg *I18nConfig) {
		if r != nil {
			cfg.Reporter = r
		}
	}
}

// I18n returns middleware that resolves the locale from a locale-qualified
// URL, creates a Translator bound to it, and stores both in the request
// context. Requests without a locale segment pass through without a
// translator; the forwarder redirects those before they reach handlers.
func I18n(resolver *i18n.Resolver, basePath string, opts ...I18nOption) func(http.Handler) http.Handler {
	cfg := &I18nConfig{Reporter: i18n.NopReporter}
	for _, opt := range opts {
		opt(cfg)
	}

	supported := resolver.Store().SupportedLocales()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := PathLocale(r.URL.Path, basePath, supported)
			if locale == "" {
				next.ServeHTTP(w, r)
				return
			}

			tr := i18n.NewTranslator(resolver, locale, i18n.WithTranslatorReporter(cfg.Reporter))

			ctx := context.WithValue(r.Context(), localeKey{}, locale)
			ctx = context.WithValue(ctx, translatorKey{}, tr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetTranslator extracts the Translator from the context.
// Returns nil if the I18n middleware did not run for this request.
func GetTranslator(ctx context.Context) *i18n.Translator {
	if v, ok := ctx.Value(translatorKey{}).(*i18n.Translator); ok {
		return v
	}
	return nil
}

// GetLocale extracts the resolved locale from the context.
// Returns an empty string if the I18n middleware did not run.
func GetLocale(ctx context.Context) string {
	if v, ok := ctx.Value(localeKey{}).(string); ok {
		return v
	}
	return ""
}

// LocaleExtractor returns a logger.ContextExtractor that adds "locale" to
// log entries for locale-qualified requests.
func LocaleExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := GetLocale(ctx); v != "" {
			return slog.String("locale", v), true
		}
		return slog.Attr{}, false
	}
}
