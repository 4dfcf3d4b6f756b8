package i18n

import (
	"maps"
	"time"
)

// Translator is the programmatic lookup interface, bound to one locale. It
// shares the resolution path with the streaming engine, so a token behaves
// identically whether referenced from markup or from application logic.
type Translator struct {
	resolver  *Resolver
	formatter *Formatter
	report    MissingReporter
	locale    string
}

// TranslatorOption configures a Translator during construction.
type TranslatorOption func(*Translator)

// WithTranslatorReporter sets the reporter receiving missing-translation
// events from this translator. Defaults to NopReporter.
func WithTranslatorReporter(r MissingReporter) TranslatorOption {
	return func(t *Translator) {
		if r != nil {
			t.report = r
		}
	}
}

// NewTranslator creates a Translator for the given locale.
func NewTranslator(resolver *Resolver, locale string, opts ...TranslatorOption) *Translator {
	t := &Translator{
		resolver:  resolver,
		formatter: NewFormatter(resolver),
		report:    NopReporter,
		locale:    NormalizeLocale(locale),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// T resolves a token key and, when parameter maps are supplied, expands its
// bracketed placeholders. A missing token is non-fatal: T reports the event
// and returns the visible diagnostic marker in place of the value. A bad
// parameterized template (unbound placeholder, malformed bracket) fails the
// single call with an error result.
func (t *Translator) T(key string, params ...map[string]any) (string, error) {
	table, err := t.resolver.Resolve(t.locale)
	if err != nil {
		return "", err
	}

	value, ok := table.Lookup(key)
	if !ok {
		t.report.Report(&MissingTranslationError{Locale: t.locale, Key: key})
		return missingMarker(key), nil
	}

	if len(params) == 0 {
		return value, nil
	}

	merged := make(map[string]any)
	for _, p := range params {
		maps.Copy(merged, p)
	}
	return Expand(key, value, merged)
}

// Date formats v with the locale's date pattern.
func (t *Translator) Date(v time.Time) string {
	return t.formatter.FormatDate(v, t.locale)
}

// Number formats v with the locale's number pattern.
func (t *Translator) Number(v float64) string {
	return t.formatter.FormatNumber(v, t.locale)
}

// Locale returns the translator's locale.
func (t *Translator) Locale() string {
	return t.locale
}

// Engine creates a streaming substitution engine bound to the translator's
// locale, sharing its reporter.
func (t *Translator) Engine(opts ...EngineOption) (*Engine, error) {
	table, err := t.resolver.Resolve(t.locale)
	if err != nil {
		return nil, err
	}
	merged := append([]EngineOption{WithMissingReporter(t.report)}, opts...)
	return NewEngine(table, merged...), nil
}
