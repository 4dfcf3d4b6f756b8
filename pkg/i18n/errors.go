package i18n

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceNotFound reports a scope that declares i18n support but has
	// no resource files for any supported locale.
	ErrResourceNotFound = errors.New("i18n: no resource files found for scope")

	// ErrUnsupportedLocale reports a locale outside the declared supported set.
	ErrUnsupportedLocale = errors.New("i18n: unsupported locale")

	// ErrEmptyLocale is returned when a locale identifier is required but empty.
	ErrEmptyLocale = errors.New("i18n: locale cannot be empty")
)

// DuplicateTokenError reports a token key defined more than once within a
// single scope for one locale. Overrides across scopes are intentional;
// duplicates within a scope are a configuration error.
type DuplicateTokenError struct {
	Scope  string
	Locale string
	Key    string
}

func (e *DuplicateTokenError) Error() string {
	return fmt.Sprintf("i18n: token %q defined twice in scope %q for locale %q", e.Key, e.Scope, e.Locale)
}

// UnboundParameterError reports a template placeholder with no supplied value.
type UnboundParameterError struct {
	Key         string // token key of the template, if known
	Placeholder string
}

func (e *UnboundParameterError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("i18n: no value supplied for placeholder [%s]", e.Placeholder)
	}
	return fmt.Sprintf("i18n: no value supplied for placeholder [%s] in token %q", e.Placeholder, e.Key)
}

// MalformedTemplateError reports an unterminated or empty placeholder bracket.
type MalformedTemplateError struct {
	Key      string // token key of the template, if known
	Template string
	Pos      int // byte offset of the offending '['
}

func (e *MalformedTemplateError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("i18n: malformed placeholder at offset %d in template %q", e.Pos, e.Template)
	}
	return fmt.Sprintf("i18n: malformed placeholder at offset %d in token %q", e.Pos, e.Key)
}

// MissingTranslationError reports a token with no entry in the effective
// token table for the active locale. It is non-fatal: rendering continues
// with a diagnostic marker and the event is collected for reporting.
type MissingTranslationError struct {
	Locale string
	Key    string
}

func (e *MissingTranslationError) Error() string {
	return fmt.Sprintf("i18n: no translation for token %q in locale %q", e.Key, e.Locale)
}
