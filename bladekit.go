package bladekit

import (
	"github.com/bladekit/bladekit/pkg/i18n"
)

// Translator is an alias for i18n.Translator for convenience.
type Translator = i18n.Translator

// TokenTable is an alias for i18n.TokenTable for convenience.
type TokenTable = i18n.TokenTable

// MissingReporter is an alias for i18n.MissingReporter for convenience.
type MissingReporter = i18n.MissingReporter

// Reserved token keys controlling locale formatting.
const (
	DateFormatKey   = i18n.DateFormatKey
	NumberFormatKey = i18n.NumberFormatKey
)
