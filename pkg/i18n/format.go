package i18n

import (
	"strconv"
	"strings"
	"time"
)

// Reserved token keys read by the formatters. They resolve through the same
// effective token table as ordinary tokens, so an Aspect can set an
// application-wide pattern and a BladeSet or Blade can override it.
const (
	DateFormatKey   = "br.i18n.date.format"
	NumberFormatKey = "br.i18n.number.format"
)

// Formatter produces locale-aware date and number strings. Patterns are
// resolved from the token table via the reserved format keys; when a locale
// defines no pattern, a built-in default for well-known language families is
// used, and a generic ISO-like pattern otherwise.
type Formatter struct {
	resolver *Resolver
}

// NewFormatter creates a Formatter backed by the given Resolver.
func NewFormatter(resolver *Resolver) *Formatter {
	return &Formatter{resolver: resolver}
}

// FormatDate formats t using the date pattern resolved for locale.
func (f *Formatter) FormatDate(t time.Time, locale string) string {
	return t.Format(dateLayout(f.pattern(locale, DateFormatKey, defaultDatePattern)))
}

// FormatNumber formats n using the number pattern resolved for locale.
func (f *Formatter) FormatNumber(n float64, locale string) string {
	grouping, decimal := parseNumberPattern(f.pattern(locale, NumberFormatKey, defaultNumberPattern))
	return formatNumber(n, grouping, decimal)
}

// pattern resolves a reserved format key for locale, falling back to the
// built-in defaults when the token table has no entry.
func (f *Formatter) pattern(locale, key string, builtin func(string) string) string {
	locale = NormalizeLocale(locale)
	if f.resolver != nil {
		if table, err := f.resolver.Resolve(locale); err == nil {
			if p, ok := table.Lookup(key); ok {
				return p
			}
		}
	}
	return builtin(locale)
}

// dateTokens maps date pattern components to Go time layouts. Scanning is
// longest-match-first, so the order within this table matters.
var dateTokens = []struct {
	pattern string
	layout  string
}{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"dd", "02"},
	{"d", "2"},
	{"EEEE", "Monday"},
	{"EEE", "Mon"},
	{"HH", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"a", "PM"},
}

// dateLayout converts a component-token date pattern like "dd.MM.yyyy HH:mm"
// into a Go time layout. Unrecognized characters pass through literally.
func dateLayout(pattern string) string {
	var out strings.Builder
	out.Grow(len(pattern))

scan:
	for i := 0; i < len(pattern); {
		for _, tok := range dateTokens {
			if strings.HasPrefix(pattern[i:], tok.pattern) {
				out.WriteString(tok.layout)
				i += len(tok.pattern)
				continue scan
			}
		}
		out.WriteByte(pattern[i])
		i++
	}

	return out.String()
}

// parseNumberPattern extracts the grouping and decimal separators from a
// number pattern such as "#,###.##" (comma grouping, period decimal) or
// "#.###,##" (period grouping, comma decimal). A single separator that
// occurs once before trailing digit markers is the decimal separator; a
// repeated separator is a grouping separator with no decimal part declared.
func parseNumberPattern(pattern string) (grouping, decimal string) {
	var seps []byte
	var counts = map[byte]int{}
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '#' || c == '0' {
			continue
		}
		if counts[c] == 0 {
			seps = append(seps, c)
		}
		counts[c]++
	}

	switch len(seps) {
	case 0:
		return "", "."
	case 1:
		sep := seps[0]
		// A lone separator is decimal when it occurs once and the digits
		// after it do not form a grouping-sized run of three.
		idx := strings.LastIndexByte(pattern, sep)
		tail := pattern[idx+1:]
		if counts[sep] == 1 && len(tail) > 0 && len(tail) != 3 {
			return "", string(sep)
		}
		return string(sep), "."
	default:
		return string(seps[0]), string(seps[len(seps)-1])
	}
}

// formatNumber renders n with the given separators. The fractional part
// keeps its natural precision with trailing zeros trimmed.
func formatNumber(n float64, grouping, decimal string) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var out strings.Builder
	if negative {
		out.WriteByte('-')
	}

	if grouping == "" || len(intPart) <= 3 {
		out.WriteString(intPart)
	} else {
		lead := len(intPart) % 3
		if lead > 0 {
			out.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if i > 0 {
				out.WriteString(grouping)
			}
			out.WriteString(intPart[i : i+3])
		}
	}

	if fracPart != "" {
		out.WriteString(decimal)
		out.WriteString(fracPart)
	}

	return out.String()
}
