package i18n

// Built-in format patterns for well-known language families, used when the
// token table defines no pattern for the reserved format keys. The table is
// keyed by base language; region variants inherit their family's patterns.
// Locales outside the table get a generic ISO date and a plain number.
var builtinFormats = map[string]struct {
	date   string
	number string
}{
	"en": {date: "MM/dd/yyyy", number: "#,###.##"},
	"de": {date: "dd.MM.yyyy", number: "#.###,##"},
	"fr": {date: "dd/MM/yyyy", number: "# ###,##"},
	"zh": {date: "yyyy-MM-dd", number: "#,###.##"},
}

const (
	genericDatePattern   = "yyyy-MM-dd"
	genericNumberPattern = "###.##"
)

func defaultDatePattern(locale string) string {
	if f, ok := builtinFormats[BaseLocale(locale)]; ok {
		return f.date
	}
	return genericDatePattern
}

func defaultNumberPattern(locale string) string {
	if f, ok := builtinFormats[BaseLocale(locale)]; ok {
		return f.number
	}
	return genericNumberPattern
}
