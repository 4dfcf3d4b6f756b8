package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength bounds header parsing against oversized input.
const maxAcceptLanguageLength = 4096

type languageRange struct {
	tag     string
	quality float64
}

// MatchAcceptLanguage parses an Accept-Language header and returns the first
// supported locale in the header's preference order. Quality values are
// honored; an exact tag match beats a base-language match at the same
// quality. Returns "" when nothing in the header matches the supported set,
// leaving the fallback decision to the caller.
//
// Example: header "de,en;q=0.8" with supported {en, de, es} returns "de".
func MatchAcceptLanguage(header string, supported []string) string {
	if header == "" || len(supported) == 0 {
		return ""
	}

	for _, rng := range parseLanguageRanges(header) {
		// Exact match first, then any supported locale sharing the base
		// language (so "en-US" in the header can select "en").
		for _, loc := range supported {
			if NormalizeLocale(loc) == rng.tag {
				return loc
			}
		}
		for _, loc := range supported {
			if BaseLocale(NormalizeLocale(loc)) == BaseLocale(rng.tag) {
				return loc
			}
		}
	}

	return ""
}

// parseLanguageRanges splits an Accept-Language header into ranges ordered
// by descending quality. Ranges with q=0 and the "*" wildcard are dropped;
// the wildcard adds no information for locale selection.
func parseLanguageRanges(header string) []languageRange {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var ranges []languageRange
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tag, qPart, hasQ := strings.Cut(part, ";")
		tag = NormalizeLocale(tag)
		if tag == "" || tag == "*" {
			continue
		}

		quality := 1.0
		if hasQ {
			qPart = strings.TrimSpace(qPart)
			if v, ok := strings.CutPrefix(qPart, "q="); ok {
				if q, err := strconv.ParseFloat(v, 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}
		if quality == 0 {
			continue
		}

		ranges = append(ranges, languageRange{tag: tag, quality: quality})
	}

	slices.SortStableFunc(ranges, func(a, b languageRange) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return ranges
}
