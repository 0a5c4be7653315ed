package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// maxAcceptLanguageLength bounds the preference lists Negotiate parses.
const maxAcceptLanguageLength = 4096

// NormalizeLocale converts a locale identifier to the underscore form used in
// translation directories: "de-ch" and "de_CH" both become "de_CH".
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(strings.ReplaceAll(locale, "-", "_"))
	lang, region, ok := strings.Cut(locale, "_")
	if !ok {
		return strings.ToLower(locale)
	}
	return strings.ToLower(lang) + "_" + strings.ToUpper(region)
}

// LocaleChain returns the lookup order for a locale: the locale itself, its
// language and finally def. Duplicates and empty entries are removed.
func LocaleChain(locale, def string) []string {
	chain := make([]string, 0, 3)
	add := func(l string) {
		if l != "" && !slices.Contains(chain, l) {
			chain = append(chain, l)
		}
	}

	locale = NormalizeLocale(locale)
	add(locale)
	if lang, _, ok := strings.Cut(locale, "_"); ok {
		add(lang)
	}
	add(NormalizeLocale(def))
	return chain
}

type localeWithQ struct {
	locale string
	q      float64
}

// parsePreferences parses an Accept-Language style list ("de-CH,de;q=0.9")
// ordered by descending quality.
func parsePreferences(header string) []localeWithQ {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var prefs []localeWithQ
	for part := range strings.SplitSeq(header, ",") {
		locale, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		locale = NormalizeLocale(locale)
		if locale == "" || locale == "*" {
			continue
		}

		q := 1.0
		if qv, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if f, err := strconv.ParseFloat(qv, 64); err == nil && f >= 0 && f <= 1 {
				q = f
			}
		}
		prefs = append(prefs, localeWithQ{locale: locale, q: q})
	}

	slices.SortStableFunc(prefs, func(a, b localeWithQ) int {
		return cmp.Compare(b.q, a.q)
	})
	return prefs
}

// Negotiate picks the best supported locale for a preference list such as
// an Accept-Language header. Exact matches win over language-only matches.
// def is returned when nothing matches.
func Negotiate(preferences string, supported []string, def string) string {
	if preferences == "" || len(supported) == 0 {
		return def
	}

	normalized := make([]string, len(supported))
	for i, l := range supported {
		normalized[i] = NormalizeLocale(l)
	}

	prefs := parsePreferences(preferences)

	for _, p := range prefs {
		if i := slices.Index(normalized, p.locale); i >= 0 {
			return supported[i]
		}
	}

	for _, p := range prefs {
		if lang, _, ok := strings.Cut(p.locale, "_"); ok {
			if i := slices.Index(normalized, lang); i >= 0 {
				return supported[i]
			}
		}
	}

	return def
}
