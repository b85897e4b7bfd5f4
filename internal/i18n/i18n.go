// Package i18n holds the static UI copy for the supported locales and the
// lookup rules pages render with: a missing locale falls back to English, a
// missing key falls back to the English value, and a key unknown everywhere
// renders as the raw key so the gap is visible instead of blank.
package i18n

// Supported locales, in display order for the language switcher.
var Locales = []string{"en", "es", "pt"}

const defaultLocale = "en"

// Resolve maps an arbitrary locale tag to a supported one.
func Resolve(locale string) string {
	if _, ok := catalog[locale]; ok {
		return locale
	}
	return defaultLocale
}

// T looks up key in the given locale's catalog.
func T(locale, key string) string {
	if dict, ok := catalog[locale]; ok {
		if value, ok := dict[key]; ok {
			return value
		}
	}
	if value, ok := catalog[defaultLocale][key]; ok {
		return value
	}
	return key
}

// Dict returns the full catalog for a locale, resolved. Handy for templates
// that iterate over related keys.
func Dict(locale string) map[string]string {
	return catalog[Resolve(locale)]
}
