// Package slug turns arbitrary text into URL path segments.
//
// Make folds diacritics to ASCII ("café" becomes "cafe"), replaces every other
// non-alphanumeric run with a separator and lowercases the result:
//
//	slug.Make("Hello World!")                 // "hello-world"
//	slug.Make("Price: $99", slug.MaxLength(8)) // "price-99"
//
// Urlize additionally transliterates non-Latin scripts and ligatures before
// slugifying, so "Ä Straße" becomes "a-strasse" and "Привет" becomes "privet".
//
// Options: MaxLength, Separator, Lowercase, StripChars, CustomReplace,
// WithSuffix and Transliterate. MaxLength counts runes, not bytes.
package slug
