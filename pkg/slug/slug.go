package slug

import (
	"strings"
	"unicode"

	"github.com/gosimple/unidecode"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	suffixAlphabet      = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixAlphabetUpper = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Option configures the slug generation behavior.
type Option func(*config)

type config struct {
	maxLength     int
	separator     string
	lowercase     bool
	stripChars    string
	customReplace map[string]string
	suffixLength  int
	transliterate bool
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
	}
}

// MaxLength sets the maximum rune length of the generated slug.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the separator. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Lowercase controls lowercase conversion. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// StripChars removes the given characters before slugification.
func StripChars(chars string) Option {
	return func(c *config) {
		c.stripChars = chars
	}
}

// CustomReplace applies string replacements before slugification,
// e.g. {"&": "and"}.
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// WithSuffix appends a random alphanumeric suffix of the given length.
func WithSuffix(length int) Option {
	return func(c *config) {
		c.suffixLength = length
	}
}

// Transliterate converts non-ASCII text to its closest ASCII spelling
// before slugification instead of only folding diacritics.
func Transliterate(enabled bool) Option {
	return func(c *config) {
		c.transliterate = enabled
	}
}

// Urlize builds a lowercase, hyphen separated slug from any script.
func Urlize(s string) string {
	return Make(s, Transliterate(true))
}

// Make creates a URL-safe slug from the input string.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	for old, repl := range cfg.customReplace {
		s = strings.ReplaceAll(s, old, repl)
	}
	for _, char := range cfg.stripChars {
		s = strings.ReplaceAll(s, string(char), "")
	}

	if cfg.transliterate {
		s = unidecode.Unidecode(s)
	} else {
		s = foldDiacritics(s)
	}

	sepLen := len([]rune(cfg.separator))

	var b strings.Builder
	b.Grow(len(s))

	lastWasSep := true // avoids a leading separator
	count := 0

	for _, r := range s {
		if cfg.maxLength > 0 && count >= cfg.maxLength {
			break
		}

		if isAlnum(r) {
			if cfg.lowercase {
				r = unicode.ToLower(r)
			}
			b.WriteRune(r)
			lastWasSep = false
			count++
			continue
		}

		if lastWasSep {
			continue
		}
		if cfg.maxLength > 0 && count+sepLen > cfg.maxLength {
			break
		}
		b.WriteString(cfg.separator)
		lastWasSep = true
		count += sepLen
	}

	result := b.String()
	if cfg.separator != "" {
		result = strings.TrimSuffix(result, cfg.separator)
	}

	if cfg.suffixLength > 0 {
		result = appendSuffix(result, cfg)
	}

	return result
}

// appendSuffix adds a random suffix, shortening the slug so the total
// stays within maxLength.
func appendSuffix(slug string, cfg *config) string {
	n := cfg.suffixLength
	if cfg.maxLength > 0 && n > cfg.maxLength {
		n = cfg.maxLength
	}

	alphabet := suffixAlphabet
	if !cfg.lowercase {
		alphabet = suffixAlphabetUpper
	}
	suffix, err := gonanoid.Generate(alphabet, n)
	if err != nil {
		// Deterministic fallback; the alphabet is always valid so this is unreachable in practice.
		suffix = strings.Repeat("0", n)
	}

	sepLen := len([]rune(cfg.separator))
	if cfg.maxLength > 0 {
		room := cfg.maxLength - sepLen - n
		if room <= 0 {
			return suffix
		}
		if r := []rune(slug); len(r) > room {
			slug = strings.TrimSuffix(string(r[:room]), cfg.separator)
		}
	}

	if slug == "" {
		return suffix
	}
	return slug + cfg.separator + suffix
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// foldDiacritics strips combining marks after canonical decomposition.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
