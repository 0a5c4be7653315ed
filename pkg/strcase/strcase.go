// Package strcase converts strings between naming conventions used in
// templates: PascalCase, camelCase, hyphen-case and Title Case Words.
package strcase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/carbon-eel/eel/pkg/value"
)

var (
	wordSeparators  = strings.NewReplacer("-", " ", "_", " ")
	titleSeparators = strings.NewReplacer("-", " ", "_", " ", ".", " ")
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// ucwords upper-cases the first letter of every whitespace separated word
// and leaves the rest of the word untouched. Words are joined with sep.
// Punctuation inside a word does not start a new one: "foo/bar" is "Foo/bar".
func ucwords(s, sep string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, sep)
}

// ToPascalCase converts "hello_world-foo bar" to "HelloWorldFooBar".
func ToPascalCase(s string) string {
	return ucwords(wordSeparators.Replace(s), "")
}

// ToCamelCase converts "hello_world" to "helloWorld".
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	r, size := utf8.DecodeRuneInString(pascal)
	if size == 0 {
		return ""
	}
	return string(unicode.ToLower(r)) + pascal[size:]
}

// ConvertCamelCase converts "HelloWorld" to "hello-world".
// The separator is inserted after every ASCII letter followed by an upper case ASCII letter.
func ConvertCamelCase(s, sep string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		b.WriteByte(c)
		if i+1 < len(s) && isASCIILetter(c) && isASCIIUpper(s[i+1]) {
			b.WriteString(sep)
		}
	}
	return strings.ToLower(b.String())
}

// TitleCaseWords splits a string on upper case letters, "-", "_" and "."
// and capitalizes every word: "helloWorld-foo" becomes "Hello World Foo".
func TitleCaseWords(s string) string {
	if s == "" {
		return ""
	}
	s = titleSeparators.Replace(s)

	var b strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return ucwords(b.String(), " ")
}

// ConvertToString joins list input with sep, collapses whitespace and trims.
// Scalars are converted with value.String.
func ConvertToString(v any, sep string) string {
	var s string
	if value.IsList(v) || value.IsIterable(v) {
		list, _ := value.List(v)
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = value.String(item)
		}
		s = strings.Join(parts, sep)
	} else {
		s = value.String(v)
	}
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
