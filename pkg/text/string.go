package text

import (
	"strconv"
	"strings"
)

const nbsp = "\u00a0"

var nbspReplacer = strings.NewReplacer("&nbsp;", " ", nbsp, " ")

// CollapseWhitespace replaces every whitespace run with a single space and trims.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveNbsp turns "&nbsp;" entities and non-breaking spaces into regular
// spaces, collapses repeated whitespace and trims.
func RemoveNbsp(s string) string {
	return Apply(s, nbspReplacer.Replace, collapseDoubleWhitespace, strings.TrimSpace)
}

func collapseDoubleWhitespace(s string) string {
	return doubleWhitespaceRegex.ReplaceAllString(s, " ")
}

// Nl2br trims s and replaces every line break with sep.
func Nl2br(s, sep string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", sep)
}

// Nl2brDefault is Nl2br with "<br>".
func Nl2brDefault(s string) string {
	return Nl2br(s, "<br>")
}

// ReplaceOnce replaces the first occurrence of search with replace.
func ReplaceOnce(s, search, replace string) string {
	if search == "" {
		return s
	}
	return strings.Replace(s, search, replace, 1)
}

// SplitIntegerAndString splits s into alternating runs of digits and
// non-digits. Digit runs are returned as int values:
//
//	SplitIntegerAndString("abc123def") // []any{"abc", 123, "def"}
func SplitIntegerAndString(s string) []any {
	matches := digitOrNonDigitRegex.FindAllString(s, -1)
	out := make([]any, 0, len(matches))
	for _, m := range matches {
		if n, err := strconv.Atoi(m); err == nil {
			out = append(out, n)
			continue
		}
		out = append(out, m)
	}
	return out
}
