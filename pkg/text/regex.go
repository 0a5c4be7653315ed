package text

import "regexp"

// Pre-compiled regular expressions
var (
	nonDigitRegex        = regexp.MustCompile(`\D`)
	digitOrNonDigitRegex = regexp.MustCompile(`\d+|\D+`)
	leadingZeroRegex     = regexp.MustCompile(`^0([1-9])`)

	whitespaceRegex       = regexp.MustCompile(`\s+`)
	doubleWhitespaceRegex = regexp.MustCompile(`\s\s+`)

	headingRegex = regexp.MustCompile(`^h[1-6]$`)
)
