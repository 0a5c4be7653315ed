// Package numfmt formats numbers for display, either with explicit
// separators or following the conventions of a locale.
package numfmt

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// significantDigits is the precision a float64 is rounded to before the
// requested decimals are applied, so 1.005 rounds like the decimal it prints as.
const significantDigits = 15

// Format groups thousands and rounds to the given number of decimals,
// rounding half away from zero. Separators may be empty or longer than one character:
//
//	Format(1234.567, 2, ",", ".") // "1.234,57"
//	Format(1234.5, 0, ".", ",")   // "1,235"
func Format(n float64, decimals int, decPoint, thousandsSep string) string {
	switch {
	case math.IsNaN(n):
		return "nan"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}
	decimals = max(decimals, 0)

	intPart, frac := roundDecimal(math.Abs(n), decimals)
	var whole big.Int
	whole.SetString(intPart, 10)

	// humanize groups with ","; swap in the requested separator afterwards.
	out := strings.ReplaceAll(humanize.BigComma(&whole), ",", thousandsSep)
	if decimals > 0 {
		out += decPoint + frac
	}
	if n < 0 && strings.Trim(intPart+frac, "0") != "" {
		out = "-" + out
	}
	return out
}

// roundDecimal returns the integer and fraction digits of the non-negative n
// rounded half up to decimals places.
func roundDecimal(n float64, decimals int) (string, string) {
	s := strconv.FormatFloat(n, 'e', significantDigits-1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)
	digits := []byte(strings.Replace(mantissa, ".", "", 1))

	point := e + 1
	if point < 0 {
		digits = append([]byte(strings.Repeat("0", -point)), digits...)
		point = 0
	}
	if keep := point + decimals; keep < len(digits) {
		up := digits[keep] >= '5'
		digits = digits[:keep]
		if up && increment(digits) {
			digits = append([]byte{'1'}, digits...)
			point++
		}
	} else {
		digits = append(digits, strings.Repeat("0", keep-len(digits))...)
	}

	intPart := string(digits[:point])
	if intPart == "" {
		intPart = "0"
	}
	return intPart, string(digits[point:])
}

// increment adds one to the decimal digits and reports a carry out of the
// leading digit.
func increment(digits []byte) bool {
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			return false
		}
		digits[i] = '0'
	}
	return true
}

// FormatLocale formats n with the separators of locale. Both "de_DE" and
// "de-DE" are accepted; unknown locales fall back to the root locale.
func FormatLocale(n float64, decimals int, locale string) string {
	decimals = max(decimals, 0)
	tag := Tag(locale)
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(n,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// Tag parses a POSIX or BCP 47 locale identifier.
func Tag(locale string) language.Tag {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return language.Make(locale)
}
