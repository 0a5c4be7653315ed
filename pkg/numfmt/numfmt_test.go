package numfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/carbon-eel/eel/pkg/numfmt"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		n        float64
		decimals int
		dec      string
		thou     string
		expected string
	}{
		{name: "defaults", n: 1234.5, decimals: 0, dec: ".", thou: ",", expected: "1,235"},
		{name: "two decimals", n: 1234.567, decimals: 2, dec: ".", thou: ",", expected: "1,234.57"},
		{name: "german", n: 1234567.891, decimals: 2, dec: ",", thou: ".", expected: "1.234.567,89"},
		{name: "no grouping", n: 1234.5, decimals: 1, dec: ".", thou: "", expected: "1234.5"},
		{name: "long separators", n: 1234.5, decimals: 1, dec: " dot ", thou: "'", expected: "1'234 dot 5"},
		{name: "small", n: 0.5, decimals: 0, dec: ".", thou: ",", expected: "1"},
		{name: "padding", n: 3, decimals: 2, dec: ".", thou: ",", expected: "3.00"},
		{name: "negative", n: -1234.5, decimals: 0, dec: ".", thou: ",", expected: "-1,235"},
		{name: "negative decimals are ignored", n: 12.3, decimals: -1, dec: ".", thou: ",", expected: "12"},
		{name: "beyond int64", n: 1e20, decimals: 0, dec: ".", thou: ",", expected: "100,000,000,000,000,000,000"},
		{name: "half up on decimal value", n: 1.005, decimals: 2, dec: ".", thou: ",", expected: "1.01"},
		{name: "half up below one", n: 0.285, decimals: 2, dec: ".", thou: ",", expected: "0.29"},
		{name: "carry into new digit", n: 999.996, decimals: 2, dec: ".", thou: ",", expected: "1,000.00"},
		{name: "many decimals", n: 0.1, decimals: 12, dec: ".", thou: ",", expected: "0.100000000000"},
		{name: "tiny", n: 0.0004, decimals: 3, dec: ".", thou: ",", expected: "0.000"},
		{name: "negative rounds to zero", n: -0.4, decimals: 0, dec: ".", thou: ",", expected: "0"},
		{name: "zero", n: 0, decimals: 1, dec: ".", thou: ",", expected: "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, numfmt.Format(tt.n, tt.decimals, tt.dec, tt.thou))
		})
	}
}

func TestFormatLocale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1,234.50", numfmt.FormatLocale(1234.5, 2, "en_US"))
	assert.Equal(t, "1.234,50", numfmt.FormatLocale(1234.5, 2, "de_DE"))
	assert.Equal(t, "1.234", numfmt.FormatLocale(1234, 0, "de-DE"))
}

func TestTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, language.MustParse("de-CH"), numfmt.Tag("de_CH.UTF-8"))
	assert.Equal(t, language.English, numfmt.Tag("en"))
}
