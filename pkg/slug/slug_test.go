package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carbon-eel/eel/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		opts     []slug.Option
		expected string
	}{
		{name: "simple text", input: "Hello World", expected: "hello-world"},
		{name: "punctuation", input: "Hello, World!", expected: "hello-world"},
		{name: "leading and trailing spaces", input: "  spaced  ", expected: "spaced"},
		{name: "consecutive separators", input: "a -- b", expected: "a-b"},
		{name: "empty string", input: "", expected: ""},
		{name: "only special characters", input: "!@#$%", expected: ""},
		{name: "diacritics", input: "Über Café", expected: "uber-cafe"},
		{name: "keep case", input: "Hello World", opts: []slug.Option{slug.Lowercase(false)}, expected: "Hello-World"},
		{name: "custom separator", input: "Hello World", opts: []slug.Option{slug.Separator("_")}, expected: "hello_world"},
		{name: "multi-character separator", input: "a b", opts: []slug.Option{slug.Separator("--")}, expected: "a--b"},
		{name: "max length", input: "Price: $99", opts: []slug.Option{slug.MaxLength(8)}, expected: "price-99"},
		{name: "max length drops trailing separator", input: "Hello World", opts: []slug.Option{slug.MaxLength(6)}, expected: "hello"},
		{name: "strip chars", input: "it's fine", opts: []slug.Option{slug.StripChars("'")}, expected: "its-fine"},
		{
			name:     "custom replacements",
			input:    "Tom & Jerry",
			opts:     []slug.Option{slug.CustomReplace(map[string]string{"&": "and"})},
			expected: "tom-and-jerry",
		},
		{name: "emoji stripped", input: "Go 🚀 fast", expected: "go-fast"},
		{name: "transliterate", input: "Ä Straße", opts: []slug.Option{slug.Transliterate(true)}, expected: "a-strasse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Make(tt.input, tt.opts...))
		})
	}
}

func TestUrlize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "Ä Straße", expected: "a-strasse"},
		{input: "Привет мир", expected: "privet-mir"},
		{input: "Crème brûlée", expected: "creme-brulee"},
		{input: "Hello World", expected: "hello-world"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Urlize(tt.input))
		})
	}
}

func TestMakeWithSuffix(t *testing.T) {
	t.Parallel()

	t.Run("basic suffix", func(t *testing.T) {
		t.Parallel()
		parts := strings.Split(slug.Make("Hello World", slug.WithSuffix(6)), "-")
		assert.Equal(t, []string{"hello", "world"}, parts[:2])
		assert.Regexp(t, "^[a-z0-9]{6}$", parts[2])
	})

	t.Run("mixed case suffix", func(t *testing.T) {
		t.Parallel()
		parts := strings.Split(slug.Make("Test", slug.WithSuffix(8), slug.Lowercase(false)), "-")
		assert.Equal(t, "Test", parts[0])
		assert.Regexp(t, "^[a-zA-Z0-9]{8}$", parts[1])
	})

	t.Run("suffix respects max length", func(t *testing.T) {
		t.Parallel()
		result := slug.Make("Very Long Title Here", slug.WithSuffix(6), slug.MaxLength(20))
		assert.LessOrEqual(t, len(result), 20)
		parts := strings.Split(result, "-")
		assert.Len(t, parts[len(parts)-1], 6)
	})

	t.Run("suffix longer than max length", func(t *testing.T) {
		t.Parallel()
		assert.Regexp(t, "^[a-z0-9]{8}$", slug.Make("Test", slug.WithSuffix(10), slug.MaxLength(8)))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Regexp(t, "^[a-z0-9]{5}$", slug.Make("", slug.WithSuffix(5)))
	})

	t.Run("suffixes differ", func(t *testing.T) {
		t.Parallel()
		a := slug.Make("Same Title", slug.WithSuffix(8))
		b := slug.Make("Same Title", slug.WithSuffix(8))
		assert.NotEqual(t, a, b)
		assert.True(t, strings.HasPrefix(a, "same-title-"))
	})
}
