package strcase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carbon-eel/eel/pkg/strcase"
)

func TestToPascalCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "mixed separators", input: "hello_world-foo bar", expected: "HelloWorldFooBar"},
		{name: "already pascal", input: "HelloWorld", expected: "HelloWorld"},
		{name: "keeps inner case", input: "my-iPhone", expected: "MyIPhone"},
		{name: "slash stays inside the word", input: "foo/bar", expected: "Foo/bar"},
		{name: "apostrophe stays inside the word", input: "o'neil test", expected: "O'neilTest"},
		{name: "unicode first letter", input: "über_cool", expected: "ÜberCool"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, strcase.ToPascalCase(tt.input))
		})
	}
}

func TestToCamelCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "helloWorld", strcase.ToCamelCase("hello_world"))
	assert.Equal(t, "helloWorld", strcase.ToCamelCase("Hello-World"))
	assert.Equal(t, "", strcase.ToCamelCase(""))
}

func TestConvertCamelCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		sep      string
		expected string
	}{
		{name: "hyphen", input: "HelloWorld", sep: "-", expected: "hello-world"},
		{name: "underscore", input: "HelloWorld", sep: "_", expected: "hello_world"},
		{name: "no separator", input: "HelloWorld", sep: "", expected: "helloworld"},
		{name: "css property", input: "fontSize", sep: "-", expected: "font-size"},
		{name: "acronym", input: "HTMLTag", sep: "-", expected: "h-t-m-l-tag"},
		{name: "digits are not letters", input: "h1Title", sep: "-", expected: "h1title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, strcase.ConvertCamelCase(tt.input, tt.sep))
		})
	}
}

func TestTitleCaseWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "camel", input: "helloWorld", expected: "Hello World"},
		{name: "separators", input: "hello-world_foo.bar", expected: "Hello World Foo Bar"},
		{name: "slash", input: "read/write", expected: "Read/write"},
		{name: "pascal with spaces", input: "  HelloWorld  again ", expected: "Hello World Again"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, strcase.TitleCaseWords(tt.input))
		})
	}
}

func TestConvertToString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		sep      string
		expected string
	}{
		{name: "trims", input: " helloworld  ", sep: " ", expected: "helloworld"},
		{name: "list", input: []any{" hello", " world"}, sep: " ", expected: "hello world"},
		{name: "separator", input: []string{"hello", "world"}, sep: "-", expected: "hello-world"},
		{name: "newlines", input: "a\n\n b", sep: " ", expected: "a b"},
		{name: "number", input: 12, sep: " ", expected: "12"},
		{name: "nil", input: nil, sep: " ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, strcase.ConvertToString(tt.input, tt.sep))
		})
	}
}
