package classnames_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carbon-eel/eel/pkg/classnames"
	"github.com/carbon-eel/eel/pkg/value"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []any
		expected string
	}{
		{name: "list and string", args: []any{[]any{"a", "b"}, "b c"}, expected: "a b c"},
		{name: "last occurrence wins", args: []any{"a b", "a"}, expected: "b a"},
		{name: "extra whitespace", args: []any{"  a   b ", "\tc\n"}, expected: "a b c"},
		{name: "map with booleans", args: []any{value.NewMap("active", true, "hidden", false)}, expected: "active"},
		{name: "map with strings", args: []any{value.NewMap("base", "x y", "other", "z")}, expected: "x y z"},
		{name: "nested", args: []any{[]any{"a", []any{"b", []any{"c d"}}}}, expected: "a b c d"},
		{name: "true argument", args: []any{true}, expected: "true"},
		{name: "numbers", args: []any{"col", 12}, expected: "col 12"},
		{name: "falsy values", args: []any{nil, false, "", "0"}, expected: ""},
		{name: "no arguments", args: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, classnames.Merge(tt.args...))
		})
	}
}

func TestMergeList(t *testing.T) {
	t.Parallel()

	assert.Nil(t, classnames.MergeList())
	assert.Equal(t, []string{"a", "b"}, classnames.MergeList("a", []string{"b"}))
}
