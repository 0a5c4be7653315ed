package bem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carbon-eel/eel/pkg/bem"
	"github.com/carbon-eel/eel/pkg/value"
)

func TestClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		block     string
		element   string
		modifiers any
		expected  []string
	}{
		{
			name:      "block element modifier",
			block:     "block",
			element:   "elem",
			modifiers: []any{"mod"},
			expected:  []string{"block__elem", "block__elem--mod"},
		},
		{
			name:     "block only",
			block:    "block",
			expected: []string{"block"},
		},
		{
			name:      "string modifier",
			block:     "block",
			modifiers: "big",
			expected:  []string{"block", "block--big"},
		},
		{
			name:      "int modifier",
			block:     "grid",
			modifiers: 3,
			expected:  []string{"grid", "grid--3"},
		},
		{
			name:      "zero is kept",
			block:     "grid",
			modifiers: []any{0, "", false, nil},
			expected:  []string{"grid", "grid--0"},
		},
		{
			name:      "boolean map",
			block:     "button",
			modifiers: value.NewMap("active", true, "disabled", false, "size", "large"),
			expected:  []string{"button", "button--active", "button--large"},
		},
		{
			name:      "nested lists and duplicates",
			block:     "card",
			element:   "title",
			modifiers: []any{"a", []any{"b", "a"}, []string{"c"}},
			expected:  []string{"card__title", "card__title--a", "card__title--b", "card__title--c"},
		},
		{
			name:      "empty block",
			block:     "",
			element:   "elem",
			modifiers: "mod",
			expected:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, bem.Classes(tt.block, tt.element, tt.modifiers))
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "block__elem block__elem--mod", bem.String("block", "elem", "mod"))
	assert.Equal(t, "", bem.String("", "", nil))
	assert.Equal(t, "nav nav--open", bem.Modifier("nav", map[string]any{"open": true}))
}
