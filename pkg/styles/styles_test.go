package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbon-eel/eel/pkg/styles"
	"github.com/carbon-eel/eel/pkg/value"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []any
		expected string
	}{
		{
			name:     "camel case map",
			args:     []any{value.NewMap("fontSize", "12px", "zIndex", 3)},
			expected: "font-size:12px;z-index:3;",
		},
		{
			name:     "css string",
			args:     []any{"color: red; --gap:10px;"},
			expected: "color:red;--gap:10px;",
		},
		{
			name:     "later wins and keeps position",
			args:     []any{"color:red;margin:0", value.NewMap("color", "blue")},
			expected: "color:blue;margin:0;",
		},
		{
			name:     "empty and invalid values are skipped",
			args:     []any{value.NewMap("color", "", "width", nil, "height", true), "broken"},
			expected: "",
		},
		{
			name:     "list entries are skipped",
			args:     []any{[]any{"color:red"}},
			expected: "",
		},
		{
			name:     "plain map sorted by key",
			args:     []any{map[string]any{"width": "1px", "color": "red"}},
			expected: "color:red;width:1px;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, styles.Build(tt.args...))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	m := styles.Parse(" background : url(a:b) ; color:red;color:blue; nonsense ")
	require.Equal(t, 2, m.Len())

	v, ok := m.Get("background")
	require.True(t, ok)
	assert.Equal(t, "url(a:b)", v)

	v, _ = m.Get("color")
	assert.Equal(t, "blue", v)
}
