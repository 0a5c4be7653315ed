package eel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carbon-eel/eel"
	"github.com/carbon-eel/eel/pkg/value"
)

func TestAlpineJS(t *testing.T) {
	t.Parallel()

	h := eel.New().AlpineJS

	tests := []struct {
		name     string
		fn       func() string
		expected string
	}{
		{name: "function", fn: func() string { return h.Function("dropdown", map[string]any{"open": false}, "main") }, expected: "dropdown({open:false},'main')"},
		{name: "x-data", fn: func() string { return h.XData("slider", 3, nil) }, expected: "slider(3,null)"},
		{name: "list argument", fn: func() string { return h.XData("tabs", []any{"a", "b"}) }, expected: "tabs(['a','b'])"},
		{name: "expression argument", fn: func() string { return h.Function("show", h.Expression("item.id")) }, expected: "show(item.id)"},
		{name: "magic", fn: func() string { return h.Magic("dispatch", "close") }, expected: "$dispatch('close')"},
		{name: "magic keeps prefix", fn: func() string { return h.Magic("$refs") }, expected: "$refs()"},
		{name: "object skips nil", fn: func() string { return h.Object(value.NewMap("a", 1, "b", nil)) }, expected: "{a:1}"},
		{name: "object method", fn: func() string { return h.Object(value.NewMap("init()", "{ open = true }")) }, expected: "{init(){ open = true }}"},
		{name: "object of scalar", fn: func() string { return h.Object("text") }, expected: ""},
		{name: "expression", fn: func() string { return h.Expression("foo") }, expected: "__EXPRESSION__foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.fn())
		})
	}
}
