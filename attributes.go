package eel

import (
	"github.com/a-h/templ"

	"github.com/carbon-eel/eel/pkg/styles"
)

// Attributes builds class and style attributes for templ components.
// class accepts everything Tailwind.Merge does, style everything
// String.Styles does. Empty attributes are left out.
//
//	<div { h.Attributes([]any{"p-2", "p-4"}, map[string]any{"fontSize": "1rem"})... }>
func (h *Helpers) Attributes(class, style any) templ.Attributes {
	attrs := templ.Attributes{}
	if c := h.Tailwind.Merge(class); c != "" {
		attrs["class"] = c
	}
	if s := styles.Build(style); s != "" {
		attrs["style"] = s
	}
	return attrs
}
