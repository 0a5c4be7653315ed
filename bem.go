package eel

import (
	"github.com/carbon-eel/eel/pkg/bem"
	"github.com/carbon-eel/eel/pkg/expr"
	"github.com/carbon-eel/eel/pkg/value"
)

// BEMHelper builds Block Element Modifier class names.
type BEMHelper struct{}

// String returns the classes of block, element and modifiers joined by a space.
func (h *BEMHelper) String(block, element any, modifiers ...any) string {
	return bem.String(value.String(block), value.String(element), modifierArg(modifiers))
}

// Modifier returns class followed by its modifier classes.
func (h *BEMHelper) Modifier(class any, modifiers ...any) string {
	return bem.Modifier(value.String(class), modifierArg(modifiers))
}

// Array returns the classes of block, element and modifiers as a list.
func (h *BEMHelper) Array(block, element any, modifiers ...any) []string {
	return bem.Classes(value.String(block), value.String(element), modifierArg(modifiers))
}

// AllowsCallOfMethod reports that every method may be called from expressions.
func (h *BEMHelper) AllowsCallOfMethod(string) bool {
	return true
}

func (h *BEMHelper) functions() []expr.Function {
	return []expr.Function{
		function("Carbon.BEM.string", 0, 3, pure(func(a []any) any { return h.String(arg(a, 0), arg(a, 1), arg(a, 2)) })),
		function("Carbon.BEM.modifier", 0, 2, pure(func(a []any) any { return h.Modifier(arg(a, 0), arg(a, 1)) })),
		function("Carbon.BEM.array", 0, 3, pure(func(a []any) any { return h.Array(arg(a, 0), arg(a, 1), arg(a, 2)) })),
	}
}
