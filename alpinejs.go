package eel

import (
	"github.com/carbon-eel/eel/pkg/alpine"
	"github.com/carbon-eel/eel/pkg/expr"
	"github.com/carbon-eel/eel/pkg/value"
)

// AlpineJSHelper renders Alpine.js directive values.
type AlpineJSHelper struct{}

// Function renders a call of name with args: name(a,b).
func (h *AlpineJSHelper) Function(name string, args ...any) string {
	return alpine.Function(name, args...)
}

// XData is an alias of Function for x-data components.
func (h *AlpineJSHelper) XData(name string, args ...any) string {
	return alpine.Function(name, args...)
}

// Object renders a collection as an object literal, "" for anything else.
func (h *AlpineJSHelper) Object(v any) string {
	s, _ := alpine.Object(v)
	return s
}

// Magic renders a call of an Alpine.js magic such as $dispatch.
func (h *AlpineJSHelper) Magic(name string, args ...any) string {
	return alpine.Magic(name, args...)
}

// Expression marks v to be emitted as raw JavaScript.
func (h *AlpineJSHelper) Expression(v any) string {
	return alpine.Expression(v)
}

// AllowsCallOfMethod reports that every method may be called from expressions.
func (h *AlpineJSHelper) AllowsCallOfMethod(string) bool {
	return true
}

func (h *AlpineJSHelper) functions() []expr.Function {
	call := func(fn func(string, ...any) string) func([]any) any {
		return func(a []any) any { return fn(value.String(a[0]), a[1:]...) }
	}
	return []expr.Function{
		// "function" is a reserved word in expressions.
		function("AlpineJS.call", 1, maxVariadicArgs, pure(call(h.Function))),
		function("AlpineJS.xData", 1, maxVariadicArgs, pure(call(h.XData))),
		function("AlpineJS.magic", 1, maxVariadicArgs, pure(call(h.Magic))),
		function("AlpineJS.object", 1, 1, pure(func(a []any) any { return h.Object(a[0]) })),
		function("AlpineJS.expression", 1, 1, pure(func(a []any) any { return h.Expression(a[0]) })),
	}
}
