package eel

import (
	"github.com/carbon-eel/eel/pkg/classnames"
	"github.com/carbon-eel/eel/pkg/expr"
)

// TailwindHelper merges Tailwind classes, resolving conflicting utilities.
type TailwindHelper struct {
	opts *options
}

// Merge merges class names like String.Merge and resolves Tailwind conflicts,
// later classes winning. Without a configured merger only the plain merge is done.
func (h *TailwindHelper) Merge(args ...any) string {
	merged := classnames.Merge(args...)
	if merged == "" || h.opts.merger == nil {
		return merged
	}
	return h.opts.merger.Merge(merged)
}

// AllowsCallOfMethod reports that every method may be called from expressions.
func (h *TailwindHelper) AllowsCallOfMethod(string) bool {
	return true
}

func (h *TailwindHelper) functions() []expr.Function {
	return []expr.Function{
		function("Tailwind.merge", 0, maxVariadicArgs, pure(func(a []any) any { return h.Merge(a...) })),
	}
}
