package eel

import (
	"github.com/carbon-eel/eel/pkg/expr"
	"github.com/carbon-eel/eel/pkg/numfmt"
	"github.com/carbon-eel/eel/pkg/value"
)

// NumberHelper formats numbers.
type NumberHelper struct {
	opts *options
}

// Format groups thousands and rounds n. The optional arguments are the number
// of decimals (0), the decimal point (".") and the thousands separator (",").
//
//	{{ Carbon.Number.Format 1234.567 2 "," "." }} → 1.234,57
func (h *NumberHelper) Format(n any, args ...any) string {
	f, _ := value.Float(n)
	return numfmt.Format(f, intArg(args, 0, 0), stringArg(args, 1, "."), stringArg(args, 2, ","))
}

// FormatLocale formats n with the separators of a locale. The optional
// arguments are the number of decimals (0) and the locale, which defaults to
// the configured one.
func (h *NumberHelper) FormatLocale(n any, args ...any) string {
	f, _ := value.Float(n)
	locale := stringArg(args, 1, "")
	if locale == "" {
		locale = h.opts.locale
	}
	return numfmt.FormatLocale(f, intArg(args, 0, 0), locale)
}

// AllowsCallOfMethod reports that every method may be called from expressions.
func (h *NumberHelper) AllowsCallOfMethod(string) bool {
	return true
}

func (h *NumberHelper) functions() []expr.Function {
	return []expr.Function{
		function("Carbon.Number.format", 1, 4, pure(func(a []any) any { return h.Format(a[0], a[1:]...) })),
		function("Carbon.Number.formatLocale", 1, 3, pure(func(a []any) any { return h.FormatLocale(a[0], a[1:]...) })),
	}
}
