package eel

import (
	"github.com/carbon-eel/eel/pkg/expr"
	"github.com/carbon-eel/eel/pkg/i18n"
	"github.com/carbon-eel/eel/pkg/logger"
	"github.com/carbon-eel/eel/pkg/value"
)

// BackendHelper translates labels into the backend interface language.
type BackendHelper struct {
	opts *options
}

// Language returns the interface language of the backend user.
func (h *BackendHelper) Language() string {
	return h.opts.interfaceLanguage
}

// Translate translates id. The optional positional arguments are the
// fallback label, the placeholder arguments (map or list), the source
// ("Main"), the package, the plural quantity and the locale, which defaults
// to the interface language.
//
// Called with an id only, a "Vendor.Package:Source:id" shorthand is
// translated and any other id is returned as it is.
//
//	{{ Carbon.Backend.Translate "Vendor.Site:Main:button.save" }}
//	{{ Carbon.Backend.Translate "items" "Items" .args "Main" "Vendor.Site" 3 }}
func (h *BackendHelper) Translate(id string, args ...any) string {
	locale := stringArg(args, 5, "")
	if locale == "" {
		locale = h.opts.interfaceLanguage
	}

	req := i18n.Request{
		ID:       id,
		Fallback: stringArg(args, 0, ""),
		Args:     translationArgs(arg(args, 1)),
		Source:   stringArg(args, 2, i18n.DefaultSource),
		Package:  stringArg(args, 3, ""),
		Locale:   locale,
	}
	if req.Source == "" {
		req.Source = i18n.DefaultSource
	}
	if q, ok := value.Int(arg(args, 4)); ok {
		req.Quantity = i18n.Quantity(q)
	}

	if isIDOnly(req) {
		pkg, source, shortID, ok := i18n.ParseShorthand(id)
		if !ok {
			return id
		}
		req.Package, req.Source, req.ID = pkg, source, shortID
	}

	if h.opts.catalog == nil {
		h.opts.logger.Debug("no translation catalog configured",
			logger.Helper("Carbon.Backend"), logger.Method("translate"), logger.Locale(locale))
		if req.Fallback != "" {
			return req.Fallback
		}
		return req.ID
	}
	return h.opts.catalog.Translate(req)
}

// AllowsCallOfMethod reports that every method may be called from expressions.
func (h *BackendHelper) AllowsCallOfMethod(string) bool {
	return true
}

func (h *BackendHelper) functions() []expr.Function {
	return []expr.Function{
		function("Carbon.Backend.language", 0, 0, pure(func([]any) any { return h.Language() })),
		function("Carbon.Backend.translate", 1, 7, pure(func(a []any) any {
			return h.Translate(value.String(a[0]), a[1:]...)
		})),
	}
}

func isIDOnly(req i18n.Request) bool {
	return req.Fallback == "" &&
		len(req.Args) == 0 &&
		req.Source == i18n.DefaultSource &&
		req.Package == "" &&
		req.Quantity == nil
}

// translationArgs accepts placeholder values as a keyed collection or a list.
func translationArgs(v any) map[string]any {
	if value.IsList(v) {
		list, _ := value.List(v)
		return i18n.ArgsFromList(list)
	}
	pairs, ok := value.Pairs(v)
	if !ok {
		return nil
	}
	args := make(map[string]any, len(pairs))
	for _, p := range pairs {
		args[p.Key] = p.Value
	}
	return args
}
