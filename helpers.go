package eel

import (
	"text/template"

	"github.com/carbon-eel/eel/pkg/expr"
	"github.com/carbon-eel/eel/pkg/tailwind"
)

// Helpers groups the helper namespaces exposed to templates and expressions.
// All helpers of one Helpers value share its options.
type Helpers struct {
	Array       *ArrayHelper
	String      *StringHelper
	BEM         *BEMHelper
	Date        *DateHelper
	FileContent *FileContentHelper
	Number      *NumberHelper
	Version     *VersionHelper
	AlpineJS    *AlpineJSHelper
	Tailwind    *TailwindHelper
	Backend     *BackendHelper

	opts    *options
	watcher *tailwind.Watcher
}

// New creates Helpers. Without options the helpers run with a discard logger,
// the system clock, UTC, a default tailwind merger and no resource storage
// or translations.
func New(opts ...Option) *Helpers {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Helpers{
		Array:       &ArrayHelper{},
		String:      &StringHelper{opts: o},
		BEM:         &BEMHelper{},
		Date:        &DateHelper{opts: o},
		FileContent: newFileContentHelper(o),
		Number:      &NumberHelper{opts: o},
		Version:     &VersionHelper{opts: o},
		AlpineJS:    &AlpineJSHelper{},
		Tailwind:    &TailwindHelper{opts: o},
		Backend:     &BackendHelper{opts: o},
		opts:        o,
	}
}

// FuncMap returns template functions. The namespaces are reached through
// accessor functions:
//
//	{{ Carbon.String.ConvertCamelCase "HelloWorld" }}
//	{{ AlpineJS.XData "dropdown" .state }}
//	{{ Tailwind.Merge "p-2" "p-4" }}
//
// The most common helpers are also available as flat functions.
// The map can be passed to html/template after conversion to its FuncMap type.
func (h *Helpers) FuncMap() template.FuncMap {
	return template.FuncMap{
		"Carbon":   func() *Helpers { return h },
		"AlpineJS": func() *AlpineJSHelper { return h.AlpineJS },
		"Tailwind": func() *TailwindHelper { return h.Tailwind },

		"bem":              h.String.BEM,
		"classNames":       h.String.ClassNames,
		"styles":           h.String.Styles,
		"urlize":           h.String.Urlize,
		"convertCamelCase": h.String.ConvertCamelCase,
		"toPascalCase":     h.String.ToPascalCase,
		"toCamelCase":      h.String.ToCamelCase,
		"nl2br":            h.String.Nl2br,
		"phone":            h.String.Phone,
		"twMerge":          h.Tailwind.Merge,
		"translate":        h.Backend.Translate,
		"attributes":       h.Attributes,
	}
}

// Functions implements expr.Registry.
func (h *Helpers) Functions() []expr.Function {
	var fns []expr.Function
	fns = append(fns, h.Array.functions()...)
	fns = append(fns, h.String.functions()...)
	fns = append(fns, h.BEM.functions()...)
	fns = append(fns, h.Date.functions()...)
	fns = append(fns, h.FileContent.functions()...)
	fns = append(fns, h.Number.functions()...)
	fns = append(fns, h.Version.functions()...)
	fns = append(fns, h.AlpineJS.functions()...)
	fns = append(fns, h.Tailwind.functions()...)
	fns = append(fns, h.Backend.functions()...)
	return fns
}

// Environment creates a CEL environment with all helper functions declared.
func (h *Helpers) Environment(opts ...expr.Option) (*expr.Environment, error) {
	return expr.NewEnvironment(h, append([]expr.Option{expr.WithLogger(h.opts.logger)}, opts...)...)
}
