package eel

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/carbon-eel/eel/pkg/bem"
	"github.com/carbon-eel/eel/pkg/classnames"
	"github.com/carbon-eel/eel/pkg/expr"
	"github.com/carbon-eel/eel/pkg/logger"
	"github.com/carbon-eel/eel/pkg/slug"
	"github.com/carbon-eel/eel/pkg/strcase"
	"github.com/carbon-eel/eel/pkg/styles"
	"github.com/carbon-eel/eel/pkg/text"
	"github.com/carbon-eel/eel/pkg/value"
)

// DefaultNanoIDSize is the length of String.NanoID without an explicit size.
const DefaultNanoIDSize = 21

// StringHelper converts and formats strings.
type StringHelper struct {
	opts *options
}

// MenuFilterToFlowQueryFilter turns "Type,!OtherType" into instanceof selectors.
func (h *StringHelper) MenuFilterToFlowQueryFilter(filter string) string {
	return text.MenuFilterToQuery(filter)
}

// NanoID returns a random URL-safe id of size characters (default 21).
func (h *StringHelper) NanoID(size ...int) (string, error) {
	return gonanoid.New(optional(size, DefaultNanoIDSize))
}

// UUID returns a random version 4 UUID.
func (h *StringHelper) UUID() string {
	return uuid.NewString()
}

// BEM returns the BEM classes of block, element and modifiers as one string.
func (h *StringHelper) BEM(block, element any, modifiers ...any) string {
	return bem.String(value.String(block), value.String(element), modifierArg(modifiers))
}

// GenerateHmac signs s with the configured secret (HMAC-SHA256, hex encoded).
func (h *StringHelper) GenerateHmac(s any) string {
	mac := hmac.New(sha256.New, h.opts.hmacSecret)
	mac.Write([]byte(value.String(s)))
	return hex.EncodeToString(mac.Sum(nil))
}

// ValidateHmac reports whether mac is the signature of s.
func (h *StringHelper) ValidateHmac(s any, mac string) bool {
	return hmac.Equal([]byte(h.GenerateHmac(s)), []byte(mac))
}

// MinifyJS minifies JavaScript. On failure the input is returned unchanged.
func (h *StringHelper) MinifyJS(js string) string {
	out, err := h.opts.minifier.JS(js)
	if err != nil {
		h.opts.logger.Warn("javascript minification failed",
			logger.Helper("Carbon.String"), logger.Method("minifyJS"), logger.Error(err))
		return js
	}
	return out
}

// MinifyCSS minifies a stylesheet. On failure the input is returned unchanged.
func (h *StringHelper) MinifyCSS(css string) string {
	out, err := h.opts.minifier.CSS(css)
	if err != nil {
		h.opts.logger.Warn("css minification failed",
			logger.Helper("Carbon.String"), logger.Method("minifyCSS"), logger.Error(err))
		return css
	}
	return out
}

// Heading shifts a heading tag by modifier levels (default 1).
func (h *StringHelper) Heading(tag string, modifier ...int) string {
	return text.Heading(tag, optional(modifier, 1))
}

// Urlize transliterates s and turns it into a URL segment.
func (h *StringHelper) Urlize(s any) string {
	return slug.Urlize(value.String(s))
}

// IsValidEmail reports whether email is a syntactically valid address.
// Non-string input is never valid.
func (h *StringHelper) IsValidEmail(email any) bool {
	s, ok := email.(string)
	return ok && govalidator.IsEmail(s)
}

func (h *StringHelper) ToPascalCase(s any) string {
	return strcase.ToPascalCase(value.String(s))
}

func (h *StringHelper) ToCamelCase(s any) string {
	return strcase.ToCamelCase(value.String(s))
}

// ConvertCamelCase converts camelCase to a separated lower case string (default "-").
func (h *StringHelper) ConvertCamelCase(s any, sep ...string) string {
	return strcase.ConvertCamelCase(value.String(s), optional(sep, "-"))
}

func (h *StringHelper) TitleCaseWords(s any) string {
	return strcase.TitleCaseWords(value.String(s))
}

// ReplaceOnce replaces the first occurrence of search. A missing replacement removes it.
func (h *StringHelper) ReplaceOnce(s, search string, replace ...string) string {
	return text.ReplaceOnce(s, search, optional(replace, ""))
}

// ConvertToString joins list input with sep (default " ") and collapses whitespace.
func (h *StringHelper) ConvertToString(v any, sep ...string) string {
	return strcase.ConvertToString(v, optional(sep, " "))
}

// Nl2br trims s and replaces line breaks with sep (default "<br>").
func (h *StringHelper) Nl2br(s any, sep ...string) string {
	return text.Nl2br(value.String(s), optional(sep, "<br>"))
}

// Merge merges class names from strings, lists and condition maps.
func (h *StringHelper) Merge(args ...any) string {
	return classnames.Merge(args...)
}

// ClassNames is an alias of Merge.
func (h *StringHelper) ClassNames(args ...any) string {
	return classnames.Merge(args...)
}

// Styles builds an inline style attribute from maps and CSS strings.
func (h *StringHelper) Styles(args ...any) string {
	return styles.Build(args...)
}

func (h *StringHelper) RemoveNbsp(s any) string {
	return text.RemoveNbsp(value.String(s))
}

func (h *StringHelper) SplitIntegerAndString(s any) []any {
	return text.SplitIntegerAndString(value.String(s))
}

// Phone returns a "tel:" link target for number. The optional arguments are
// the default country code and the prefix; an empty prefix disables it.
func (h *StringHelper) Phone(number string, args ...string) string {
	countryCode := optional(args, "")
	prefix := text.DefaultPhonePrefix
	if len(args) > 1 {
		prefix = args[1]
	}
	return text.Phone(number, countryCode, prefix)
}

// AllowsCallOfMethod reports that every method may be called from expressions.
func (h *StringHelper) AllowsCallOfMethod(string) bool {
	return true
}

func (h *StringHelper) functions() []expr.Function {
	unary := func(name string, fn func(any) string) expr.Function {
		return function("Carbon.String."+name, 1, 1, pure(func(a []any) any { return fn(a[0]) }))
	}
	variadic := func(name string, fn func(...any) string) expr.Function {
		return function("Carbon.String."+name, 0, maxVariadicArgs, pure(func(a []any) any { return fn(a...) }))
	}

	return []expr.Function{
		unary("menuFilterToFlowQueryFilter", func(v any) string { return h.MenuFilterToFlowQueryFilter(value.String(v)) }),
		function("Carbon.String.nanoID", 0, 1, func(a []any) (any, error) {
			return h.NanoID(intArg(a, 0, DefaultNanoIDSize))
		}),
		function("Carbon.String.uuid", 0, 0, pure(func([]any) any { return h.UUID() })),
		function("Carbon.String.BEM", 1, 3, pure(func(a []any) any { return h.BEM(a[0], arg(a, 1), arg(a, 2)) })),
		unary("generateHmac", h.GenerateHmac),
		function("Carbon.String.validateHmac", 2, 2, pure(func(a []any) any {
			return h.ValidateHmac(a[0], value.String(a[1]))
		})),
		unary("minifyJS", func(v any) string { return h.MinifyJS(value.String(v)) }),
		unary("minifyCSS", func(v any) string { return h.MinifyCSS(value.String(v)) }),
		function("Carbon.String.heading", 1, 2, pure(func(a []any) any {
			return h.Heading(value.String(a[0]), intArg(a, 1, 1))
		})),
		unary("urlize", h.Urlize),
		function("Carbon.String.isValidEmail", 0, 1, pure(func(a []any) any { return h.IsValidEmail(arg(a, 0)) })),
		unary("toPascalCase", h.ToPascalCase),
		unary("toCamelCase", h.ToCamelCase),
		function("Carbon.String.convertCamelCase", 1, 2, pure(func(a []any) any {
			return h.ConvertCamelCase(a[0], stringArg(a, 1, "-"))
		})),
		function("Carbon.String.titleCaseWords", 0, 1, pure(func(a []any) any { return h.TitleCaseWords(arg(a, 0)) })),
		function("Carbon.String.replaceOnce", 2, 3, pure(func(a []any) any {
			return h.ReplaceOnce(value.String(a[0]), value.String(a[1]), stringArg(a, 2, ""))
		})),
		function("Carbon.String.convertToString", 1, 2, pure(func(a []any) any {
			return h.ConvertToString(a[0], stringArg(a, 1, " "))
		})),
		function("Carbon.String.nl2br", 1, 2, pure(func(a []any) any {
			return h.Nl2br(a[0], stringArg(a, 1, "<br>"))
		})),
		variadic("merge", h.Merge),
		variadic("classNames", h.ClassNames),
		variadic("styles", h.Styles),
		unary("removeNbsp", h.RemoveNbsp),
		function("Carbon.String.splitIntegerAndString", 1, 1, pure(func(a []any) any {
			return h.SplitIntegerAndString(a[0])
		})),
		function("Carbon.String.phone", 1, 3, pure(func(a []any) any {
			return h.Phone(value.String(a[0]), stringArg(a, 1, ""), stringArg(a, 2, text.DefaultPhonePrefix))
		})),
	}
}
