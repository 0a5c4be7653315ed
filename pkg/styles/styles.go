// Package styles builds inline style attributes from maps and CSS strings.
package styles

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/carbon-eel/eel/pkg/strcase"
	"github.com/carbon-eel/eel/pkg/value"
)

// Build merges style maps and CSS declaration strings into one style attribute value.
//
// Map entries are kept when the key is a name and the value is a number or a
// non-empty string. Later declarations override earlier ones. Property names
// written in camelCase are converted to hyphen-case:
//
//	Build(map[string]any{"fontSize": "12px"}, "color: red") // "font-size:12px;color:red;"
func Build(args ...any) string {
	declarations := orderedmap.New[string, string]()
	for _, arg := range args {
		if s, ok := arg.(string); ok {
			parsed := Parse(s)
			for p := parsed.Oldest(); p != nil; p = p.Next() {
				declarations.Set(p.Key, value.String(p.Value))
			}
			continue
		}

		pairs, ok := value.Pairs(arg)
		if !ok {
			continue
		}
		for _, p := range pairs {
			if p.IsIndex {
				continue
			}
			_, isString := p.Value.(string)
			if value.IsNumeric(p.Value) || (isString && p.Value != "") {
				declarations.Set(p.Key, value.String(p.Value))
			}
		}
	}

	var b strings.Builder
	for p := declarations.Oldest(); p != nil; p = p.Next() {
		b.WriteString(strcase.ConvertCamelCase(p.Key, "-"))
		b.WriteByte(':')
		b.WriteString(p.Value)
		b.WriteByte(';')
	}
	return b.String()
}

// Parse converts a CSS declaration string such as "--gap:10px; color:red"
// into an ordered map of property to value. Declarations without a colon are skipped.
func Parse(s string) *value.Map {
	out := value.NewMap()
	for decl := range strings.SplitSeq(s, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		property, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		out.Set(strings.TrimSpace(property), strings.TrimSpace(val))
	}
	return out
}
