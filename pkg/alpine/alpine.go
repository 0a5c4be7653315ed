// Package alpine renders Go values as Alpine.js expressions for x-data,
// x-init and event attributes.
//
//	alpine.Function("dropdown", map[string]any{"open": false}, "main")
//	// "dropdown({open:false},'main')"
package alpine

import (
	"regexp"
	"strings"

	"github.com/carbon-eel/eel/pkg/value"
)

// ExpressionPrefix marks a string that is emitted verbatim instead of quoted.
const ExpressionPrefix = "__EXPRESSION__"

// Alpine.js magics passed as strings are emitted verbatim.
var magicCalls = []string{
	"$data(", "$dispatch(", "$el(", "$id(", "$nextTick(",
	"$persist(", "$refs(", "$root(", "$store(", "$watch(",
}

var methodKeyRegex = regexp.MustCompile(`^[a-zA-Z0-9]+\(.*\)$`)

// Expression marks v as a raw JavaScript expression.
func Expression(v any) string {
	return ExpressionPrefix + value.String(v)
}

// Function renders a call of name with the given arguments: name(a,b).
func Function(name string, args ...any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		if value.IsIterable(arg) {
			parts[i] = collection(arg, false)
			continue
		}
		parts[i], _ = scalar(arg, true)
	}
	return name + "(" + strings.Join(parts, ",") + ")"
}

// Magic renders a call of an Alpine.js magic property, adding the "$" prefix if missing.
func Magic(name string, args ...any) string {
	if !strings.HasPrefix(name, "$") {
		name = "$" + name
	}
	return Function(name, args...)
}

// Object renders a keyed collection as an object literal. Nil values are skipped.
// A method-like key such as "init()" whose value is a quoted "{...}" body is
// rendered as a method shorthand: init(){...}.
// The second result is false when v is not a collection.
func Object(v any) (string, bool) {
	if !value.IsIterable(v) {
		return "", false
	}
	return object(v, false), true
}

// Value renders a single value the way Function renders its arguments.
func Value(v any) string {
	if value.IsIterable(v) {
		return collection(v, false)
	}
	s, _ := scalar(v, true)
	return s
}

// scalar renders a non-collection value. The second result is false for a
// nil value when keepNull is false.
func scalar(v any, keepNull bool) (string, bool) {
	if s, ok := v.(string); ok {
		if raw, found := strings.CutPrefix(s, ExpressionPrefix); found {
			return raw, true
		}
		if isMagicCall(s) {
			return s, true
		}
	}

	switch t := v.(type) {
	case nil:
		if keepNull {
			return "null", true
		}
		return "", false
	case bool:
		if t {
			return "true", true
		}
		return "false", true
	}

	if value.IsNumeric(v) {
		return value.String(v), true
	}
	if s, ok := v.(string); ok {
		return "'" + s + "'", true
	}
	return value.String(v), true
}

func isMagicCall(s string) bool {
	if !strings.HasSuffix(s, ")") {
		return false
	}
	for _, prefix := range magicCalls {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func collection(v any, keepNull bool) string {
	if !value.IsList(v) {
		return object(v, keepNull)
	}
	list, _ := value.List(v)
	parts := make([]string, len(list))
	for i, item := range list {
		if value.IsIterable(item) {
			parts[i] = collection(item, keepNull)
			continue
		}
		parts[i], _ = scalar(item, true)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func object(v any, keepNull bool) string {
	pairs, _ := value.Pairs(v)
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if value.IsIterable(p.Value) {
			parts = append(parts, keyValue(p.Key, collection(p.Value, keepNull)))
			continue
		}
		s, ok := scalar(p.Value, keepNull)
		if !ok {
			continue
		}
		parts = append(parts, keyValue(p.Key, s))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func keyValue(key, val string) string {
	if methodKeyRegex.MatchString(key) && strings.HasPrefix(val, "'{") && strings.HasSuffix(val, "}'") {
		return key + val[1:len(val)-1]
	}
	return key + ":" + val
}
