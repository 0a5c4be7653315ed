// Package classnames merges class name arguments into a single class attribute.
package classnames

import (
	"slices"
	"strings"

	"github.com/carbon-eel/eel/pkg/value"
)

// Merge flattens strings, lists and maps into one space separated string of
// unique class names. When a class appears more than once the last
// occurrence wins its position:
//
//	Merge([]any{"a", "b"}, "b c") // "a b c"
//	Merge("a b", "a")            // "b a"
//
// Map entries with a true value contribute their key.
func Merge(args ...any) string {
	return strings.Join(MergeList(args...), " ")
}

// MergeList is Merge without the final join.
func MergeList(args ...any) []string {
	var all []string
	for _, arg := range args {
		all = append(all, flatten(arg)...)
	}
	if len(all) == 0 {
		return nil
	}
	return uniqueLast(all)
}

func flatten(v any) []string {
	if b, ok := v.(bool); ok && b {
		return []string{"true"}
	}
	if !value.IsIterable(v) {
		return split(v)
	}

	var out []string
	walk(v, func(key string, leaf any) {
		if b, ok := leaf.(bool); ok && b {
			out = append(out, split(key)...)
			return
		}
		out = append(out, split(leaf)...)
	})
	return out
}

// walk visits the scalar leaves of a nested collection.
func walk(v any, visit func(key string, leaf any)) {
	pairs, _ := value.Pairs(v)
	for _, p := range pairs {
		if value.IsIterable(p.Value) {
			walk(p.Value, visit)
			continue
		}
		visit(p.Key, p.Value)
	}
}

func split(v any) []string {
	if v == nil {
		return nil
	}
	fields := strings.Fields(value.String(v))
	return slices.DeleteFunc(fields, func(s string) bool { return !value.Truthy(s) })
}

func uniqueLast(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		if _, dup := seen[items[i]]; dup {
			continue
		}
		seen[items[i]] = struct{}{}
		out = append(out, items[i])
	}
	slices.Reverse(out)
	return out
}
