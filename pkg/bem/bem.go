// Package bem builds Block Element Modifier class names.
//
//	bem.Classes("card", "title", []any{"large", map[string]any{"active": true}})
//	// ["card__title", "card__title--large", "card__title--active"]
package bem

import (
	"strings"

	"github.com/carbon-eel/eel/pkg/value"
)

// Modifiers flattens modifier input into a list of unique modifier names.
//
// Strings and integers are used as they are. Lists are walked recursively.
// Falsy entries other than integers are skipped. An entry that is neither a
// string nor an integer contributes its key when the key is a name, so
// {"active": true} yields "active".
func Modifiers(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	}
	if value.IsInt(v) {
		return []string{value.String(v)}
	}

	pairs, ok := value.Pairs(v)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(pairs))
	seen := make(map[string]struct{}, len(pairs))
	add := func(s string) {
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, p := range pairs {
		isInt := value.IsInt(p.Value)
		if !isInt && !value.Truthy(p.Value) {
			continue
		}
		switch {
		case value.IsIterable(p.Value):
			for _, m := range Modifiers(p.Value) {
				add(m)
			}
		case isInt:
			add(value.String(p.Value))
		default:
			if s, ok := p.Value.(string); ok {
				add(s)
			} else if !p.IsIndex {
				add(p.Key)
			}
		}
	}
	return out
}

// Classes returns the base class followed by one class per modifier.
// The base class is "block__element", or "block" when element is empty.
// An empty block yields an empty result.
func Classes(block, element string, modifiers any) []string {
	if block == "" {
		return []string{}
	}
	base := block
	if element != "" {
		base = block + "__" + element
	}

	mods := Modifiers(modifiers)
	classes := make([]string, 0, len(mods)+1)
	classes = append(classes, base)
	for _, m := range mods {
		classes = append(classes, base+"--"+m)
	}
	return classes
}

// String returns Classes joined with a single space.
func String(block, element string, modifiers any) string {
	return strings.Join(Classes(block, element, modifiers), " ")
}

// Modifier returns the classes of a block without an element.
func Modifier(class string, modifiers any) string {
	return String(class, "", modifiers)
}
