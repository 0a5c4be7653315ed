package eel

import (
	"sort"
	"strconv"
	"strings"

	"github.com/carbon-eel/eel/pkg/bem"
	"github.com/carbon-eel/eel/pkg/expr"
	"github.com/carbon-eel/eel/pkg/value"
)

// ArrayHelper works on lists and keyed collections.
// Keyed results are returned as *value.Map so that key order is kept.
type ArrayHelper struct{}

// BEM returns the BEM classes of block, element and modifiers as a list.
func (h *ArrayHelper) BEM(block, element any, modifiers ...any) []string {
	return bem.Classes(value.String(block), value.String(element), modifierArg(modifiers))
}

// Chunk splits v into lists of size elements. The last chunk may be shorter.
// With preserveKeys every chunk is a *value.Map holding the original keys.
func (h *ArrayHelper) Chunk(v any, size int, preserveKeys ...bool) []any {
	pairs, ok := value.Pairs(v)
	if !ok || size < 1 {
		return nil
	}
	keepKeys := optional(preserveKeys, false)

	chunks := make([]any, 0, (len(pairs)+size-1)/size)
	for start := 0; start < len(pairs); start += size {
		part := pairs[start:min(start+size, len(pairs))]
		if keepKeys {
			m := value.NewMap()
			for _, p := range part {
				m.Set(p.Key, p.Value)
			}
			chunks = append(chunks, m)
			continue
		}
		list := make([]any, len(part))
		for i, p := range part {
			list[i] = p.Value
		}
		chunks = append(chunks, list)
	}
	return chunks
}

// Length returns the number of elements of a collection, 0 for anything else.
func (h *ArrayHelper) Length(v any) int {
	return value.Len(v)
}

// HasKey reports whether key exists in v with a non-nil value.
func (h *ArrayHelper) HasKey(v any, key any) bool {
	found, ok := lookup(v, value.String(key))
	return ok && found != nil
}

// HasValue reports whether v contains needle, compared loosely.
func (h *ArrayHelper) HasValue(v any, needle any) bool {
	pairs, _ := value.Pairs(v)
	for _, p := range pairs {
		if value.IsIterable(p.Value) {
			continue
		}
		if value.Equal(p.Value, needle) {
			return true
		}
	}
	return false
}

// Intersect returns the elements of a whose string form is present in b and
// in every further collection. Lists stay lists; keyed input keeps its keys.
func (h *ArrayHelper) Intersect(a, b any, others ...any) any {
	sets := make([]map[string]struct{}, 0, len(others)+1)
	for _, o := range append([]any{b}, others...) {
		pairs, _ := value.Pairs(o)
		set := make(map[string]struct{}, len(pairs))
		for _, p := range pairs {
			set[value.String(p.Value)] = struct{}{}
		}
		sets = append(sets, set)
	}

	contained := func(v any) bool {
		s := value.String(v)
		for _, set := range sets {
			if _, ok := set[s]; !ok {
				return false
			}
		}
		return true
	}

	pairs, _ := value.Pairs(a)
	if value.IsList(a) {
		out := []any{}
		for _, p := range pairs {
			if contained(p.Value) {
				out = append(out, p.Value)
			}
		}
		return out
	}
	out := value.NewMap()
	for _, p := range pairs {
		if contained(p.Value) {
			out.Set(p.Key, p.Value)
		}
	}
	return out
}

// GetValueByPath follows path through nested collections and returns the
// value found there, or nil. The path is "a.b.c" or a list of keys.
func (h *ArrayHelper) GetValueByPath(v any, path any) any {
	current := v
	for _, seg := range pathSegments(path) {
		next, ok := lookup(current, seg)
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// SetValueByPath returns a copy of v with val stored at path.
// Missing or scalar intermediate entries are replaced by maps.
func (h *ArrayHelper) SetValueByPath(v any, path any, val any) *value.Map {
	return setPath(v, pathSegments(path), val)
}

// Join concatenates the values of v with sep (default ","), descending into
// nested collections.
func (h *ArrayHelper) Join(v any, sep ...string) string {
	return join(v, optional(sep, ","))
}

// JoinRecursive is an alias of Join.
func (h *ArrayHelper) JoinRecursive(v any, sep ...string) string {
	return h.Join(v, sep...)
}

// ExtractSubElements lifts the children of nested collections one level up.
// Without preserveKeys the result is a list. With preserveKeys it is a
// *value.Map where later keys overwrite earlier ones and scalars get the next
// free integer key.
func (h *ArrayHelper) ExtractSubElements(v any, preserveKeys ...bool) any {
	pairs, _ := value.Pairs(v)

	if !optional(preserveKeys, false) {
		out := []any{}
		for _, p := range pairs {
			if sub, ok := value.List(p.Value); ok {
				out = append(out, sub...)
				continue
			}
			out = append(out, p.Value)
		}
		return out
	}

	out := value.NewMap()
	next := 0
	set := func(key string, val any) {
		out.Set(key, val)
		if n, err := strconv.Atoi(key); err == nil && n >= next {
			next = n + 1
		}
	}
	for _, p := range pairs {
		if sub, ok := value.Pairs(p.Value); ok {
			for _, sp := range sub {
				set(sp.Key, sp.Value)
			}
			continue
		}
		set(strconv.Itoa(next), p.Value)
	}
	return out
}

// Check returns v when it is a collection with at least one element, nil otherwise.
func (h *ArrayHelper) Check(v any) any {
	if value.IsIterable(v) && value.Len(v) > 0 {
		return v
	}
	return nil
}

// SetKeyValue returns a copy of v with key set to val.
func (h *ArrayHelper) SetKeyValue(v any, key any, val any) *value.Map {
	m := toMap(v)
	m.Set(value.String(key), val)
	return m
}

// Ksort returns a copy of v sorted by key. Numeric keys sort numerically
// and before other keys.
func (h *ArrayHelper) Ksort(v any) *value.Map {
	pairs, _ := value.Pairs(v)
	sorted := make([]value.Pair, len(pairs))
	copy(sorted, pairs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return keyLess(sorted[i].Key, sorted[j].Key)
	})

	out := value.NewMap()
	for _, p := range sorted {
		out.Set(p.Key, p.Value)
	}
	return out
}

// Filter drops falsy values. Lists are reindexed; keyed input keeps its keys.
func (h *ArrayHelper) Filter(v any) any {
	pairs, _ := value.Pairs(v)
	if value.IsList(v) {
		out := []any{}
		for _, p := range pairs {
			if value.Truthy(p.Value) {
				out = append(out, p.Value)
			}
		}
		return out
	}
	out := value.NewMap()
	for _, p := range pairs {
		if value.Truthy(p.Value) {
			out.Set(p.Key, p.Value)
		}
	}
	return out
}

// Values returns the values of v as a list.
func (h *ArrayHelper) Values(v any) []any {
	list, ok := value.List(v)
	if !ok {
		return []any{}
	}
	return list
}

// AllowsCallOfMethod reports that every method may be called from expressions.
func (h *ArrayHelper) AllowsCallOfMethod(string) bool {
	return true
}

func (h *ArrayHelper) functions() []expr.Function {
	return []expr.Function{
		function("Carbon.Array.BEM", 1, 3, pure(func(a []any) any {
			return h.BEM(a[0], arg(a, 1), arg(a, 2))
		})),
		function("Carbon.Array.chunk", 2, 3, pure(func(a []any) any {
			return h.Chunk(a[0], intArg(a, 1, 0), boolArg(a, 2, false))
		})),
		function("Carbon.Array.length", 1, 1, pure(func(a []any) any { return h.Length(a[0]) })),
		function("Carbon.Array.hasKey", 2, 2, pure(func(a []any) any { return h.HasKey(a[0], a[1]) })),
		function("Carbon.Array.hasValue", 2, 2, pure(func(a []any) any { return h.HasValue(a[0], a[1]) })),
		function("Carbon.Array.intersect", 2, maxVariadicArgs, pure(func(a []any) any {
			return h.Intersect(a[0], a[1], a[2:]...)
		})),
		function("Carbon.Array.getValueByPath", 2, 2, pure(func(a []any) any { return h.GetValueByPath(a[0], a[1]) })),
		function("Carbon.Array.setValueByPath", 3, 3, pure(func(a []any) any { return h.SetValueByPath(a[0], a[1], a[2]) })),
		function("Carbon.Array.join", 1, 2, pure(func(a []any) any { return h.Join(a[0], stringArg(a, 1, ",")) })),
		function("Carbon.Array.joinRecursive", 1, 2, pure(func(a []any) any { return h.JoinRecursive(a[0], stringArg(a, 1, ",")) })),
		function("Carbon.Array.extractSubElements", 1, 2, pure(func(a []any) any {
			return h.ExtractSubElements(a[0], boolArg(a, 1, false))
		})),
		function("Carbon.Array.check", 1, 1, pure(func(a []any) any { return h.Check(a[0]) })),
		function("Carbon.Array.setKeyValue", 3, 3, pure(func(a []any) any { return h.SetKeyValue(a[0], a[1], a[2]) })),
		function("Carbon.Array.ksort", 1, 1, pure(func(a []any) any { return h.Ksort(a[0]) })),
		function("Carbon.Array.filter", 1, 1, pure(func(a []any) any { return h.Filter(a[0]) })),
		function("Carbon.Array.values", 1, 1, pure(func(a []any) any { return h.Values(a[0]) })),
	}
}

func pathSegments(path any) []string {
	if value.IsList(path) {
		list, _ := value.List(path)
		segs := make([]string, len(list))
		for i, v := range list {
			segs[i] = value.String(v)
		}
		return segs
	}
	s := value.String(path)
	if s == "" {
		return nil
	}
	return strings.Split(s, ".")
}

// lookup returns the entry stored under key in a collection.
func lookup(v any, key string) (any, bool) {
	switch t := v.(type) {
	case *value.Map:
		if t == nil {
			return nil, false
		}
		return t.Get(key)
	case map[string]any:
		found, ok := t[key]
		return found, ok
	}
	pairs, _ := value.Pairs(v)
	for _, p := range pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

func toMap(v any) *value.Map {
	m := value.NewMap()
	pairs, _ := value.Pairs(v)
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

func setPath(v any, segs []string, val any) *value.Map {
	m := toMap(v)
	if len(segs) == 0 {
		return m
	}
	if len(segs) == 1 {
		m.Set(segs[0], val)
		return m
	}
	child, _ := m.Get(segs[0])
	m.Set(segs[0], setPath(child, segs[1:], val))
	return m
}

func join(v any, sep string) string {
	list, ok := value.List(v)
	if !ok {
		return value.String(v)
	}
	parts := make([]string, len(list))
	for i, item := range list {
		if value.IsIterable(item) {
			parts[i] = join(item, sep)
			continue
		}
		parts[i] = value.String(item)
	}
	return strings.Join(parts, sep)
}

func keyLess(a, b string) bool {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}
