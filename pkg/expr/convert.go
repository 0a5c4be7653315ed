package expr

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/common/types/traits"

	"github.com/carbon-eel/eel/pkg/value"
)

// ConvertToCELValue converts a Go value to a CEL value.
// Unsupported types become null.
//
//nolint:ireturn // Following CEL's function signature.
func ConvertToCELValue(v any) ref.Val {
	switch t := v.(type) {
	case nil:
		return types.NullValue
	case ref.Val:
		return t
	case bool:
		return types.Bool(t)
	case int:
		return types.Int(t)
	case int8:
		return types.Int(int64(t))
	case int16:
		return types.Int(int64(t))
	case int32:
		return types.Int(int64(t))
	case int64:
		return types.Int(t)
	case uint:
		if uint64(t) > math.MaxInt64 {
			return types.Double(float64(t))
		}
		return types.Int(int64(t))
	case uint8:
		return types.Int(int64(t))
	case uint16:
		return types.Int(int64(t))
	case uint32:
		return types.Int(int64(t))
	case uint64:
		if t > math.MaxInt64 {
			return types.Double(float64(t))
		}
		return types.Int(int64(t))
	case float32:
		return types.Double(float64(t))
	case float64:
		return types.Double(t)
	case string:
		return types.String(t)
	case []byte:
		return types.Bytes(t)
	case time.Time:
		return types.Timestamp{Time: t}
	case time.Duration:
		return types.Duration{Duration: t}
	case []any:
		return listValue(t)
	case []string:
		vals := make([]ref.Val, len(t))
		for i, s := range t {
			vals[i] = types.String(s)
		}
		return types.NewDynamicList(types.DefaultTypeAdapter, vals)
	case map[any]any:
		m := make(map[ref.Val]ref.Val, len(t))
		for k, val := range t {
			m[ConvertToCELValue(k)] = ConvertToCELValue(val)
		}
		return types.NewDynamicMap(types.DefaultTypeAdapter, m)
	}

	// Ordered maps, typed slices, typed maps and iterators.
	if value.IsList(v) {
		list, _ := value.List(v)
		return listValue(list)
	}
	if pairs, ok := value.Pairs(v); ok {
		return newOrderedMap(pairs)
	}

	if s, ok := v.(fmt.Stringer); ok {
		return types.String(s.String())
	}
	return types.NullValue
}

func listValue(list []any) ref.Val {
	vals := make([]ref.Val, len(list))
	for i, item := range list {
		vals[i] = ConvertToCELValue(item)
	}
	return types.NewDynamicList(types.DefaultTypeAdapter, vals)
}

// ToNative converts a CEL value to the plain Go form helpers accept:
// integers become int, lists []any and maps *value.Map with keys sorted.
func ToNative(v ref.Val) any {
	switch t := v.(type) {
	case nil, types.Null:
		return nil
	case types.Bool:
		return bool(t)
	case types.Int:
		return int(t)
	case types.Uint:
		return int(t) //nolint:gosec // G115: helper arguments are small.
	case types.Double:
		return float64(t)
	case types.String:
		return string(t)
	case types.Bytes:
		return []byte(t)
	case types.Timestamp:
		return t.Time
	case types.Duration:
		return t.Duration
	case *orderedMap:
		return mapValue(t, false)
	case traits.Mapper:
		return mapValue(t, true)
	case traits.Lister:
		var out []any
		it := t.Iterator()
		for it.HasNext() == types.True {
			out = append(out, ToNative(it.Next()))
		}
		if out == nil {
			out = []any{}
		}
		return out
	}
	return v.Value()
}

// mapValue copies m into a *value.Map, in iteration order or sorted by key.
func mapValue(m traits.Mapper, sorted bool) *value.Map {
	type entry struct {
		key string
		val ref.Val
	}

	var entries []entry
	it := m.Iterator()
	for it.HasNext() == types.True {
		k := it.Next()
		entries = append(entries, entry{key: value.String(ToNative(k)), val: m.Get(k)})
	}
	if sorted {
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	}

	out := value.NewMap()
	for _, e := range entries {
		out.Set(e.key, ToNative(e.val))
	}
	return out
}
