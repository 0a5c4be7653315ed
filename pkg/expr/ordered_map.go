package expr

import (
	"reflect"

	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/common/types/traits"

	"github.com/carbon-eel/eel/pkg/value"
)

// orderedMap is a CEL map that iterates its keys in insertion order.
// Lookups, equality and size are served by the embedded map.
type orderedMap struct {
	traits.Mapper
	keys []ref.Val
}

func newOrderedMap(pairs []value.Pair) *orderedMap {
	m := make(map[ref.Val]ref.Val, len(pairs))
	keys := make([]ref.Val, 0, len(pairs))
	for _, p := range pairs {
		k := types.String(p.Key)
		if _, dup := m[k]; !dup {
			keys = append(keys, k)
		}
		m[k] = ConvertToCELValue(p.Value)
	}
	return &orderedMap{
		Mapper: types.NewRefValMap(types.DefaultTypeAdapter, m),
		keys:   keys,
	}
}

// Iterator implements traits.Iterable.
//
//nolint:ireturn // Following CEL's function signature.
func (m *orderedMap) Iterator() traits.Iterator {
	return &keyIterator{keys: m.keys}
}

type keyIterator struct {
	keys []ref.Val
	next int
}

//nolint:ireturn // Following CEL's function signature.
func (it *keyIterator) HasNext() ref.Val {
	return types.Bool(it.next < len(it.keys))
}

//nolint:ireturn // Following CEL's function signature.
func (it *keyIterator) Next() ref.Val {
	if it.next >= len(it.keys) {
		return nil
	}
	k := it.keys[it.next]
	it.next++
	return k
}

// The remaining methods satisfy ref.Val; iterators are never values.

func (*keyIterator) ConvertToNative(reflect.Type) (any, error) {
	return nil, errIteratorConversion
}

//nolint:ireturn // Following CEL's function signature.
func (*keyIterator) ConvertToType(ref.Type) ref.Val {
	return types.NewErr("no such overload")
}

//nolint:ireturn // Following CEL's function signature.
func (*keyIterator) Equal(ref.Val) ref.Val {
	return types.NewErr("no such overload")
}

//nolint:ireturn // Following CEL's function signature.
func (*keyIterator) Type() ref.Type {
	return types.IteratorType
}

func (*keyIterator) Value() any {
	return nil
}
