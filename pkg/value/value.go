package value

import (
	"fmt"
	"iter"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is an insertion-ordered string-keyed map. Helpers that return keyed
// collections return a *Map so that key order survives the round trip
// through templates and expressions.
type Map = orderedmap.OrderedMap[string, any]

// NewMap builds a Map from alternating key/value arguments.
// A trailing key without a value is stored with a nil value.
func NewMap(kv ...any) *Map {
	m := orderedmap.New[string, any]()
	for i := 0; i < len(kv); i += 2 {
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		m.Set(String(kv[i]), v)
	}
	return m
}

// Pair is one entry of an iterable input.
// For list input Key is the decimal index and IsIndex is true.
type Pair struct {
	Key     string
	Index   int
	IsIndex bool
	Value   any
}

// Pairs returns the entries of a list-like or map-like value in iteration order.
// Plain Go maps have no order, so their keys are sorted.
// The second result is false when v is not iterable.
func Pairs(v any) ([]Pair, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case *Map:
		if t == nil {
			return nil, false
		}
		out := make([]Pair, 0, t.Len())
		for p := t.Oldest(); p != nil; p = p.Next() {
			out = append(out, Pair{Key: p.Key, Value: p.Value})
		}
		return out, true
	case []any:
		return indexPairs(len(t), func(i int) any { return t[i] }), true
	case []string:
		return indexPairs(len(t), func(i int) any { return t[i] }), true
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]Pair, 0, len(keys))
		for _, k := range keys {
			out = append(out, Pair{Key: k, Value: t[k]})
		}
		return out, true
	case iter.Seq[any]:
		return seqPairs(t), true
	case func(func(any) bool):
		return seqPairs(t), true
	case iter.Seq2[string, any]:
		return seq2Pairs(t), true
	case func(func(string, any) bool):
		return seq2Pairs(t), true
	case string, []byte:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return indexPairs(rv.Len(), func(i int) any { return rv.Index(i).Interface() }), true
	case reflect.Map:
		keys := rv.MapKeys()
		out := make([]Pair, 0, len(keys))
		for _, k := range keys {
			out = append(out, Pair{Key: String(k.Interface()), Value: rv.MapIndex(k).Interface()})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
		return out, true
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, false
		}
		if rv.Elem().Kind() == reflect.Slice || rv.Elem().Kind() == reflect.Map {
			return Pairs(rv.Elem().Interface())
		}
	}
	return nil, false
}

func indexPairs(n int, at func(int) any) []Pair {
	out := make([]Pair, n)
	for i := range n {
		out[i] = Pair{Key: strconv.Itoa(i), Index: i, IsIndex: true, Value: at(i)}
	}
	return out
}

func seqPairs(seq func(func(any) bool)) []Pair {
	var out []Pair
	i := 0
	for v := range seq {
		out = append(out, Pair{Key: strconv.Itoa(i), Index: i, IsIndex: true, Value: v})
		i++
	}
	return out
}

func seq2Pairs(seq func(func(string, any) bool)) []Pair {
	var out []Pair
	for k, v := range seq {
		out = append(out, Pair{Key: k, Value: v})
	}
	return out
}

// List returns the values of an iterable input in iteration order.
func List(v any) ([]any, bool) {
	if l, ok := v.([]any); ok {
		return l, true
	}
	pairs, ok := Pairs(v)
	if !ok {
		return nil, false
	}
	out := make([]any, len(pairs))
	for i, p := range pairs {
		out[i] = p.Value
	}
	return out, true
}

// IsList reports whether v is a sequential collection (slice, array or iterator).
func IsList(v any) bool {
	switch v.(type) {
	case nil, string, []byte, *Map:
		return false
	case iter.Seq[any], func(func(any) bool):
		return true
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// IsIterable reports whether v can be walked by Pairs.
func IsIterable(v any) bool {
	_, ok := Pairs(v)
	return ok
}

// Len returns the number of entries of an iterable input, 0 otherwise.
func Len(v any) int {
	switch t := v.(type) {
	case *Map:
		if t == nil {
			return 0
		}
		return t.Len()
	case []any:
		return len(t)
	}
	pairs, _ := Pairs(v)
	return len(pairs)
}

// String converts a scalar to its template string form.
// Booleans render the way CMS templates expect: true is "1", false is "".
func String(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return ""
	case []byte:
		return string(t)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.String:
		return rv.String()
	}
	return fmt.Sprint(v)
}

// Truthy reports whether v is truthy in the loose template sense:
// empty strings, "0", zero numbers, false, nil and empty collections are falsy.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "0"
	case *Map:
		return t != nil && t.Len() > 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String:
		s := rv.String()
		return s != "" && s != "0"
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// IsInt reports whether v holds a Go integer.
func IsInt(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// IsNumeric reports whether v is a number or a numeric string.
func IsNumeric(v any) bool {
	_, ok := Float(v)
	if !ok {
		return false
	}
	_, isBool := v.(bool)
	return !isBool
}

// Float coerces numbers and numeric strings to float64.
func Float(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		return parseNumeric(t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// numericRegex is the decimal number grammar of numeric strings. Spellings
// such as "inf", "nan", hex floats or digit separators are not numeric.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !numericRegex.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Int coerces numbers and numeric strings to int, truncating fractions.
func Int(v any) (int, bool) {
	f, ok := Float(v)
	return int(f), ok
}

// Equal compares two scalars loosely: numerically when both are numeric,
// by string form otherwise.
func Equal(a, b any) bool {
	if IsNumeric(a) && IsNumeric(b) {
		fa, _ := Float(a)
		fb, _ := Float(b)
		return fa == fb
	}
	return String(a) == String(b)
}
