package expr_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/cel-go/cel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbon-eel/eel/pkg/expr"
	"github.com/carbon-eel/eel/pkg/value"
)

var errBoom = errors.New("boom")

func testRegistry() expr.Funcs {
	return expr.Funcs{
		{
			Name: "Test.String.upper", MinArgs: 1, MaxArgs: 1,
			Call: func(args []any) (any, error) {
				return strings.ToUpper(value.String(args[0])), nil
			},
		},
		{
			Name: "Test.String.join", MinArgs: 1, MaxArgs: 2,
			Call: func(args []any) (any, error) {
				sep := ","
				if len(args) > 1 {
					sep = value.String(args[1])
				}
				list, _ := value.List(args[0])
				parts := make([]string, len(list))
				for i, v := range list {
					parts[i] = value.String(v)
				}
				return strings.Join(parts, sep), nil
			},
		},
		{
			Name: "Test.Array.keys", MinArgs: 1, MaxArgs: 1,
			Call: func(args []any) (any, error) {
				pairs, _ := value.Pairs(args[0])
				keys := make([]string, len(pairs))
				for i, p := range pairs {
					keys[i] = p.Key
				}
				return keys, nil
			},
		},
		{
			Name: "Test.Map.make", MinArgs: 0, MaxArgs: 0,
			Call: func([]any) (any, error) {
				return value.NewMap("b", 2, "a", []any{1, "x"}), nil
			},
		},
		{
			Name: "Test.sum", MinArgs: 3, MaxArgs: 3,
			Call: func(args []any) (any, error) {
				total := 0
				for _, a := range args {
					n, _ := value.Int(a)
					total += n
				}
				return total, nil
			},
		},
		{
			Name: "Test.fail", MinArgs: 0, MaxArgs: 0,
			Call: func([]any) (any, error) { return nil, errBoom },
		},
	}
}

func newEnv(t *testing.T) *expr.Environment {
	t.Helper()
	env, err := expr.NewEnvironment(testRegistry())
	require.NoError(t, err)
	return env
}

func TestEnvironment_Eval(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		expr     string
		vars     map[string]any
		expected any
	}{
		{name: "unary", expr: `Test.String.upper("abc")`, expected: "ABC"},
		{name: "optional argument omitted", expr: `Test.String.join(["a", "b"])`, expected: "a,b"},
		{name: "optional argument given", expr: `Test.String.join(["a", 1], "-")`, expected: "a-1"},
		{name: "ternary arity", expr: `Test.sum(1, 2, 3)`, expected: 6},
		{name: "map argument keys are sorted", expr: `Test.Array.keys({"z": 1, "a": 2})`, expected: []any{"a", "z"}},
		{name: "variables", expr: `Test.String.upper(title) + suffix`, vars: map[string]any{"title": "x", "suffix": "!"}, expected: "X!"},
		{name: "ordered map variable", expr: `Test.Array.keys(m)`, vars: map[string]any{"m": value.NewMap("b", 1, "a", 2)}, expected: []any{"a", "b"}},
		{name: "ext strings", expr: `"a-b".split("-")`, expected: []any{"a", "b"}},
		{name: "plain CEL", expr: `1 + 2`, expected: 3},
		{name: "null", expr: `null`, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := env.Eval(ctx, tt.expr, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestEnvironment_MapResult(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	ctx := context.Background()

	out, err := env.Eval(ctx, `Test.Map.make()`, nil)
	require.NoError(t, err)

	m, ok := out.(*value.Map)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, mapKeys(m), "helper key order survives")
	b, _ := m.Get("b")
	assert.Equal(t, 2, b)
	a, _ := m.Get("a")
	assert.Equal(t, []any{1, "x"}, a)

	tests := []struct {
		name     string
		expr     string
		expected any
	}{
		{name: "comprehension order", expr: `Test.Map.make().map(k, k)`, expected: []any{"b", "a"}},
		{name: "index", expr: `Test.Map.make()["b"]`, expected: 2},
		{name: "membership", expr: `"a" in Test.Map.make()`, expected: true},
		{name: "size", expr: `size(Test.Map.make())`, expected: 2},
		{name: "equality", expr: `Test.Map.make() == {"a": [1, "x"], "b": 2}`, expected: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := env.Eval(ctx, tt.expr, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	out, err = env.Eval(ctx, `{"z": 1, "a": 2}`, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "z"}, mapKeys(out.(*value.Map)), "literal maps are sorted")
}

func mapKeys(m *value.Map) []string {
	var keys []string
	for p := m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

func TestEnvironment_Errors(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	ctx := context.Background()

	_, err := env.Eval(ctx, `Test.String.upper(`, nil)
	assert.ErrorIs(t, err, expr.ErrCompile)

	_, err = env.Eval(ctx, `Test.String.upper("a", "b")`, nil)
	assert.ErrorIs(t, err, expr.ErrCompile, "arity outside the declared range")

	_, err = env.Eval(ctx, `Unknown.fn()`, nil)
	assert.ErrorIs(t, err, expr.ErrCompile)

	_, err = env.Eval(ctx, `Test.fail()`, nil)
	assert.ErrorIs(t, err, expr.ErrEval)
	assert.Contains(t, err.Error(), "boom")
}

func TestEnvironment_Compile(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	program, err := env.Compile(`Test.String.upper("x")`)
	require.NoError(t, err)

	out, _, err := program.Eval(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "X", expr.ToNative(out))
}

func TestEnvironment_WithEnvOptions(t *testing.T) {
	t.Parallel()

	env, err := expr.NewEnvironment(nil, expr.WithEnvOptions(cel.Variable("name", cel.StringType)))
	require.NoError(t, err)

	program, err := env.Compile(`"hi " + name`)
	require.NoError(t, err)
	out, _, err := program.Eval(map[string]any{"name": "bo"})
	require.NoError(t, err)
	assert.Equal(t, "hi bo", expr.ToNative(out))
}

func TestNewEnvironment_InvalidFunction(t *testing.T) {
	t.Parallel()

	_, err := expr.NewEnvironment(expr.Funcs{{Name: "bad", MinArgs: 2, MaxArgs: 1, Call: func([]any) (any, error) { return nil, nil }}})
	assert.ErrorIs(t, err, expr.ErrInvalidFunction)

	assert.Panics(t, func() {
		expr.MustNewEnvironment(expr.Funcs{{Name: "nocall", MaxArgs: 1}})
	})
}

func TestConvertRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{name: "int64", input: int64(5), expected: 5},
		{name: "uint8", input: uint8(5), expected: 5},
		{name: "float", input: 1.5, expected: 1.5},
		{name: "bool", input: true, expected: true},
		{name: "strings", input: []string{"a", "b"}, expected: []any{"a", "b"}},
		{name: "typed slice", input: []int{1, 2}, expected: []any{1, 2}},
		{name: "empty list", input: []any{}, expected: []any{}},
		{name: "unsupported", input: struct{}{}, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, expr.ToNative(expr.ConvertToCELValue(tt.input)))
		})
	}
}
