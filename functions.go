package eel

import (
	"github.com/carbon-eel/eel/pkg/expr"
	"github.com/carbon-eel/eel/pkg/value"
)

// maxVariadicArgs bounds the arity declared for variadic helpers in expressions.
const maxVariadicArgs = 8

type callFunc = func(args []any) (any, error)

func function(name string, minArgs, maxArgs int, call callFunc) expr.Function {
	return expr.Function{Name: name, MinArgs: minArgs, MaxArgs: maxArgs, Call: call}
}

// pure wraps a call that cannot fail.
func pure(call func(args []any) any) callFunc {
	return func(args []any) (any, error) {
		return call(args), nil
	}
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func stringArg(args []any, i int, def string) string {
	if i < len(args) {
		return value.String(args[i])
	}
	return def
}

func intArg(args []any, i int, def int) int {
	if i < len(args) {
		if n, ok := value.Int(args[i]); ok {
			return n
		}
	}
	return def
}

func boolArg(args []any, i int, def bool) bool {
	if i < len(args) {
		return value.Truthy(args[i])
	}
	return def
}

// optional returns the first variadic value or def.
func optional[T any](vals []T, def T) T {
	if len(vals) > 0 {
		return vals[0]
	}
	return def
}

// modifierArg turns variadic modifiers into the single value the bem package expects.
func modifierArg(mods []any) any {
	switch len(mods) {
	case 0:
		return nil
	case 1:
		return mods[0]
	default:
		return mods
	}
}
