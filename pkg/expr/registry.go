package expr

import (
	"fmt"
	"strconv"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
)

// Function is a helper callable from expressions.
type Function struct {
	// Name is the qualified function name, e.g. "Carbon.Array.chunk".
	Name string
	// MinArgs and MaxArgs bound the accepted argument count.
	MinArgs int
	MaxArgs int
	// Call receives converted Go arguments.
	Call func(args []any) (any, error)
}

// Registry provides the functions an Environment declares.
type Registry interface {
	Functions() []Function
}

// Funcs adapts a plain slice to Registry.
type Funcs []Function

// Functions implements Registry.
func (f Funcs) Functions() []Function {
	return f
}

// declare turns a Function into a CEL function declaration with one
// dyn-typed overload per arity.
func declare(fn Function) (cel.EnvOption, error) {
	if fn.Name == "" || fn.Call == nil || fn.MinArgs < 0 || fn.MaxArgs < fn.MinArgs {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFunction, fn.Name)
	}

	overloads := make([]cel.FunctionOpt, 0, fn.MaxArgs-fn.MinArgs+1)
	for arity := fn.MinArgs; arity <= fn.MaxArgs; arity++ {
		argTypes := make([]*cel.Type, arity)
		for i := range argTypes {
			argTypes[i] = cel.DynType
		}
		id := fn.Name + "_" + strconv.Itoa(arity)
		overloads = append(overloads, cel.Overload(id, argTypes, cel.DynType, binding(fn, arity)))
	}

	return cel.Function(fn.Name, overloads...), nil
}

func binding(fn Function, arity int) cel.OverloadOpt {
	call := func(args ...ref.Val) ref.Val {
		native := make([]any, len(args))
		for i, a := range args {
			native[i] = ToNative(a)
		}
		out, err := fn.Call(native)
		if err != nil {
			return types.WrapErr(fmt.Errorf("%s: %w", fn.Name, err))
		}
		return ConvertToCELValue(out)
	}

	switch arity {
	case 1:
		return cel.UnaryBinding(func(arg ref.Val) ref.Val { return call(arg) })
	case 2:
		return cel.BinaryBinding(func(lhs, rhs ref.Val) ref.Val { return call(lhs, rhs) })
	default:
		return cel.FunctionBinding(call)
	}
}
