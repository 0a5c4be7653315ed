package expr

import "errors"

var (
	ErrCreateEnvironment = errors.New("create CEL environment")
	ErrCompile           = errors.New("compile expression")
	ErrProgram           = errors.New("create program")
	ErrEval              = errors.New("evaluate expression")
	ErrInvalidFunction   = errors.New("invalid function declaration")
	ErrArgumentCount     = errors.New("wrong number of arguments")

	errIteratorConversion = errors.New("type conversion on iterators not supported")
)
