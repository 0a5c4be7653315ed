package expr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"

	"github.com/carbon-eel/eel/pkg/cache"
	"github.com/carbon-eel/eel/pkg/logger"
)

// DefaultProgramCacheSize is the number of compiled programs kept per Environment.
const DefaultProgramCacheSize = 256

// Protect CEL environment creation and compilation from concurrent access.
var celMutex sync.Mutex

// Environment provides a thread-safe wrapper around a [*cel.Env] with the
// registry functions declared.
type Environment struct {
	env      *cel.Env
	programs *cache.LRUCache[string, cel.Program]
	logger   *slog.Logger
}

// Option configures an Environment.
type Option func(*options)

type options struct {
	envOptions []cel.EnvOption
	cacheSize  int
	logger     *slog.Logger
}

// WithEnvOptions adds CEL environment options, e.g. variable declarations.
func WithEnvOptions(opts ...cel.EnvOption) Option {
	return func(o *options) {
		o.envOptions = append(o.envOptions, opts...)
	}
}

// WithProgramCacheSize sets how many compiled programs are memoized.
func WithProgramCacheSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.cacheSize = n
		}
	}
}

// WithLogger sets the logger used for evaluation failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewEnvironment creates an [Environment] exposing the registry functions.
func NewEnvironment(registry Registry, opts ...Option) (*Environment, error) {
	o := &options{cacheSize: DefaultProgramCacheSize, logger: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}

	envOpts := []cel.EnvOption{ext.Strings(), ext.Lists(), ext.Math()}
	if registry != nil {
		for _, fn := range registry.Functions() {
			decl, err := declare(fn)
			if err != nil {
				return nil, errors.Join(ErrCreateEnvironment, err)
			}
			envOpts = append(envOpts, decl)
		}
	}
	envOpts = append(envOpts, o.envOptions...)

	celMutex.Lock()
	env, err := cel.NewEnv(envOpts...)
	celMutex.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateEnvironment, err)
	}

	return &Environment{
		env:      env,
		programs: cache.NewLRUCache[string, cel.Program](o.cacheSize),
		logger:   o.logger,
	}, nil
}

// MustNewEnvironment creates a new [Environment] and panics on error.
func MustNewEnvironment(registry Registry, opts ...Option) *Environment {
	env, err := NewEnvironment(registry, opts...)
	if err != nil {
		panic(err)
	}
	return env
}

// Compile compiles an expression against the declared functions and variables.
//
//nolint:ireturn // Following CEL's function signature.
func (e *Environment) Compile(expression string) (cel.Program, error) {
	return e.compile(e.env, expression)
}

func (e *Environment) compile(env *cel.Env, expression string) (cel.Program, error) {
	celMutex.Lock()
	defer celMutex.Unlock()

	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, issues.Err())
	}

	program, err := env.Program(ast, cel.InterruptCheckFrequency(100))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProgram, err)
	}
	return program, nil
}

// Eval compiles (or reuses) and evaluates an expression. Every key of vars
// is declared as a dynamically typed variable.
func (e *Environment) Eval(ctx context.Context, expression string, vars map[string]any) (any, error) {
	program, err := e.program(expression, vars)
	if err != nil {
		e.logger.DebugContext(ctx, "expression rejected", logger.Expression(expression), logger.Error(err))
		return nil, err
	}

	activation := make(map[string]any, len(vars))
	for k, v := range vars {
		activation[k] = ConvertToCELValue(v)
	}

	out, _, err := program.ContextEval(ctx, activation)
	if err != nil {
		e.logger.WarnContext(ctx, "expression failed", logger.Expression(expression), logger.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return ToNative(out), nil
}

// program returns a memoized program for the expression and variable names.
//
//nolint:ireturn // Following CEL's function signature.
func (e *Environment) program(expression string, vars map[string]any) (cel.Program, error) {
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	slices.Sort(names)

	key := strings.Join(names, ",") + "\x00" + expression
	if p, ok := e.programs.Get(key); ok {
		return p, nil
	}

	env := e.env
	if len(names) > 0 {
		decls := make([]cel.EnvOption, len(names))
		for i, name := range names {
			decls[i] = cel.Variable(name, cel.DynType)
		}

		celMutex.Lock()
		extended, err := e.env.Extend(decls...)
		celMutex.Unlock()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCreateEnvironment, err)
		}
		env = extended
	}

	p, err := e.compile(env, expression)
	if err != nil {
		return nil, err
	}
	e.programs.Put(key, p)
	return p, nil
}
