package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration structs keyed by type name.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvLoaded sync.Once
)

// Load parses the process environment into v once per configuration type.
// The default .env file is read into the environment on first use.
// Later calls for the same type return the cached copy.
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := typeName[T]()

	globalCache.mu.RLock()
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		globalCache.mu.RUnlock()
		return nil
	}
	globalCache.mu.RUnlock()

	globalCache.mu.Lock()
	once, exists := globalCache.onces[typeName]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[typeName] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			return
		}

		globalCache.mu.Lock()
		globalCache.values[typeName] = *v
		globalCache.mu.Unlock()
	})
	if err != nil {
		// Allow a retry once the environment is fixed.
		globalCache.mu.Lock()
		delete(globalCache.onces, typeName)
		globalCache.mu.Unlock()
		return err
	}

	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ResetCache forgets every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

// ParseOption configures Parse.
type ParseOption func(*parseOptions)

type parseOptions struct {
	files   []string
	prefix  string
	environ map[string]string
}

// WithEnvFiles reads variables from dotenv files. Process environment
// variables take precedence over file values. Missing files are an error.
func WithEnvFiles(files ...string) ParseOption {
	return func(o *parseOptions) {
		o.files = append(o.files, files...)
	}
}

// WithPrefix only considers variables starting with prefix, which is
// stripped before matching the env tags.
func WithPrefix(prefix string) ParseOption {
	return func(o *parseOptions) {
		o.prefix = prefix
	}
}

// WithEnviron replaces the process environment, e.g. in tests.
func WithEnviron(environ map[string]string) ParseOption {
	return func(o *parseOptions) {
		o.environ = environ
	}
}

// Parse parses configuration into v without caching and without modifying
// the process environment.
func Parse[T any](v *T, opts ...ParseOption) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &parseOptions{}
	for _, opt := range opts {
		opt(o)
	}

	vars := make(map[string]string)
	if len(o.files) > 0 {
		fromFiles, err := godotenv.Read(o.files...)
		if err != nil {
			return errors.Join(ErrReadingEnvFile, err)
		}
		maps.Copy(vars, fromFiles)
	}

	environ := o.environ
	if environ == nil {
		environ = environMap(os.Environ())
	}
	maps.Copy(vars, environ)

	if err := env.ParseWithOptions(v, env.Options{
		Environment: vars,
		Prefix:      o.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

func environMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
