package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type cache struct {
	mu     sync.Mutex
	values map[string]any
}

var (
	globalCache      = &cache{values: make(map[string]any)}
	defaultEnvLoaded sync.Once
)

// LoadOption configures a single Load call.
type LoadOption func(*env.Options)

// WithPrefix prepends prefix to every env tag of the struct.
func WithPrefix(prefix string) LoadOption {
	return func(o *env.Options) { o.Prefix = prefix }
}

// WithEnvironment parses from the given map instead of the process environment.
// Results are not cached.
func WithEnvironment(vars map[string]string) LoadOption {
	return func(o *env.Options) { o.Environment = vars }
}

// Load parses environment variables into v. The default .env file is read
// once, if present. Successful results are cached per type and prefix.
func Load[T any](v *T, opts ...LoadOption) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	if o.Environment != nil {
		return parse(v, o)
	}

	key := cacheKey[T](o.Prefix)

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := parse(v, o); err != nil {
		return err
	}
	globalCache.values[key] = *v
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, opts ...LoadOption) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set. With no paths it reads ".env".
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.mu.Unlock()
}

func parse[T any](v *T, o env.Options) error {
	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

func cacheKey[T any](prefix string) string {
	return reflect.TypeFor[T]().String() + "|" + prefix
}
