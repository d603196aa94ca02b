// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// LoadEnv reads one or more `.env` files into the process environment, and
// Load parses the environment into any struct annotated with `env` and
// `envDefault` tags. Parsed values are cached per type and prefix, so repeated
// loads are cheap and concurrent callers see the same value.
//
// # Usage
//
//	type MiddlewareConfig struct {
//	    StatusCode int `env:"STATUS_CODE" envDefault:"422"`
//	}
//
//	var cfg MiddlewareConfig
//	if err := config.Load(&cfg, config.WithPrefix("HTTPVALIDATE_")); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Errors wrap ErrParsingConfig, ErrNilPointer or ErrLoadingEnvFile and can be
// checked with errors.Is. Use ResetCache in tests after changing the
// environment.
package config
