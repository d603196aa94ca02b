package httpvalidate

import (
	"net/http"

	"github.com/dmitrymomot/freeval/pkg/config"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "HTTPVALIDATE_"

// Config controls how the middleware reads requests and renders failures.
type Config struct {
	// StatusCode is written when validation fails.
	StatusCode int `env:"STATUS_CODE" envDefault:"422"`
	// MaxBodyBytes bounds the request body read for validation.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	// ErrorCode is the machine-readable code in failure responses.
	ErrorCode string `env:"ERROR_CODE" envDefault:"validation_failed"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		StatusCode:   http.StatusUnprocessableEntity,
		MaxBodyBytes: 1 << 20,
		ErrorCode:    "validation_failed",
	}
}

// LoadConfig reads Config from HTTPVALIDATE_* environment variables.
func LoadConfig(opts ...config.LoadOption) (Config, error) {
	var cfg Config
	opts = append([]config.LoadOption{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
