package httpvalidate_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/freeval/pkg/config"
	"github.com/dmitrymomot/freeval/pkg/httpvalidate"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := httpvalidate.LoadConfig(config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, httpvalidate.DefaultConfig(), cfg)
	})

	t.Run("prefixed overrides", func(t *testing.T) {
		cfg, err := httpvalidate.LoadConfig(config.WithEnvironment(map[string]string{
			"HTTPVALIDATE_STATUS_CODE":    "400",
			"HTTPVALIDATE_MAX_BODY_BYTES": "2048",
			"HTTPVALIDATE_ERROR_CODE":     "bad_input",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, cfg.StatusCode)
		assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
		assert.Equal(t, "bad_input", cfg.ErrorCode)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := httpvalidate.LoadConfig(config.WithEnvironment(map[string]string{
			"HTTPVALIDATE_MAX_BODY_BYTES": "lots",
		}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}
