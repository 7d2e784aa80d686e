package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(slog.Default())
	require.NoError(t, err)
	assert.EqualValues(t, defaultAddress, cfg.Address())
	assert.EqualValues(t, defaultLogLevel, cfg.LogLevel())
	assert.EqualValues(t, defaultSecretKey, cfg.SecretKey())
	assert.EqualValues(t, defaultTokenTTL, cfg.TokenTTL())
}

func TestParseConfigParams(t *testing.T) {
	cfg, err := ParseConfig(
		slog.Default(),
		ConfigAddress("localhost:9090"),
		ConfigLogLevel("debug"),
		ConfigSecretKey("secret"),
	)
	require.NoError(t, err)
	assert.EqualValues(t, "localhost:9090", cfg.Address())
	assert.EqualValues(t, "debug", cfg.LogLevel())
	assert.EqualValues(t, "secret", cfg.SecretKey())
}

func TestParseConfigEnv(t *testing.T) {
	// переменные окружения важнее переданных опций
	t.Setenv(EnvServerAddress, "localhost:7070")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := ParseConfig(slog.Default(), ConfigAddress("localhost:9090"))
	require.NoError(t, err)
	assert.EqualValues(t, "localhost:7070", cfg.Address())
	assert.EqualValues(t, "error", cfg.LogLevel())
	assert.EqualValues(t, defaultSecretKey, cfg.SecretKey())
}
