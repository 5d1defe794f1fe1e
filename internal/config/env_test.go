package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_ReadsPrefixedVariables(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://localhost:8080/api")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "10s")
	t.Setenv("STORAGE_DB_DSN", "/tmp/glowup.db")
	t.Setenv("LOG_FILE", "/tmp/glowup.log")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CONFIG", "/etc/glowup.yaml")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "http://localhost:8080/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/glowup.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/glowup.log", cfg.Log.File)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/etc/glowup.yaml", cfg.ConfigFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}
