package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "http://localhost:8080/api",
		"-request-timeout", "45s",
		"-d", "/tmp/client.db",
		"-config", "/tmp/client.yaml",
		"-log-file", "/tmp/client.log",
		"-log-level", "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/client.yaml", cfg.ConfigFilePath)
	assert.Equal(t, "/tmp/client.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.ConfigFilePath)
}

func TestParseFlags_NoArgsGivesZeroConfig(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := ParseFlags([]string{"-request-timeout", "forever"})
	assert.Error(t, err)
}
