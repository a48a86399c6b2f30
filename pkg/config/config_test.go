package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := NewViper()
	v.Set("base_url", "https://api.notehub.test")
	v.Set("api_token", "token-123")

	cfg, err := Load(v)

	require.NoError(t, err)
	assert.Equal(t, "https://api.notehub.test", cfg.BaseURL)
	assert.Equal(t, "token-123", cfg.APIToken)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "notehub-mcp.log", cfg.LogFile)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.DefaultWorkspaceID)
}

func TestLoad_MissingBaseURL(t *testing.T) {
	v := NewViper()
	v.Set("api_token", "token-123")

	_, err := Load(v)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
}

func TestLoad_MissingToken(t *testing.T) {
	v := NewViper()
	v.Set("base_url", "https://api.notehub.test")

	_, err := Load(v)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_token")
}

func TestLoad_AllFields(t *testing.T) {
	v := NewViper()
	v.Set("base_url", "https://api.notehub.test")
	v.Set("api_token", "token-123")
	v.Set("workspace_id", "ws-9")
	v.Set("debug", true)
	v.Set("log.level", "debug")
	v.Set("log.file", "/tmp/adapter.log")

	cfg, err := Load(v)

	require.NoError(t, err)
	assert.Equal(t, "ws-9", cfg.DefaultWorkspaceID)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/adapter.log", cfg.LogFile)
}
