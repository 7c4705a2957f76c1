package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvEdgeBaseURL, "https://edge.example.com")
	t.Setenv(EnvEdgeAPIKey, "secret")
	t.Setenv(EnvHeavyTimeout, "45")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "https://edge.example.com", cfg.Edge.BaseURL)
	assert.Equal(t, "secret", cfg.Edge.APIKey)
	assert.Equal(t, 45*time.Second, cfg.Edge.HeavyTimeout)
	assert.Equal(t, time.Duration(0), cfg.Edge.LightTimeout)
}

func TestValidateRequiresBaseURL(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.Validate())

	cfg.Edge.BaseURL = "not a url"
	require.Error(t, cfg.Validate())

	cfg.Edge.BaseURL = "https://edge.example.com"
	require.NoError(t, cfg.Validate())
}

func TestFromEnvRejectsBadTimeout(t *testing.T) {
	t.Setenv(EnvEdgeBaseURL, "https://edge.example.com")
	t.Setenv(EnvLightTimeout, "soon")

	_, err := FromEnv()
	require.Error(t, err)
}
