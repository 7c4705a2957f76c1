// Package config loads and validates the application configuration from
// the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Env var names.
const (
	EnvEdgeBaseURL  = "SOUSCHEF_EDGE_BASE_URL"
	EnvEdgeAPIKey   = "SOUSCHEF_EDGE_API_KEY"
	EnvHeavyTimeout = "SOUSCHEF_HEAVY_TIMEOUT_SECS"
	EnvLightTimeout = "SOUSCHEF_LIGHT_TIMEOUT_SECS"
)

// Config is the application configuration.
type Config struct {
	Edge EdgeConfig
}

// EdgeConfig configures the AI edge-function client. HeavyTimeout covers
// /extract and /mealplan, LightTimeout covers /caption and /scan; zero
// means the client default.
type EdgeConfig struct {
	BaseURL      string
	APIKey       string
	HeavyTimeout time.Duration
	LightTimeout time.Duration
}

// Validate validates the edge configuration.
func (c *EdgeConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.HeavyTimeout, validation.Min(time.Duration(0)), validation.Max(5*time.Minute)),
		validation.Field(&c.LightTimeout, validation.Min(time.Duration(0)), validation.Max(5*time.Minute)),
	)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return c.Edge.Validate()
}

// FromEnv builds a Config from the environment. Call Validate on the
// result before using it.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Edge: EdgeConfig{
			BaseURL: os.Getenv(EnvEdgeBaseURL),
			APIKey:  os.Getenv(EnvEdgeAPIKey),
		},
	}

	var err error
	if cfg.Edge.HeavyTimeout, err = secondsEnv(EnvHeavyTimeout); err != nil {
		return nil, err
	}
	if cfg.Edge.LightTimeout, err = secondsEnv(EnvLightTimeout); err != nil {
		return nil, err
	}
	return cfg, nil
}

func secondsEnv(name string) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, nil
	}
	secs, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: expected a number of seconds, got %q", name, raw)
	}
	return time.Duration(secs) * time.Second, nil
}
