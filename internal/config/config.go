// Package config loads the client configuration file.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the client settings.
type Config struct {
	// BaseURL is the backend root, e.g. "http://127.0.0.1:8000".
	BaseURL string `yaml:"base_url"`

	// RequestTimeout bounds every REST call.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// RefreshInterval re-fetches the roster periodically. Zero disables
	// the timer; mutations always trigger their own re-fetch regardless.
	RefreshInterval time.Duration `yaml:"refresh_interval"`

	// TokenFile overrides the session token location.
	TokenFile string `yaml:"token_file"`
}

func defaultConfig() *Config {
	return &Config{
		BaseURL:        "http://127.0.0.1:8000",
		RequestTimeout: 10 * time.Second,
	}
}

// Load reads a config file, applying defaults for unspecified fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns defaults when the file is
// missing. Any other error still surfaces.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	return cfg, err
}
