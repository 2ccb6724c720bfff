// Package config loads the service configuration.
//
// Values come from three layers, later layers winning:
//
//  1. compiled-in defaults
//  2. an optional TOML file (--config or MEMELAB_CONFIG)
//  3. environment variables
//
// Every provider credential is optional. A provider whose key is empty is
// reported as unavailable rather than failing startup.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/memelab/pkg/providers"
)

const (
	// DefaultAddr is the listen address of the HTTP server.
	DefaultAddr = ":3001"

	// PathEnv names the environment variable holding the config file path.
	PathEnv = "MEMELAB_CONFIG"
)

// Config is the full service configuration.
type Config struct {
	Addr  string `toml:"addr" env:"MEMELAB_ADDR" validate:"required"`
	Redis Redis  `toml:"redis"`
	Keys  Keys   `toml:"keys"`
}

// Redis configures the optional shared cache. An empty Addr selects the
// in-process cache.
type Redis struct {
	Addr      string `toml:"addr" env:"MEMELAB_REDIS_ADDR" validate:"omitempty,hostname_port"`
	Password  string `toml:"password" env:"MEMELAB_REDIS_PASSWORD"`
	DB        int    `toml:"db" env:"MEMELAB_REDIS_DB" validate:"min=0,max=15"`
	Namespace string `toml:"namespace" env:"MEMELAB_REDIS_NAMESPACE"`
}

// Keys holds one credential per search provider.
type Keys struct {
	Serper  string `toml:"serper" env:"SERPER_API_KEY"`
	SerpAPI string `toml:"serpapi" env:"SERPAPI_API_KEY"`
	Brave   string `toml:"brave" env:"BRAVE_API_KEY"`
	Tavily  string `toml:"tavily" env:"TAVILY_API_KEY"`
	Giphy   string `toml:"giphy" env:"GIPHY_API_KEY"`
	Pixabay string `toml:"pixabay" env:"PIXABAY_API_KEY"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Addr:  DefaultAddr,
		Redis: Redis{Namespace: "memelab:"},
	}
}

// Load builds the configuration from defaults, the TOML file at path and
// the environment. An empty path falls back to $MEMELAB_CONFIG; when both
// are empty no file is read.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("config file %s not found", path)
			}
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("invalid config: %s failed %q", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Credentials converts the configured keys for the provider registry.
func (c Config) Credentials() providers.Credentials {
	return providers.Credentials{
		Serper:  c.Keys.Serper,
		SerpAPI: c.Keys.SerpAPI,
		Brave:   c.Keys.Brave,
		Tavily:  c.Keys.Tavily,
		Giphy:   c.Keys.Giphy,
		Pixabay: c.Keys.Pixabay,
	}
}

// UseRedis reports whether the shared Redis cache is configured.
func (c Config) UseRedis() bool {
	return c.Redis.Addr != ""
}
