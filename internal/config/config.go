// Package config provides configuration management.
package config

import (
	"strings"
	"sync"

	"github.com/spf13/viper"

	"immoquote/internal/errors"
	"immoquote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Server contains HTTP server settings
	Server ServerConfig `mapstructure:"server"`

	// Pricing contains pricing engine settings
	Pricing PricingConfig `mapstructure:"pricing"`

	// Logging contains logging configuration
	Logging logging.Config `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `mapstructure:"addr"`
}

// PricingConfig contains pricing engine settings
type PricingConfig struct {
	// OverridesFile is an optional HCL file re-pricing catalog entries
	OverridesFile string `mapstructure:"overrides_file"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Server:  ServerConfig{Addr: ":8080"},
		Logging: logging.DefaultConfig(),
	}
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Load reads configuration from the given file (optional) and the
// IMMOQUOTE_* environment, layered over the defaults.
func Load(file string) (Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.output", defaults.Logging.Output)
	v.SetDefault("logging.development", defaults.Logging.Development)
	v.SetDefault("pricing.overrides_file", "")

	v.SetEnvPrefix("IMMOQUOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return defaults, errors.Wrap(errors.TypeConfig, "read config file", err).
				WithContext("file", file)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return defaults, errors.Wrap(errors.TypeConfig, "decode config", err)
	}
	return cfg, nil
}

// Get returns the current configuration
func Get() Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the current configuration
func Set(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}
