// Package config resolves configuration for the pexels CLI.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds the resolved CLI configuration. The library itself takes the
// API key by injection only; this package exists so the command line tool can
// gather it from the usual places.
type Config struct {
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
	LogLevel string        `mapstructure:"log_level"`
}

const (
	defaultTimeout  = 30 * time.Second
	defaultLogLevel = "info"
)

// Default returns the default CLI configuration
func Default() *Config {
	return &Config{
		Timeout:  defaultTimeout,
		LogLevel: defaultLogLevel,
	}
}

// Load resolves configuration for the CLI. Precedence, highest first:
// process environment (PEXELS_API_KEY and friends), a .env file in the
// working directory, then the optional config file at path. gotenv never
// overwrites variables already present in the environment, which is what
// gives the environment its precedence over .env.
func Load(path string) (*Config, error) {
	// Best effort: a missing .env file is the normal case.
	_ = gotenv.Load()

	v := viper.New()
	v.SetDefault("timeout", defaultTimeout.String())
	v.SetDefault("log_level", defaultLogLevel)

	if err := v.BindEnv("api_key", "PEXELS_API_KEY"); err != nil {
		return nil, fmt.Errorf("binding environment: %w", err)
	}
	if err := v.BindEnv("log_level", "PEXELS_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("binding environment: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}
