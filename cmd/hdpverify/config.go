package main

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds settings shared across hdpverify invocations. Flags override
// whatever a config file sets.
type Config struct {
	// HashDomain selects which digest.Hasher backs every verify run:
	// "keccak" (byte domain) or "field" (field domain).
	HashDomain string `toml:"hash_domain"`

	// LogLevel is one of zap's level names: debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		HashDomain: "keccak",
		LogLevel:   "info",
	}
}

// LoadConfig reads TOML configuration from path. A missing file is not an
// error; DefaultConfig is returned instead.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for unsupported values.
func (c *Config) Validate() error {
	switch c.HashDomain {
	case "keccak", "field":
	default:
		return errors.New("config: hash_domain must be \"keccak\" or \"field\"")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("config: log_level must be one of debug, info, warn, error")
	}
	return nil
}
