// Package config provides configuration management for the greeting service.
package config

import (
	"fmt"
	"os"

	"github.com/sahanas/greet-service/internal/greeting"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Greeting GreetingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
}

// GreetingConfig holds greeting-related configuration
type GreetingConfig struct {
	DefaultLanguage string // Language used when the request omits one
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Greeting: GreetingConfig{
			DefaultLanguage: getEnv("GREET_DEFAULT_LANGUAGE", "en"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if err := greeting.ValidateLanguage(c.Greeting.DefaultLanguage); err != nil {
		return fmt.Errorf("GREET_DEFAULT_LANGUAGE %q: %w", c.Greeting.DefaultLanguage, err)
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
