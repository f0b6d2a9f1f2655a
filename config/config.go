package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Replacement Configuration
	Replacer ReplacerConfig `envPrefix:"ENVREPLACE_"`

	// Application Configuration
	App AppConfig `envPrefix:"APP_"`
}

// ReplacerConfig describes a single rewrite of a build artifact
type ReplacerConfig struct {
	File string `env:"FILE" envDefault:"./dist/index.html"`
	Env  string `env:"ENV" envDefault:"int"`

	// Custom search pattern and replacement for the library reference.
	// Empty means the built-in value is used.
	Find    string `env:"FIND"`
	Replace string `env:"REPLACE"`

	LibraryHost string `env:"LIBRARY_HOST" envDefault:"components"`
	BaseDomain  string `env:"BASE_DOMAIN" envDefault:"crossroads.net"`
	DryRun      bool   `env:"DRY_RUN" envDefault:"false"`
}

type AppConfig struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// A missing .env file is fine, plain environment variables still apply
	_ = godotenv.Load(getEnv("ENVREPLACE_DOTENV", ".env"))

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks values that cannot be fixed up later. The target file is
// deliberately not checked; a missing file surfaces as an I/O error.
func Validate(cfg *Config) error {
	switch cfg.App.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("unsupported log format %q", cfg.App.LogFormat)
	}
	if cfg.Replacer.LibraryHost == "" {
		return fmt.Errorf("library host is required")
	}
	if cfg.Replacer.BaseDomain == "" {
		return fmt.Errorf("base domain is required")
	}
	return nil
}

// Helper function for simple environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
