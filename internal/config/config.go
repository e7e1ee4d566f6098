// Package config loads application settings from environment variables,
// folding in a .env file when one exists for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config is the full runtime configuration, grouped by concern.
type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Search   SearchConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// ProviderConfig holds the provider selection and per-provider credentials.
// Selection and credential checks happen in the provider factory; this
// struct only carries what the environment said.
type ProviderConfig struct {
	Name                string `env:"PROVIDER" envDefault:"mock"`
	KiwiAPIKey          string `env:"KIWI_API_KEY"`
	KiwiBaseURL         string `env:"KIWI_BASE_URL"`
	AmadeusClientID     string `env:"AMADEUS_CLIENT_ID"`
	AmadeusClientSecret string `env:"AMADEUS_CLIENT_SECRET"`
	AmadeusBaseURL      string `env:"AMADEUS_BASE_URL"`
	SkyscannerAPIKey    string `env:"SKYSCANNER_API_KEY"`
	MockDataPath        string `env:"MOCK_DATA_PATH"`
}

// SearchConfig holds the route and currency defaults applied when a caller
// does not specify them.
type SearchConfig struct {
	Currency    string `env:"DEFAULT_CURRENCY" envDefault:"NOK"`
	Origin      string `env:"DEFAULT_ORIGIN" envDefault:"OSL"`
	Destination string `env:"DEFAULT_DESTINATION" envDefault:"PER"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig identifies the runtime environment.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present; a missing file is not
// an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, reading configuration from the process environment")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad is Load for main(): any configuration error is fatal.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness. The provider name
// is deliberately not validated here: an unknown or unusable provider is
// resolved by the factory's mock fallback, not by refusing to start.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	// Validate search defaults
	if len(cfg.Search.Currency) != 3 {
		return fmt.Errorf("DEFAULT_CURRENCY must be a 3-letter code, got %q", cfg.Search.Currency)
	}
	if cfg.Search.Origin == "" {
		return fmt.Errorf("DEFAULT_ORIGIN must not be empty")
	}
	if cfg.Search.Destination == "" {
		return fmt.Errorf("DEFAULT_DESTINATION must not be empty")
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	switch cfg.App.Env {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
