// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all Status Service configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// Database (PostgreSQL). Optional: when empty the service reports
	// it as not configured and skips the connection entirely.
	DatabaseURL string `env:"DATABASE_URL"`

	// Cache (Redis). Optional, same presence semantics as DatabaseURL.
	RedisURL string `env:"REDIS_URL"`

	// Public base URL of this service (what the status page targets)
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Rate limiting for /api routes (per client IP)
	RateLimitEnabled bool    `env:"RATE_LIMIT_ENABLED" envDefault:"false"`
	RateLimitRPS     float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	RateLimitBurst   int     `env:"RATE_LIMIT_BURST" envDefault:"20"`

	// CORS configuration
	// Comma-separated list of allowed origins (e.g., "https://example.com,https://app.example.com")
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:""`
}

// PageConfig holds Status Page configuration.
type PageConfig struct {
	// Port the page server listens on
	PagePort int `env:"PAGE_PORT" envDefault:"3000"`

	// Base URL of the Status Service the page polls
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"PAGE_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"PAGE_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"PAGE_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// DatabaseConfigured reports whether a database connection string is set.
// Presence only: the value is never dialed to answer this.
func (c *Config) DatabaseConfigured() bool {
	return c.DatabaseURL != ""
}

// RedisConfigured reports whether a cache connection string is set.
func (c *Config) RedisConfigured() bool {
	return c.RedisURL != ""
}

// GetCORSAllowedOrigins parses the comma-separated origins string into a slice.
func (c *Config) GetCORSAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}

	origins := strings.Split(c.CORSAllowedOrigins, ",")
	result := make([]string, 0, len(origins))

	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// LoadDotenv loads a .env file into the process environment if one
// exists. Best-effort helper for local development; a missing file is
// not an error.
func LoadDotenv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		_ = godotenv.Load(path)
	}
}

// Load parses environment variables and returns a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// LoadPage parses environment variables and returns a PageConfig.
func LoadPage() (*PageConfig, error) {
	cfg := &PageConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse page config: %w", err)
	}
	return cfg, nil
}
