package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port               string
	Env                string
	JWTSecret          string
	JWTExpiry          time.Duration
	DefaultLength      int
	MinLength          int
	MaxLength          int
	RateLimitPerMinute int
}

// Load reads configuration from environment variables, applying defaults
// for anything unset, and validates that the password length policy is
// coherent.
func Load() (Config, error) {
	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		JWTSecret:          getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:          24 * time.Hour,
		DefaultLength:      getEnvInt("DEFAULT_LENGTH", 16),
		MinLength:          getEnvInt("MIN_LENGTH", 8),
		MaxLength:          getEnvInt("MAX_LENGTH", 64),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 10),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.MinLength <= 0 {
		return fmt.Errorf("MIN_LENGTH must be greater than 0, got %d", c.MinLength)
	}
	if c.MaxLength < c.MinLength {
		return fmt.Errorf("MAX_LENGTH (%d) must be >= MIN_LENGTH (%d)", c.MaxLength, c.MinLength)
	}
	if c.DefaultLength < c.MinLength || c.DefaultLength > c.MaxLength {
		return fmt.Errorf("DEFAULT_LENGTH (%d) must be between %d and %d", c.DefaultLength, c.MinLength, c.MaxLength)
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be greater than 0, got %d", c.RateLimitPerMinute)
	}
	if c.Env == "production" && c.JWTSecret == devJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production environment")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
