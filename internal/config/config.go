package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/flowtrack/flowtrack-backend/internal/kv"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Storage
	StorageBackend kv.BackendType
	DataDir        string
	SQLitePath     string

	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Defaults
	DefaultCurrency string

	// Rate limiting
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		StorageBackend:     kv.BackendType(getEnv("STORAGE_BACKEND", string(kv.FileBackend))),
		DataDir:            getEnv("DATA_DIR", "./data"),
		SQLitePath:         getEnv("SQLITE_PATH", "./data/flowtrack.db"),
		Port:               getEnv("PORT", "8080"),
		CORSOrigins:        strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		Env:                getEnv("ENV", "development"),
		DefaultCurrency:    getEnv("DEFAULT_CURRENCY", domain.DefaultCurrencyCode),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 300),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 30),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if !c.StorageBackend.Valid() {
		return fmt.Errorf("STORAGE_BACKEND must be one of: file, sqlite, memory")
	}
	if _, ok := domain.LookupCurrency(c.DefaultCurrency); !ok {
		return fmt.Errorf("DEFAULT_CURRENCY %q is not a known currency code", c.DefaultCurrency)
	}
	if c.RateLimitPerMinute <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit settings must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
