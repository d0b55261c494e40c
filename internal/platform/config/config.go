package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	Environment    string
	DatabaseURL    string
	SessionSecret  string
	SessionTTL     time.Duration
	LogLevel       string
	RunMigrations  bool
	RunSeed        bool
	MetricsEnabled bool
	ReportsDir     string
}

// Load reads configuration from the environment, after sourcing an optional
// .env file. An empty DATABASE_URL selects the in-memory gateway.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		Environment:    getEnv("APP_ENV", "development"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		SessionSecret:  getEnv("SESSION_SECRET", "nexhr-dev-secret"),
		SessionTTL:     getEnvDuration("SESSION_TTL", 12*time.Hour),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RunMigrations:  getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:        getEnvBool("RUN_SEED", true),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		ReportsDir:     getEnv("REPORTS_DIR", "storage/reports"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if c.Environment == "production" {
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required in production")
		}
		if c.SessionSecret == "nexhr-dev-secret" {
			return fmt.Errorf("SESSION_SECRET must be changed in production")
		}
	}
	if c.SessionTTL < time.Minute {
		return fmt.Errorf("SESSION_TTL must be at least one minute")
	}
	return nil
}
