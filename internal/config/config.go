package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/tair/favorites-api/pkg/database"
)

// Config holds the service configuration, loaded from the environment.
type Config struct {
	Port        string
	Environment string
	LogLevel    string

	Database database.Config

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// KafkaBrokers empty disables event publishing.
	KafkaBrokers []string

	CatalogBaseURL string
}

// Load reads the configuration from environment variables with defaults
// suitable for local development.
func Load() *Config {
	return &Config{
		Port:        getEnv("HTTP_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "favoritesdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		KafkaBrokers:   splitList(getEnv("KAFKA_BROKERS", "")),
		CatalogBaseURL: getEnv("CATALOG_BASE_URL", "http://challenge-api.luizalabs.com"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
