package app

import (
	"os"
	"strconv"
	"time"

	"github.com/mrrinformatica/inventario/pkg/jwtx"
)

type Config struct {
	Issuer       string        // Issuer claim for session tokens (default: inventario)
	DatabaseFile string        // Path to SQLite database file (default: ./inventario.db)
	KeyFile      string        // Optional: path to PEM Ed25519 signing key; empty generates an ephemeral key
	SessionTTL   time.Duration // Session token lifetime (default: 12h)

	AdminUsername string // Username for the seeded first account (default: admin)
	AdminPassword string // Optional: password for the seeded first account; empty generates one

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:       getEnvOrDefault("INVENTARIO_ISSUER", "inventario"),
		DatabaseFile: getEnvOrDefault("INVENTARIO_DATABASE_FILE", "inventario.db"),
		KeyFile:      os.Getenv("INVENTARIO_KEY_FILE"), // Optional: ephemeral key when unset
		SessionTTL:   getEnvDurationOrDefault("INVENTARIO_SESSION_TTL", jwtx.DefaultSessionTTL),

		AdminUsername: getEnvOrDefault("INVENTARIO_ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("INVENTARIO_ADMIN_PASSWORD"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
