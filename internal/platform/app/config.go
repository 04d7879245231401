package app

import (
	"os"
	"strconv"
	"time"

	"github.com/peakprep/platform/pkg/jwtx"
)

type Config struct {
	Issuer  string // Issuer claim for access tokens
	BaseURL string // Public origin used in invite links

	DatabaseFile string // Path to SQLite database file (default: ./platform.db)
	RedisAddr    string // Optional: when set, rate counters live in Redis instead of SQLite

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)

	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired invite / closed window sweep interval (default: 1h)

	TokenTTL time.Duration // Access token lifetime (default: 12h)

	AIRateMax    int           // AI requests allowed per user per window (default: 10)
	AIRateWindow time.Duration // AI budget window (default: 1h)

	LeadRateMax    int           // Lead submissions allowed per address per window (default: 5)
	LeadRateWindow time.Duration // Lead budget window (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:               getEnvOrDefault("PLATFORM_ISSUER", "peakprep-platform"),
		BaseURL:              getEnvOrDefault("PLATFORM_BASE_URL", "http://localhost:8080"),
		DatabaseFile:         getEnvOrDefault("PLATFORM_DATABASE_FILE", "platform.db"),
		RedisAddr:            os.Getenv("PLATFORM_REDIS_ADDR"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		TokenTTL:             getEnvDurationOrDefault("PLATFORM_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		AIRateMax:            getEnvIntOrDefault("PLATFORM_AI_RATE_MAX", 10),
		AIRateWindow:         getEnvDurationOrDefault("PLATFORM_AI_RATE_WINDOW", time.Hour),
		LeadRateMax:          getEnvIntOrDefault("PLATFORM_LEAD_RATE_MAX", 5),
		LeadRateWindow:       getEnvDurationOrDefault("PLATFORM_LEAD_RATE_WINDOW", time.Hour),
	}

	return cfg
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
