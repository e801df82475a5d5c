package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries process-level settings. None of these alter the HTTP
// contract: rate limiting stays off unless RATE_LIMIT_RPS is set, so the
// oracle's responses are deterministic by default.
type Config struct {
	Port           string
	GinMode        string  // gin release/debug/test mode
	LogLevel       string  // logrus level name
	RateLimitRPS   float64 // requests per second per client; <= 0 disables limiting
	RateLimitBurst int     // burst size when limiting is enabled
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
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
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
