package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Scheduling backend API
	APIBaseURL string
	APITimeout time.Duration

	// Admin gate. The product ships with a fixed literal password; this is a
	// functional placeholder, not a security mechanism.
	AdminPassword string

	// Receipt link settings
	WhatsAppCountryCode string
	DefaultBookingNote  string

	// Session store
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool
	SessionTTL    time.Duration

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "3000"),
		Env:                 getEnv("ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		APIBaseURL:          getEnv("API_BASE_URL", "http://localhost:8080/api"),
		APITimeout:          getEnvAsDuration("API_TIMEOUT", 15*time.Second),
		AdminPassword:       getEnv("ADMIN_PASSWORD", "admin123"),
		WhatsAppCountryCode: getEnv("WHATSAPP_COUNTRY_CODE", "55"),
		DefaultBookingNote:  getEnv("DEFAULT_BOOKING_NOTE", "Agendado via App"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisTLS:            getEnvAsBool("REDIS_TLS", false),
		SessionTTL:          getEnvAsDuration("SESSION_TTL", 12*time.Hour),
		CORSAllowedOrigins:  getEnvAsList("CORS_ALLOWED_ORIGINS", nil),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
