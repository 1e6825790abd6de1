package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	DatabaseURL     string
	DatabaseName    string
	DatabaseTimeout time.Duration

	Collections Collections

	AllowedOrigins []string // CORS allowed origins
}

// Collections holds the collection name for each entity.
type Collections struct {
	Users         string
	Notifications string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("PORT", "8000"),
		AppEnv:  getEnv("APP_ENV", "development"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DatabaseName:    getEnv("DATABASE_NAME", ""),
		DatabaseTimeout: time.Duration(getEnvInt("DATABASE_TIMEOUT_SECONDS", 5)) * time.Second,
		Collections: Collections{
			Users:         getEnv("COLLECTION_USERS", "authuser"),
			Notifications: getEnv("COLLECTION_NOTIFICATIONS", "notification"),
		},
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
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
