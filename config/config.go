package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string
	WebPort    string

	// Base URL of the analysis API, used by the web UI client
	APIBaseURL string

	// Database configuration
	DBDriver   string // "postgres" or "sqlite"
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string // sqlite file, ":memory:" allowed

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Gemini configuration
	GeminiAPIKey string
	GeminiModel  string
	GeminiAPIURL string

	// S3 archival
	S3Bucket  string
	AWSRegion string
}

// LoadConfig creates a new Config instance from the environment. A local
// config.env (the historical name) or .env file is folded in first when
// present; explicit environment variables always win.
func LoadConfig() (*Config, error) {
	for _, f := range []string{"config.env", ".env"} {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8000"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),
		WebPort:    getEnv("WEB_PORT", "3000"),
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8000"),

		DBDriver:  getEnv("DB_DRIVER", "postgres"),
		DBHost:    getEnv("DB_HOST", "localhost"),
		DBPort:    getEnv("DB_PORT", "5432"),
		DBUser:    getEnv("DB_USER", "postgres"),
		DBName:    getEnv("DB_NAME", "ecomeal"),
		DBSSLMode: getEnv("DB_SSL_MODE", "disable"),
		DBPath:    getEnv("DB_PATH", "ecomeal.db"),

		RedisHost: getEnv("REDIS_HOST", "localhost"),
		RedisPort: getEnv("REDIS_PORT", "6379"),
		RedisURL:  os.Getenv("REDIS_URL"),

		GeminiModel: getEnv("GEMINI_MODEL", "gemini-pro"),
		GeminiAPIURL: getEnv("GEMINI_API_URL",
			"https://generativelanguage.googleapis.com/v1beta"),

		S3Bucket:  getEnv("S3_BUCKET_NAME", "ecomeal-archives"),
		AWSRegion: os.Getenv("AWS_REGION"),
	}

	var err error
	if cfg.DBPassword, err = getSecret("DB_PASSWORD", "db_password"); err != nil {
		return nil, err
	}
	if cfg.RedisPassword, err = getSecret("REDIS_PASSWORD", "redis_password"); err != nil {
		return nil, err
	}
	if cfg.GeminiAPIKey, err = getSecret("GEMINI_API_KEY", "gemini_api_key"); err != nil {
		return nil, err
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			cfg.RedisDB = db
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getEnv returns the environment variable or a default when unset.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getSecret resolves a sensitive value: the environment variable directly,
// then a <KEY>_FILE pointer, then a Docker secret file.
func getSecret(envVar, secretName string) (string, error) {
	if value := os.Getenv(envVar); value != "" {
		return value, nil
	}

	if file := os.Getenv(envVar + "_FILE"); file != "" {
		content, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s_FILE: %w", envVar, err)
		}
		return strings.TrimSpace(string(content)), nil
	}

	return readSecret(secretName), nil
}
