package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", ":memory:")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-pro")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-pro", cfg.GeminiModel)
	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	for _, v := range []string{
		"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_NAME", "SERVER_PORT",
		"WEB_PORT", "API_BASE_URL", "GEMINI_MODEL", "S3_BUCKET_NAME",
	} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "ecomeal", cfg.DBName)
	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, "3000", cfg.WebPort)
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, "gemini-pro", cfg.GeminiModel)
	assert.Equal(t, "ecomeal-archives", cfg.S3Bucket)
}

func TestValidateConfigRejectsUnknownDriver(t *testing.T) {
	err := ValidateConfig(&Config{DBDriver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestGeminiKeyFromFile(t *testing.T) {
	keyFile := t.TempDir() + "/key"
	require.NoError(t, os.WriteFile(keyFile, []byte("  file-key \n"), 0o600))

	t.Setenv("GEMINI_API_KEY", "")
	os.Unsetenv("GEMINI_API_KEY")
	t.Setenv("GEMINI_API_KEY_FILE", keyFile)
	t.Setenv("DB_DRIVER", "sqlite")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.GeminiAPIKey)
}
