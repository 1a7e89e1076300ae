package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the configuration against the requirements of the
// current environment. Development and test run with defaults; production
// refuses to start without the values it cannot invent.
func ValidateConfig(cfg *Config) error {
	var errors []string

	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		errors = append(errors, fmt.Sprintf("unsupported DB_DRIVER %q (postgres or sqlite)", cfg.DBDriver))
	}

	if IsProduction() {
		if cfg.GeminiAPIKey == "" {
			errors = append(errors, "GEMINI_API_KEY (or GEMINI_API_KEY_FILE) is required in production")
		}
		if cfg.DBDriver == "postgres" && cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD is required in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
