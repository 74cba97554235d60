package config

import (
	"fmt"
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

// ValidateConfig checks that the configuration meets the requirements for the
// current environment. Development and test run without upstream credentials;
// production refuses to start half-configured.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.ServerPort == "" {
		errors = append(errors, "SERVER_PORT must not be empty")
	}

	if IsProduction() {
		if cfg.JWTSecret == "" {
			errors = append(errors, "JWT_SECRET is required in production")
		}
		if cfg.GeminiAPIKey == "" {
			errors = append(errors, "GEMINI_API_KEY is required in production")
		}
		if cfg.VoiceWebhookSecret == "" {
			errors = append(errors, "VOICE_WEBHOOK_SECRET is required in production")
		}
		if cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD is required in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}
