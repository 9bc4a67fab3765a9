package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fintrack-backend-go/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "fintrack-test")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/tmp/sa.json")
	t.Setenv("CLIENT_URL", "http://localhost:3000")
	t.Setenv("LLM_API_URL", "https://api.openai.com/v1/chat/completions")
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")

	cfg, err := config.LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "fintrack-test", cfg.FirebaseProjectID)
	assert.Equal(t, "http://localhost:3000", cfg.ClientURL)
	// Unset model falls back to the default.
	assert.Equal(t, "gpt-4o-mini", cfg.LLMModel)
}

func TestLoadConfig_MissingProjectID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FIREBASE_PROJECT_ID", "")

	_, err := config.LoadConfig()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "FIREBASE_PROJECT_ID")
}

func TestLoadConfig_RequiresSomeCredentialSource(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64", "")

	_, err := config.LoadConfig()

	assert.Error(t, err)
}

func TestLoadConfig_Base64CredentialAlone(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64", "eyJmYWtlIjogdHJ1ZX0=")

	cfg, err := config.LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, "eyJmYWtlIjogdHJ1ZX0=", cfg.FirebaseServiceAccountJSONBase64)
}
