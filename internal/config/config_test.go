package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProdConfig() *Config {
	return &Config{
		JWTSecret:      "a-long-random-secret-with-enough-entropy-123",
		Port:           "5000",
		DBPassword:     "s3cure-db-pass",
		DBSSLMode:      "require",
		AllowedOrigins: "https://gymhum.example.com",
		Env:            "production",
	}
}

func TestValidateProduction(t *testing.T) {
	require.NoError(t, validProdConfig().Validate())

	cfg := validProdConfig()
	cfg.JWTSecret = "your-secret-key-change-in-production"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default value")

	cfg = validProdConfig()
	cfg.JWTSecret = "too-short"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")

	cfg = validProdConfig()
	cfg.DBPassword = "password"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestValidateRequiredFields(t *testing.T) {
	cfg := &Config{JWTSecret: "secret", Env: "development"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")

	cfg = &Config{Port: "5000", Env: "development"}
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidateDevelopmentIsLenient(t *testing.T) {
	// Short secret and default password only warn outside production.
	cfg := &Config{
		JWTSecret:  "dev-secret",
		Port:       "5000",
		DBPassword: "password",
		Env:        "development",
	}
	assert.NoError(t, cfg.Validate())
}
