package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/talentboard")
	t.Setenv("PORT", "")
	t.Setenv("SCORE_CONCURRENCY", "")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres://localhost/talentboard", cfg.DatabaseURL)
	assert.Zero(t, cfg.ScoreConcurrency)
}

func TestNewServerConfig_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/talentboard")
	t.Setenv("PORT", "9090")
	t.Setenv("SCORE_CONCURRENCY", "4")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 4, cfg.ScoreConcurrency)
}

func TestNewServerConfig_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := NewServerConfig()
	assert.Error(t, err)
}

func TestNewServerConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "PORT", "abc"},
		{"port out of range", "PORT", "70000"},
		{"zero port", "PORT", "0"},
		{"non-numeric concurrency", "SCORE_CONCURRENCY", "many"},
		{"negative concurrency", "SCORE_CONCURRENCY", "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "postgres://localhost/talentboard")
			t.Setenv("PORT", "")
			t.Setenv("SCORE_CONCURRENCY", "")
			t.Setenv(tt.key, tt.value)

			_, err := NewServerConfig()
			assert.Error(t, err)
		})
	}
}

func TestNewJWTConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("JWT_EXPIRATION_HOURS", "")

		cfg, err := NewJWTConfig()
		require.NoError(t, err)
		assert.Equal(t, "s3cret", cfg.Secret)
		assert.Equal(t, 24, cfg.ExpirationHours)
	})

	t.Run("explicit expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("JWT_EXPIRATION_HOURS", "72")

		cfg, err := NewJWTConfig()
		require.NoError(t, err)
		assert.Equal(t, 72, cfg.ExpirationHours)
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("invalid expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("JWT_EXPIRATION_HOURS", "soon")

		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("non-positive expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("JWT_EXPIRATION_HOURS", "0")

		_, err := NewJWTConfig()
		assert.Error(t, err)
	})
}
