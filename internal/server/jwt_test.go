package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaneda/talentboard/internal/config"
)

func testJWTService(hours int) *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: hours})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := testJWTService(1)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_EmptyToken(t *testing.T) {
	svc := testJWTService(1)

	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := testJWTService(1).GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different-secret", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Negative expiration backdates the token.
	token, err := testJWTService(-1).GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = testJWTService(1).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_NilUserID(t *testing.T) {
	svc := testJWTService(1)

	token, err := svc.GenerateToken(uuid.Nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err, "token without a user ID should be rejected")
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc := testJWTService(1)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
