package service

import (
	"testing"
	"time"

	"github.com/Simohamed05/VENTESPRO/internal/landing/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		expiryDays int
	}{
		{
			name:       "default seven day expiry",
			secret:     "signing-secret",
			expiryDays: 7,
		},
		{
			name:       "single day expiry",
			secret:     "other-secret",
			expiryDays: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.secret, tt.expiryDays)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.secret, ts.Secret)
			assert.Equal(t, time.Duration(tt.expiryDays)*24*time.Hour, ts.Expiry)
		})
	}
}

func TestTokenService_GenerateAndVerify(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 7)

	name := "Ana"
	user := &domain.User{
		ID:           "user-123",
		Name:         &name,
		Email:        "ana@x.com",
		PasswordHash: "never-embedded",
		Role:         "user",
	}

	beforeGenerate := time.Now()
	token, err := ts.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
	require.NotNil(t, claims.Name)
	assert.Equal(t, name, *claims.Name)

	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, beforeGenerate.Add(7*24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenService_Verify_ExpiredToken(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 7)

	claims := JWTCustomClaims{
		UserID: "user-123",
		Email:  "ana@x.com",
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	require.NoError(t, err)

	_, err = ts.Verify(expired)
	assert.Error(t, err)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 7)
	other := NewTokenService("a-different-secret", 7)

	token, err := other.Generate(&domain.User{ID: "user-123", Email: "ana@x.com", Role: "user"})
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.Error(t, err)
}

func TestTokenService_Verify_TamperedToken(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 7)

	token, err := ts.Generate(&domain.User{ID: "user-123", Email: "ana@x.com", Role: "user"})
	require.NoError(t, err)

	_, err = ts.Verify(token + "x")
	assert.Error(t, err)
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 7)

	_, err := ts.Verify("not-a-jwt")
	assert.Error(t, err)
}
