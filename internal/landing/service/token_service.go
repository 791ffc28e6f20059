package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/Simohamed05/VENTESPRO/internal/landing/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/Simohamed05/VENTESPRO/internal/landing/domain"
	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Generate(user *domain.User) (string, error)
	Verify(tokenString string) (*JWTCustomClaims, error)
}

type TokenService struct {
	Secret string
	Expiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string  `json:"id"`
	Email  string  `json:"email"`
	Name   *string `json:"name"`
	Role   string  `json:"role"`
}

func NewTokenService(secret string, expiryDays int) *TokenService {
	return &TokenService{
		Secret: secret,
		Expiry: time.Duration(expiryDays) * 24 * time.Hour,
	}
}

// Generate signs a bearer token carrying the user's public identity claims.
func (ts *TokenService) Generate(user *domain.User) (string, error) {
	now := time.Now()

	claims := JWTCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// Verify parses and validates the given token string.
func (ts *TokenService) Verify(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
