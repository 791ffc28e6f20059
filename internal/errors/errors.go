package errors

import (
	"errors"
)

var (
	ErrMissingEmailOrPassword = errors.New("missing email/password")
	ErrMissingDemoFields      = errors.New("missing fields (name/email/business)")
	ErrEmailAlreadyUsed       = errors.New("email already used")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrNoToken                = errors.New("no token")
	ErrInvalidToken           = errors.New("invalid token")
	ErrInvalidAdminKey        = errors.New("unauthorized (admin key)")
)
