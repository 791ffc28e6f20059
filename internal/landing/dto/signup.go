package dto

import (
	autherror "github.com/Simohamed05/VENTESPRO/internal/errors"
)

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in SignupInput) Validate() error {
	if in.Email == "" || in.Password == "" {
		return autherror.ErrMissingEmailOrPassword
	}
	return nil
}
