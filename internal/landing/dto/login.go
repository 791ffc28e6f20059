package dto

import (
	autherror "github.com/Simohamed05/VENTESPRO/internal/errors"
)

type LoginInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

func (in LoginInput) Validate() error {
	if in.Email == "" || in.Password == "" {
		return autherror.ErrMissingEmailOrPassword
	}
	return nil
}

type LoginOutput struct {
	Token string     `json:"token"`
	User  UserOutput `json:"user"`
}
