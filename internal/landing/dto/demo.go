package dto

import (
	autherror "github.com/Simohamed05/VENTESPRO/internal/errors"
)

type DemoInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Business string `json:"business"`
	Message  string `json:"message"`
}

func (in DemoInput) Validate() error {
	if in.Name == "" || in.Email == "" || in.Business == "" {
		return autherror.ErrMissingDemoFields
	}
	return nil
}
