package handler

import (
	"errors"

	autherror "github.com/Simohamed05/VENTESPRO/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// respondError translates service errors into the JSON error body at the
// boundary. Anything outside the taxonomy is a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, autherror.ErrMissingEmailOrPassword),
		errors.Is(err, autherror.ErrMissingDemoFields):
		status, message = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, autherror.ErrEmailAlreadyUsed):
		status, message = fiber.StatusConflict, err.Error()
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrNoToken),
		errors.Is(err, autherror.ErrInvalidToken),
		errors.Is(err, autherror.ErrInvalidAdminKey):
		status, message = fiber.StatusUnauthorized, err.Error()
	}

	return c.Status(status).JSON(fiber.Map{"message": message})
}
