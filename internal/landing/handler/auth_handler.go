package handler

import (
	"strings"

	autherror "github.com/Simohamed05/VENTESPRO/internal/errors"
	"github.com/Simohamed05/VENTESPRO/internal/landing/dto"
	"github.com/Simohamed05/VENTESPRO/internal/landing/service"
	"github.com/gofiber/fiber/v2"
)

const bearerPrefix = "Bearer "

type AuthHandler struct {
	userService  *service.UserService
	tokenService service.TokenGenerator
}

func NewAuthHandler(userService *service.UserService, tokenService service.TokenGenerator) *AuthHandler {
	return &AuthHandler{userService: userService, tokenService: tokenService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}

	if err := input.Validate(); err != nil {
		return respondError(c, err)
	}

	if _, err := h.userService.Signup(c.Context(), input); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}

	if err := input.Validate(); err != nil {
		return respondError(c, err)
	}

	// Capture audit metadata
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	result, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok":    true,
		"token": result.Token,
		"user":  result.User,
	})
}

// Me returns the claims embedded in the bearer token verbatim; they may be
// stale relative to the stored user, no re-fetch happens here.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return respondError(c, autherror.ErrNoToken)
	}

	claims, err := h.tokenService.Verify(strings.TrimPrefix(header, bearerPrefix))
	if err != nil {
		return respondError(c, autherror.ErrInvalidToken)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok": true,
		"user": dto.UserOutput{
			ID:    claims.UserID,
			Name:  claims.Name,
			Email: claims.Email,
			Role:  claims.Role,
		},
	})
}
