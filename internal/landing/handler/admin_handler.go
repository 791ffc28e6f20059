package handler

import (
	autherror "github.com/Simohamed05/VENTESPRO/internal/errors"
	"github.com/Simohamed05/VENTESPRO/internal/landing/service"
	"github.com/gofiber/fiber/v2"
)

// AdminKeyHeader carries the shared operator secret.
const AdminKeyHeader = "x-admin-key"

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// AdminKey gates the operator endpoints on an exact match of the shared
// secret header. It runs before any query does.
func AdminKey(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(AdminKeyHeader)
		if key == "" || key != secret {
			return respondError(c, autherror.ErrInvalidAdminKey)
		}
		return c.Next()
	}
}

func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.adminService.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	rows, err := h.adminService.ListUsers(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(rows)
}

func (h *AdminHandler) ListDemos(c *fiber.Ctx) error {
	rows, err := h.adminService.ListDemoRequests(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(rows)
}

func (h *AdminHandler) ListLogins(c *fiber.Ctx) error {
	rows, err := h.adminService.ListLoginAttempts(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(rows)
}
