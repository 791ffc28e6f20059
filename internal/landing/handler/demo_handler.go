package handler

import (
	"github.com/Simohamed05/VENTESPRO/internal/landing/dto"
	"github.com/Simohamed05/VENTESPRO/internal/landing/service"
	"github.com/gofiber/fiber/v2"
)

type DemoHandler struct {
	demoService *service.DemoService
}

func NewDemoHandler(demoService *service.DemoService) *DemoHandler {
	return &DemoHandler{demoService: demoService}
}

func (h *DemoHandler) Submit(c *fiber.Ctx) error {
	var input dto.DemoInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}

	if err := input.Validate(); err != nil {
		return respondError(c, err)
	}

	if err := h.demoService.Submit(c.Context(), input); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}
