package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, auth *AuthHandler, demo *DemoHandler, admin *AdminHandler, adminKey string) {
	app.Post("/api/signup", auth.Signup)
	app.Post("/api/login", auth.Login)
	app.Get("/api/me", auth.Me)
	app.Post("/api/demo", demo.Submit)

	// Operator-only, gated by the shared key
	ops := app.Group("/api/admin", AdminKey(adminKey))
	ops.Get("/stats", admin.Stats)
	ops.Get("/users", admin.ListUsers)
	ops.Get("/demos", admin.ListDemos)
	ops.Get("/logins", admin.ListLogins)
}
