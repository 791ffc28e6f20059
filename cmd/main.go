package main

import (
	"context"
	"log"

	"github.com/Simohamed05/VENTESPRO/config"
	"github.com/Simohamed05/VENTESPRO/db"
	"github.com/Simohamed05/VENTESPRO/internal/landing/handler"
	repo "github.com/Simohamed05/VENTESPRO/internal/landing/repository/postgres"
	"github.com/Simohamed05/VENTESPRO/internal/landing/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()

	dbPool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer dbPool.Close()

	repository := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryDays)
	userService := service.NewUserService(repository, tokenService)
	demoService := service.NewDemoService(repository)
	adminService := service.NewAdminService(repository)

	authHandler := handler.NewAuthHandler(userService, tokenService)
	demoHandler := handler.NewDemoHandler(demoService)
	adminHandler := handler.NewAdminHandler(adminService)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Static("/", "./public")

	handler.RegisterRoutes(app, authHandler, demoHandler, adminHandler, cfg.AdminKey)

	log.Printf("Server running on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
