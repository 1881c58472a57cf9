package handlers

import (
	"vimo/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// Health reports liveness of the API and its backing stores.
func Health(c *fiber.Ctx) error {
	status := fiber.Map{"status": "ok"}

	if repositories.DB != nil {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			if err := sqlDB.Ping(); err != nil {
				status["status"] = "degraded"
				status["database"] = "unreachable"
			}
		}
	}
	if repositories.CacheService != nil {
		if err := repositories.CacheService.HealthCheck(c.Context()); err != nil {
			status["status"] = "degraded"
			status["cache"] = "unreachable"
		}
	}

	return c.JSON(status)
}
