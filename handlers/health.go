package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/database"
	"github.com/sahilchouksey/pixel-portfolio/utils/response"
)

// HandleCheckHealth answers /ping once the store responds
func HandleCheckHealth(c *fiber.Ctx, store database.Storage) error {
	if err := store.HealthCheck(); err != nil {
		return response.Fail(c, fiber.StatusServiceUnavailable, "database unavailable")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
