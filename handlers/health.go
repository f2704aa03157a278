package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resep-app/resep-api/database"
)

// HandleCheckHealth reports API and datastore liveness
func HandleCheckHealth(store database.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.HealthCheck(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"message": "Database unreachable",
				"error":   err.Error(),
			})
		}
		return c.JSON(fiber.Map{"message": "Server running smoothly!"})
	}
}
