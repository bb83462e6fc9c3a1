package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"skill-garden/services"
)

// SetupDebugRoutes mounts development-only endpoints. main.go skips this
// in production.
func SetupDebugRoutes(app *fiber.App, seed *services.SeedService) {
	group := app.Group("/api/debug")

	// POST /api/debug/seed?force=1
	group.Post("/seed", func(c *fiber.Ctx) error {
		force := c.Query("force") == "1" || c.Query("force") == "true"

		users, err := seed.Seed(force)
		if err != nil {
			if errors.Is(err, services.ErrSeedWouldClobber) {
				return badRequest(c, "Database already contains users. Use ?force=1 to reseed.")
			}
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Seed complete",
			"users":   users,
		})
	})
}
