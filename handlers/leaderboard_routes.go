package handlers

import (
	"github.com/gofiber/fiber/v2"

	"skill-garden/services"
)

func SetupLeaderboardRoutes(app *fiber.App, leaderboard *services.LeaderboardService) {
	group := app.Group("/api/leaderboard")

	group.Get("/weekly", func(c *fiber.Ctx) error {
		entries, err := leaderboard.Weekly(c.QueryInt("limit", 50))
		if err != nil {
			return serverError(c, err)
		}
		if entries == nil {
			entries = []services.LeaderboardEntry{}
		}
		return c.JSON(fiber.Map{"success": true, "leaderboard": entries})
	})
}
