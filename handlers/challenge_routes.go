package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skill-garden/middleware"
	"skill-garden/services"
)

type SubmitRequest struct {
	Solution string `json:"solution" validate:"required"`
}

func SetupChallengeRoutes(app *fiber.App, challenges *services.ChallengeService, jwtSecret string) {
	group := app.Group("/api/challenges")

	group.Get("/", func(c *fiber.Ctx) error {
		list, err := challenges.ListChallenges(c.Query("type"))
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "challenges": list})
	})

	group.Get("/daily", func(c *fiber.Ctx) error {
		ch, err := challenges.DailyChallenge(time.Now())
		if err != nil {
			if errors.Is(err, services.ErrNoChallenges) {
				return notFound(c, "No challenges available")
			}
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "challenge": ch})
	})

	group.Post("/:id/submit", middleware.RequireAuth(jwtSecret), func(c *fiber.Ctx) error {
		var req SubmitRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid JSON body")
		}
		if err := validate.Struct(req); err != nil {
			return validationError(c, err)
		}

		result, err := challenges.Submit(c.Params("id"), middleware.UserID(c), req.Solution, time.Now())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound(c, "Challenge not found")
			}
			return serverError(c, err)
		}

		if !result.Accepted {
			return c.JSON(fiber.Map{
				"success":  false,
				"accepted": false,
				"message":  "Solution rejected",
			})
		}
		return c.JSON(fiber.Map{
			"success":  true,
			"accepted": true,
			"award":    result.Award,
		})
	})
}
