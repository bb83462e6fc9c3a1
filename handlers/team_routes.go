package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skill-garden/middleware"
	"skill-garden/services"
)

type CreateTeamRequest struct {
	Name        string   `json:"name" validate:"required,min=2"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Needs       int      `json:"needs" validate:"min=0"`
}

func SetupTeamRoutes(app *fiber.App, teams *services.TeamService, jwtSecret string) {
	group := app.Group("/api/teams")
	requireAuth := middleware.RequireAuth(jwtSecret)

	group.Post("/", requireAuth, func(c *fiber.Ctx) error {
		var req CreateTeamRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid JSON body")
		}
		if err := validate.Struct(req); err != nil {
			return validationError(c, err)
		}

		team, err := teams.CreateTeam(middleware.UserID(c), services.CreateTeamInput{
			Name:        req.Name,
			Description: req.Description,
			Tags:        req.Tags,
			Needs:       req.Needs,
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"success": false, "message": "User not found for token",
				})
			}
			return serverError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true, "team": team,
		})
	})

	group.Get("/", func(c *fiber.Ctx) error {
		list, err := teams.ListTeams(c.Query("status"))
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "teams": list})
	})

	group.Get("/:id", func(c *fiber.Ctx) error {
		team, err := teams.GetTeam(c.Params("id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound(c, "Team not found")
			}
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{
			"success": true,
			"team": fiber.Map{
				"id":          team.ID,
				"name":        team.Name,
				"slug":        team.Slug,
				"description": team.Description,
				"tags":        team.Tags,
				"needs":       team.Needs,
				"status":      team.Status,
				"members":     team.MemberSummaries(),
			},
		})
	})

	group.Post("/:id/join", requireAuth, func(c *fiber.Ctx) error {
		team, err := teams.JoinTeam(c.Params("id"), middleware.UserID(c))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAlreadyMember):
				return badRequest(c, "Already a member")
			case errors.Is(err, gorm.ErrRecordNotFound):
				return notFound(c, "Team not found")
			default:
				return serverError(c, err)
			}
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Joined " + team.Name,
			"team":    team,
		})
	})
}
