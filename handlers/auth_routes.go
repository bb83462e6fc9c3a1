package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"skill-garden/services"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func SetupAuthRoutes(app *fiber.App, auth *services.AuthService) {
	group := app.Group("/api/auth")

	group.Post("/register", func(c *fiber.Ctx) error {
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid JSON body")
		}
		if err := validate.Struct(req); err != nil {
			return validationError(c, err)
		}

		user, token, err := auth.Register(req.Name, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"success": false, "message": "Email already in use",
				})
			}
			return serverError(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"token":   token,
			"user":    user.Public(),
		})
	})

	group.Post("/login", func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid JSON body")
		}
		if err := validate.Struct(req); err != nil {
			return validationError(c, err)
		}

		user, token, err := auth.Login(req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"success": false, "message": "Invalid credentials",
				})
			}
			return serverError(c, err)
		}

		return c.JSON(fiber.Map{
			"success": true,
			"token":   token,
			"user":    user.Public(),
		})
	})
}
