package handlers

import (
	"github.com/gofiber/fiber/v2"

	"skill-garden/middleware"
	"skill-garden/services"
)

type CreateResourceRequest struct {
	Title       string   `json:"title" form:"title" validate:"required,min=2"`
	Description string   `json:"description" form:"description"`
	Category    string   `json:"category" form:"category" validate:"required,oneof=notes books equipment"`
	Author      string   `json:"author" form:"author"`
	Tags        []string `json:"tags" form:"tags"`
	Link        string   `json:"link" form:"link"`
}

func SetupResourceRoutes(app *fiber.App, resources *services.ResourceService, jwtSecret string) {
	group := app.Group("/api/resources")

	group.Post("/", middleware.RequireAuth(jwtSecret), func(c *fiber.Ctx) error {
		var req CreateResourceRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return validationError(c, err)
		}

		// Optional attachment; uploads only work with object storage
		// configured.
		file, _ := c.FormFile("file")

		resource, err := resources.CreateResource(services.CreateResourceInput{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Author:      req.Author,
			Tags:        req.Tags,
			Link:        req.Link,
		}, file)
		if err != nil {
			return serverError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true, "resource": resource,
		})
	})

	group.Get("/", func(c *fiber.Ctx) error {
		list, err := resources.ListResources(c.Query("category"))
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "resources": list})
	})
}
