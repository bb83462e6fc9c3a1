package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// validationError renders struct-tag validation failures in the
// {success:false, errors:[...]} shape the frontend expects.
func validationError(c *fiber.Ctx, err error) error {
	var details []fiber.Map
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range verrs {
			details = append(details, fiber.Map{
				"field":   e.Field(),
				"message": e.Field() + " failed on " + e.Tag(),
			})
		}
	} else {
		details = append(details, fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"errors":  details,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false, "message": message,
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false, "message": message,
	})
}

func serverError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false, "message": err.Error(),
	})
}
