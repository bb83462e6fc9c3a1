package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SecurityHeaders sets conservative browser-protection headers on every
// response.
func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "SAMEORIGIN")
		c.Set("Referrer-Policy", "no-referrer")
		return c.Next()
	}
}

// SanitizeRequestPath strips ASCII control characters (stray newlines,
// tabs) from the request path so they do not turn valid routes into 404s.
func SanitizeRequestPath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		cleaned := strings.Map(func(r rune) rune {
			if r < 0x20 || r == 0x7f {
				return -1
			}
			return r
		}, path)
		if cleaned != path {
			log.Printf("[SANITIZE] removed control characters from request path %q", path)
			c.Path(cleaned)
		}
		return c.Next()
	}
}
