package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS returns the fiber cors middleware for the allow-listed origins with
// credentials enabled.
func CORS(origins []string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowCredentials: true,
	})
}

// OriginGuard rejects requests whose Origin header is not allow-listed before
// they reach any handler. Requests without an Origin are let through unless
// requireOrigin is set.
func OriginGuard(origins []string, requireOrigin bool) fiber.Handler {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[strings.TrimRight(o, "/")] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" && !requireOrigin {
			return c.Next()
		}
		if _, ok := allowed[origin]; ok {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Not allowed by CORS.",
		})
	}
}
