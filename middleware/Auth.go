package middleware

import (
	"planboard/util"

	"github.com/gofiber/fiber/v2"
)

// AccessTokenRequired guards routes that need an authenticated user. On
// success the user's ID lands in c.Locals("user_id").
func AccessTokenRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}

		userID, err := util.ExtractUserIDFromToken(authHeader)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
