package middleware

import (
	"strings"

	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
)

func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid Authorization header"})
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	blacklisted, err := utils.IsTokenBlacklisted(tokenStr)
	if err == nil && blacklisted {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token has been revoked"})
	}

	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token", "detail": err.Error()})
	}

	c.Locals("userId", claims.UserID)
	c.Locals("email", claims.Email)
	c.Locals("role", claims.Role)
	c.Locals("refId", claims.RefID)

	return c.Next()
}

// RequireOwner allows admins, or the student whose profile ID matches.
func RequireOwner(c *fiber.Ctx, studentID string) bool {
	role, _ := c.Locals("role").(string)
	if role == "Admin" {
		return true
	}
	refID, _ := c.Locals("refId").(string)
	return refID == studentID
}

// RequireRole allows only the given roles.
func RequireRole(c *fiber.Ctx, roles ...string) bool {
	role, _ := c.Locals("role").(string)
	for _, r := range roles {
		if role == r {
			return true
		}
	}
	return false
}
