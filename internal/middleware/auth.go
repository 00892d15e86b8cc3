package middleware

import (
	"swapsociety-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const userLocal = "user"

// RequireAuth ensures a user is in the session. Unauthenticated requests get
// 401 in the standard error format — the API-side equivalent of the
// frontend's redirect-to-login guard.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals(userLocal)
		if user == nil {
			return response.Unauthorized(c, "Unauthorized")
		}
		c.Locals("auth", user)
		return c.Next()
	}
}

// GetUser returns the session user from Locals (nil if not logged in).
func GetUser(c *fiber.Ctx) interface{} {
	return c.Locals(userLocal)
}

// GetUserID returns the session user's subject id, or "" when logged out.
func GetUserID(c *fiber.Ctx) string {
	m, ok := GetUser(c).(map[string]interface{})
	if !ok {
		return ""
	}
	id, _ := m["user_id"].(string)
	return id
}
