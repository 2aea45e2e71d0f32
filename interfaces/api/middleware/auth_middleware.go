package middleware

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

// Protected validates the bearer token and binds the authenticated user
// into the request context. The secret comes from config at construction
// time, not from ambient process state.
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "No token provided")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "No token provided")
		}

		userCtx, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token validation failed", "error", err)
			return utils.UnauthorizedResponse(c, "Invalid token")
		}

		// ผูก identity ไว้ใน locals ให้ handlers ใช้ต่อ
		c.Locals("user", userCtx)

		return c.Next()
	}
}
