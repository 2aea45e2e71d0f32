package middleware

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

// ErrorHandler catches anything a handler lets escape and maps it to a JSON
// body without leaking internal detail.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error", "error", err, "path", c.Path())

		if code >= fiber.StatusInternalServerError {
			return utils.ServerErrorResponse(c, "Internal server error")
		}
		return utils.ErrorResponse(c, code, message)
	}
}
