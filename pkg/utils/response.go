package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ========== Response Structures ==========

// MessageBody สำหรับ acknowledgment responses
type MessageBody struct {
	Message string `json:"message"`
}

// ServerErrorBody ใช้กับ 5xx เท่านั้น (client errors ใช้ MessageBody)
type ServerErrorBody struct {
	Error string `json:"error"`
}

type ValidationErrorBody struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func MessageResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(MessageBody{Message: message})
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(MessageBody{Message: message})
}

func ValidationErrorResponse(c *fiber.Ctx, details any) error {
	return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorBody{
		Message: "Validation failed",
		Details: details,
	})
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message)
}

func UnauthorizedResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponse(c, fiber.StatusUnauthorized, message)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(c, fiber.StatusNotFound, message)
}

func ConflictResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusConflict, message)
}

// ServerErrorResponse ส่ง generic message เท่านั้น ไม่ leak รายละเอียดภายใน
func ServerErrorResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ServerErrorBody{Error: message})
}
