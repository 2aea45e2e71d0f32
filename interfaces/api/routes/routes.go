package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	SetupHealthRoutes(app)
	SetupAuthRoutes(app, h, jwtSecret)
	SetupTaskRoutes(app, h, jwtSecret)
}
