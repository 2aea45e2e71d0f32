package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
	"taskboard/interfaces/api/middleware"
)

func SetupAuthRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	// register/login ไม่ผ่าน auth gateway
	app.Post("/register", h.UserHandler.Register)
	app.Post("/login", h.UserHandler.Login)

	app.Get("/me", middleware.Protected(jwtSecret), h.UserHandler.GetProfile)
}
