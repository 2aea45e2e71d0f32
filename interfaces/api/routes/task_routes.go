package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
	"taskboard/interfaces/api/middleware"
)

func SetupTaskRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	tasks := app.Group("/tasks")
	tasks.Use(middleware.Protected(jwtSecret))
	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
	tasks.Patch("/:id/status", h.TaskHandler.UpdateStatus)
	tasks.Patch("/:id/priority", h.TaskHandler.UpdatePriority)
}
