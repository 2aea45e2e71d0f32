package handlers

import (
	"taskboard/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService services.UserService
	TaskService services.TaskService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	UserHandler *UserHandler
	TaskHandler *TaskHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		UserHandler: NewUserHandler(services.UserService),
		TaskHandler: NewTaskHandler(services.TaskService),
	}
}
