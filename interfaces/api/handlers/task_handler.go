package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	tasks, err := h.taskService.GetUserTasks(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to retrieve tasks", "user_id", user.ID, "error", err)
		return utils.ServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		validationErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", validationErrors)
		return utils.ValidationErrorResponse(c, validationErrors)
	}

	task, err := h.taskService.CreateTask(ctx, user.ID, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Task creation failed", "user_id", user.ID, "error", err)
		return utils.ServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.NotFoundResponse(c, "Task not found")
	}

	task, err := h.taskService.GetTask(ctx, user.ID, taskID)
	if err != nil {
		return utils.NotFoundResponse(c, "Task not found")
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.NotFoundResponse(c, "Task not found")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		validationErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", validationErrors)
		return utils.ValidationErrorResponse(c, validationErrors)
	}

	task, err := h.taskService.UpdateStatus(ctx, user.ID, taskID, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return utils.NotFoundResponse(c, "Task not found")
		}
		logger.ErrorContext(ctx, "Status update failed", "task_id", taskID, "error", err)
		return utils.ServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdatePriority(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.NotFoundResponse(c, "Task not found")
	}

	var req dto.UpdatePriorityRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		validationErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", validationErrors)
		return utils.ValidationErrorResponse(c, validationErrors)
	}

	task, err := h.taskService.UpdatePriority(ctx, user.ID, taskID, req.Priority)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return utils.NotFoundResponse(c, "Task not found")
		}
		logger.ErrorContext(ctx, "Priority update failed", "task_id", taskID, "error", err)
		return utils.ServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

// DeleteTask ตอบ success เสมอ ไม่ว่าจะมี task อยู่หรือไม่
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// invalid ID ก็ไม่มี task ให้ลบ - ack เหมือนกัน
		return utils.MessageResponse(c, "Task deleted")
	}

	if err := h.taskService.DeleteTask(ctx, user.ID, taskID); err != nil {
		logger.ErrorContext(ctx, "Task deletion failed", "task_id", taskID, "error", err)
		return utils.ServerErrorResponse(c, "")
	}

	return utils.MessageResponse(c, "Task deleted")
}
