package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	task := &models.Task{
		ID:        uuid.New(),
		Text:      req.Text,
		Status:    req.Status,
		Priority:  req.Priority,
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if task.Status == "" {
		task.Status = "pending"
	}
	if task.Priority == "" {
		task.Priority = "normal"
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created successfully", "task_id", task.ID, "user_id", userID)

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByIDAndUserID(ctx, taskID, userID)
	if err != nil {
		return nil, services.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskServiceImpl) GetUserTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	tasks, err := s.taskRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get user tasks", "user_id", userID, "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, userID, taskID uuid.UUID, status string) (*models.Task, error) {
	task, err := s.taskRepo.GetByIDAndUserID(ctx, taskID, userID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for status update", "task_id", taskID, "user_id", userID)
		return nil, services.ErrTaskNotFound
	}

	task.Status = status
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task status", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task status updated", "task_id", taskID, "status", status)

	return task, nil
}

func (s *TaskServiceImpl) UpdatePriority(ctx context.Context, userID, taskID uuid.UUID, priority string) (*models.Task, error) {
	task, err := s.taskRepo.GetByIDAndUserID(ctx, taskID, userID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for priority update", "task_id", taskID, "user_id", userID)
		return nil, services.ErrTaskNotFound
	}

	task.Priority = priority
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task priority", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task priority updated", "task_id", taskID, "priority", priority)

	return task, nil
}

// DeleteTask ลบได้มากสุดหนึ่งแถว ไม่แยกกรณี "ไม่มีอยู่แล้ว" ออกจาก "ลบสำเร็จ"
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	if err := s.taskRepo.DeleteByIDAndUserID(ctx, taskID, userID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", userID)
	return nil
}
