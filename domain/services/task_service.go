package services

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

// TaskService operations all take the owner ID bound by the auth middleware
// and never touch tasks owned by anyone else.
type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error)
	GetUserTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	UpdateStatus(ctx context.Context, userID, taskID uuid.UUID, status string) (*models.Task, error)
	UpdatePriority(ctx context.Context, userID, taskID uuid.UUID, priority string) (*models.Task, error)
	// DeleteTask succeeds whether or not a matching task existed.
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}
