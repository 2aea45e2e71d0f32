package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/models"
)

// TaskRepository is owner-scoped: every read, update, and delete filters by
// both task ID and user ID. There is no lookup by task ID alone.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	GetByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	DeleteByIDAndUserID(ctx context.Context, id, userID uuid.UUID) error
}
