package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Text     string `json:"text" validate:"required,min=1,max=1000"`
	Status   string `json:"status" validate:"omitempty,max=50"`
	Priority string `json:"priority" validate:"omitempty,max=50"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}

type UpdatePriorityRequest struct {
	Priority string `json:"priority" validate:"required,max=50"`
}

type TaskResponse struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
