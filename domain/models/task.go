package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is always owned by exactly one user. UserID is set at creation and
// never reassigned; every lookup filters by it.
type Task struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Text      string    `gorm:"not null"`
	Status    string    `gorm:"default:'pending'"` // free string, ไม่บังคับ enum
	Priority  string    `gorm:"default:'normal'"`  // free string
	UserID    uuid.UUID `gorm:"not null;index"`
	User      User      `gorm:"foreignKey:UserID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Task) TableName() string {
	return "tasks"
}
