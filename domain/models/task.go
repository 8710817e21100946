package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"

	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

var (
	TaskStatuses   = []string{TaskStatusPending, TaskStatusInProgress, TaskStatusDone}
	TaskPriorities = []string{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh}
)

type Task struct {
	ID          uuid.UUID  `gorm:"primaryKey;type:uuid"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title       string     `gorm:"size:255;not null"`
	Description *string    `gorm:"type:text"`
	Status      string     `gorm:"size:20;not null;default:'pending';index"`
	Priority    string     `gorm:"size:20;not null;default:'medium';index"`
	DueDate     *time.Time `gorm:"type:date"`
	CreatedAt   time.Time  `gorm:"index"`
	UpdatedAt   time.Time

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Task) TableName() string {
	return "tasks"
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
