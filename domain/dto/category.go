package dto

import (
	"strings"

	"github.com/google/uuid"

	"todolist-api/pkg/datetime"
)

// === Requests ===

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

func (r *CreateCategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

func (r *UpdateCategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// === Responses ===

type CategoryResponse struct {
	ID         uuid.UUID              `json:"id"`
	UserID     uuid.UUID              `json:"user_id"`
	Name       string                 `json:"name"`
	Slug       string                 `json:"slug"`
	TasksCount int64                  `json:"tasks_count"`
	CreatedAt  datetime.FormattedDate `json:"created_at"`
	UpdatedAt  datetime.FormattedDate `json:"updated_at"`
}

// CategorySummary is the category embedded in a task
type CategorySummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}
