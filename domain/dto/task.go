package dto

import (
	"strings"

	"github.com/google/uuid"

	"todolist-api/pkg/datetime"
)

// === Requests ===

type CreateTaskRequest struct {
	CategoryID  string  `json:"category_id" validate:"required,uuid"`
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending in_progress done"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateTaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.CategoryID = strings.TrimSpace(r.CategoryID)
}

// UpdateTaskRequest changes only the fields present in the body.
// An empty due_date clears it.
type UpdateTaskRequest struct {
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in_progress done"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateTaskRequest) Normalize() {
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		r.Title = &title
	}
	if r.CategoryID != nil {
		id := strings.TrimSpace(*r.CategoryID)
		r.CategoryID = &id
	}
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress done"`
}

func (r *UpdateTaskStatusRequest) Normalize() {
	r.Status = strings.TrimSpace(r.Status)
}

// TaskFilterRequest holds equality filters; values nothing can match
// simply produce an empty page.
type TaskFilterRequest struct {
	CategoryID string `query:"category_id"`
	Status     string `query:"status"`
	Priority   string `query:"priority"`
	Search     string `query:"search" validate:"omitempty,max=255"`
}

func (r *TaskFilterRequest) Normalize() {
	r.CategoryID = strings.TrimSpace(r.CategoryID)
	r.Search = strings.TrimSpace(r.Search)
}

// === Responses ===

type TaskResponse struct {
	ID          uuid.UUID               `json:"id"`
	UserID      uuid.UUID               `json:"user_id"`
	CategoryID  uuid.UUID               `json:"category_id"`
	Title       string                  `json:"title"`
	Description *string                 `json:"description"`
	Status      string                  `json:"status"`
	Priority    string                  `json:"priority"`
	DueDate     *datetime.FormattedDate `json:"due_date"`
	Category    *CategorySummary        `json:"category,omitempty"`
	CreatedAt   datetime.FormattedDate  `json:"created_at"`
	UpdatedAt   datetime.FormattedDate  `json:"updated_at"`
}
