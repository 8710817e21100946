package repositories

import (
	"context"

	"github.com/google/uuid"

	"todolist-api/domain/models"
)

// TaskFilter holds the optional equality and substring filters of a listing
type TaskFilter struct {
	CategoryID *uuid.UUID
	Status     string
	Priority   string
	Search     string
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status string) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter TaskFilter, offset, limit int) ([]*models.Task, error)
	Count(ctx context.Context, userID uuid.UUID, filter TaskFilter) (int64, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
}
