package repositories

import (
	"context"

	"github.com/google/uuid"

	"todolist-api/domain/models"
)

// CategoryRepository methods that read or write a single category require
// the owner's id; rows owned by someone else behave as missing.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Category, error)
	GetByName(ctx context.Context, userID uuid.UUID, name string) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.Category, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]*models.Category, error)
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
	CountTasks(ctx context.Context, userID, id uuid.UUID) (int64, error)
}
