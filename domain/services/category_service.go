package services

import (
	"context"

	"github.com/google/uuid"

	"todolist-api/domain/dto"
	"todolist-api/domain/models"
)

type CategoryService interface {
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.Category, int64, error)
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Category, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
