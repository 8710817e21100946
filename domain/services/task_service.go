package services

import (
	"context"

	"github.com/google/uuid"

	"todolist-api/domain/dto"
	"todolist-api/domain/models"
)

type TaskService interface {
	List(ctx context.Context, userID uuid.UUID, filter *dto.TaskFilterRequest, offset, limit int) ([]*models.Task, int64, error)
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Task, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTaskStatusRequest) (*models.Task, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
