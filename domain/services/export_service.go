package services

import (
	"context"

	"github.com/google/uuid"

	"todolist-api/domain/dto"
)

type ExportService interface {
	ExportTasks(ctx context.Context, userID uuid.UUID) (*dto.ExportResponse, error)
}
