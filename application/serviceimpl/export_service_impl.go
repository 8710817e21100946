package serviceimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"todolist-api/domain/dto"
	"todolist-api/domain/ports"
	"todolist-api/domain/repositories"
	"todolist-api/domain/services"
	"todolist-api/pkg/datetime"
	"todolist-api/pkg/logger"
)

const exportContentType = "application/json"

type ExportServiceImpl struct {
	userRepo     repositories.UserRepository
	categoryRepo repositories.CategoryRepository
	taskRepo     repositories.TaskRepository
	storage      ports.StoragePort
	formatter    *datetime.Formatter
}

func NewExportService(
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepository,
	taskRepo repositories.TaskRepository,
	storage ports.StoragePort,
	formatter *datetime.Formatter,
) services.ExportService {
	return &ExportServiceImpl{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		taskRepo:     taskRepo,
		storage:      storage,
		formatter:    formatter,
	}
}

// ExportTasks writes every task of the user, with its categories, as one
// JSON document under exports/<user_id>/
func (s *ExportServiceImpl) ExportTasks(ctx context.Context, userID uuid.UUID) (*dto.ExportResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrUserNotFound
		}
		return nil, err
	}

	categories, err := s.categoryRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.formatter.Clock().Now()
	generatedAt := s.formatter.DateTime(now)

	document := dto.TaskExport{
		User:        dto.UserToUserResponse(user, s.formatter),
		GeneratedAt: generatedAt,
		Timezone:    s.formatter.Location().String(),
		Categories:  dto.CategoriesToCategoryResponses(categories, s.formatter),
		Tasks:       dto.TasksToTaskResponses(tasks, s.formatter),
	}

	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}

	path := fmt.Sprintf("exports/%s/tasks-%s.json", userID, now.Format("20060102-150405"))
	url, err := s.storage.UploadFile(ctx, bytes.NewReader(data), int64(len(data)), path, exportContentType)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to store export", "path", path, "provider", s.storage.GetProviderName(), "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Tasks exported",
		"path", path,
		"tasks", len(tasks),
		"provider", s.storage.GetProviderName(),
	)

	return &dto.ExportResponse{
		URL:         url,
		Path:        path,
		TasksCount:  len(tasks),
		GeneratedAt: generatedAt,
	}, nil
}
