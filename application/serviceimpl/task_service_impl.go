package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"todolist-api/domain/dto"
	"todolist-api/domain/models"
	"todolist-api/domain/ports"
	"todolist-api/domain/repositories"
	"todolist-api/domain/services"
	"todolist-api/pkg/datetime"
	"todolist-api/pkg/logger"
)

const (
	msgCategoryInvalid = "The selected category id is invalid."
	msgDueDateInvalid  = "The due date field must be a valid date."
	msgDueDatePast     = "The due date field must be a date after or equal to today."
)

type TaskServiceImpl struct {
	taskRepo     repositories.TaskRepository
	categoryRepo repositories.CategoryRepository
	events       ports.EventPublisherPort
	clock        *datetime.Clock
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	categoryRepo repositories.CategoryRepository,
	events ports.EventPublisherPort,
	clock *datetime.Clock,
) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:     taskRepo,
		categoryRepo: categoryRepo,
		events:       events,
		clock:        clock,
	}
}

func (s *TaskServiceImpl) List(ctx context.Context, userID uuid.UUID, req *dto.TaskFilterRequest, offset, limit int) ([]*models.Task, int64, error) {
	filter := repositories.TaskFilter{
		Status:   req.Status,
		Priority: req.Priority,
		Search:   req.Search,
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			// no category carries a malformed id
			return []*models.Task{}, 0, nil
		}
		filter.CategoryID = &categoryID
	}

	total, err := s.taskRepo.Count(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}
	tasks, err := s.taskRepo.List(ctx, userID, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (s *TaskServiceImpl) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	verr := &services.ValidationError{}

	category, err := s.ownedCategory(ctx, userID, req.CategoryID, verr)
	if err != nil {
		return nil, err
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		dueDate = s.parseDueDate(*req.DueDate, verr)
	}

	if verr.HasErrors() {
		return nil, verr
	}

	task := &models.Task{
		UserID:      userID,
		CategoryID:  category.ID,
		Title:       req.Title,
		Description: normalizeDescription(req.Description),
		Status:      valueOr(req.Status, models.TaskStatusPending),
		Priority:    valueOr(req.Priority, models.TaskPriorityMedium),
		DueDate:     dueDate,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, err
	}
	task.Category = category

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "category_id", category.ID)
	publish(ctx, s.events, ports.EventTaskCreated, userID, task.ID, map[string]any{
		"category_id": task.CategoryID,
		"status":      task.Status,
		"priority":    task.Priority,
	})

	return task, nil
}

func (s *TaskServiceImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// Update applies only the fields present in the request
func (s *TaskServiceImpl) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	verr := &services.ValidationError{}

	if req.Title != nil {
		if *req.Title == "" {
			verr.Add("title", "The title field is required.")
		}
		task.Title = *req.Title
	}

	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			verr.Add("category_id", "The category id field is required.")
		} else {
			category, err := s.ownedCategory(ctx, userID, *req.CategoryID, verr)
			if err != nil {
				return nil, err
			}
			if category != nil {
				task.CategoryID = category.ID
				task.Category = category
			}
		}
	}

	if req.Description != nil {
		task.Description = normalizeDescription(req.Description)
	}

	if req.Status != nil {
		if *req.Status == "" {
			verr.Add("status", "The selected status is invalid.")
		}
		task.Status = *req.Status
	}

	if req.Priority != nil {
		if *req.Priority == "" {
			verr.Add("priority", "The selected priority is invalid.")
		}
		task.Priority = *req.Priority
	}

	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil
		} else {
			task.DueDate = s.parseDueDate(*req.DueDate, verr)
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}

	task.UpdatedAt = time.Now().UTC()
	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", task.ID)
	publish(ctx, s.events, ports.EventTaskUpdated, userID, task.ID, map[string]any{
		"category_id": task.CategoryID,
		"status":      task.Status,
		"priority":    task.Priority,
	})

	return s.GetByID(ctx, userID, task.ID)
}

func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTaskStatusRequest) (*models.Task, error) {
	if err := s.taskRepo.UpdateStatus(ctx, userID, id, req.Status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to update task status", "task_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task status updated", "task_id", id, "status", req.Status)
	publish(ctx, s.events, ports.EventTaskStatusChanged, userID, id, map[string]any{"status": req.Status})

	return s.GetByID(ctx, userID, id)
}

func (s *TaskServiceImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)
	publish(ctx, s.events, ports.EventTaskDeleted, userID, id, nil)
	return nil
}

// ownedCategory resolves a category id the caller must own. A missing or
// foreign category is recorded on verr and returns nil without error.
func (s *TaskServiceImpl) ownedCategory(ctx context.Context, userID uuid.UUID, rawID string, verr *services.ValidationError) (*models.Category, error) {
	categoryID, err := uuid.Parse(rawID)
	if err != nil {
		verr.Add("category_id", msgCategoryInvalid)
		return nil, nil
	}

	category, err := s.categoryRepo.GetByID(ctx, userID, categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Category not owned by caller", "category_id", categoryID)
			verr.Add("category_id", msgCategoryInvalid)
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

// parseDueDate checks the day against today in the configured zone and
// returns it as UTC midnight, the form stored in the date column.
func (s *TaskServiceImpl) parseDueDate(value string, verr *services.ValidationError) *time.Time {
	day, err := s.clock.ParseDate(value)
	if err != nil {
		verr.Add("due_date", msgDueDateInvalid)
		return nil
	}
	if day.Before(s.clock.Today()) {
		verr.Add("due_date", msgDueDatePast)
		return nil
	}
	stored := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return &stored
}

func normalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
