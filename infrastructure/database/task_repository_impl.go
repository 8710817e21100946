package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todolist-api/domain/models"
	"todolist-api/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) owned(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Task{}).Scopes(OwnedBy("tasks", userID))
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return translateError(r.db.WithContext(ctx).Omit("Category", "User").Create(task).Error)
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.owned(ctx, userID).
		Preload("Category").
		Where("tasks.id = ?", id).
		First(&task).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	result := r.owned(ctx, task.UserID).
		Where("tasks.id = ?", task.ID).
		Updates(map[string]interface{}{
			"category_id": task.CategoryID,
			"title":       task.Title,
			"description": task.Description,
			"status":      task.Status,
			"priority":    task.Priority,
			"due_date":    task.DueDate,
			"updated_at":  task.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// UpdateStatus writes status and updated_at only
func (r *TaskRepositoryImpl) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status string) error {
	result := r.owned(ctx, userID).
		Where("tasks.id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(OwnedBy("tasks", userID)).
		Where("tasks.id = ?", id).
		Delete(&models.Task{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// List returns the newest tasks first, each with its category
func (r *TaskRepositoryImpl) List(ctx context.Context, userID uuid.UUID, filter repositories.TaskFilter, offset, limit int) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.owned(ctx, userID).
		Scopes(applyTaskFilter(filter), Paginate(offset, limit)).
		Preload("Category").
		Order("tasks.created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Count(ctx context.Context, userID uuid.UUID, filter repositories.TaskFilter) (int64, error) {
	var count int64
	err := r.owned(ctx, userID).Scopes(applyTaskFilter(filter)).Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) ListAll(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	return r.List(ctx, userID, repositories.TaskFilter{}, 0, 0)
}

func applyTaskFilter(filter repositories.TaskFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.CategoryID != nil {
			db = db.Where("tasks.category_id = ?", *filter.CategoryID)
		}
		if filter.Status != "" {
			db = db.Where("tasks.status = ?", filter.Status)
		}
		if filter.Priority != "" {
			db = db.Where("tasks.priority = ?", filter.Priority)
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			db = db.Where("(tasks.title LIKE ? OR tasks.description LIKE ?)", pattern, pattern)
		}
		return db
	}
}
