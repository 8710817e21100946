package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todolist-api/domain/models"
	"todolist-api/domain/repositories"
)

const tasksCountSelect = "categories.*, (SELECT COUNT(*) FROM tasks WHERE tasks.category_id = categories.id) AS tasks_count"

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) owned(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Category{}).Scopes(OwnedBy("categories", userID))
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *models.Category) error {
	return translateError(r.db.WithContext(ctx).Omit("User").Create(category).Error)
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.owned(ctx, userID).
		Select(tasksCountSelect).
		Where("categories.id = ?", id).
		First(&category).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) GetByName(ctx context.Context, userID uuid.UUID, name string) (*models.Category, error) {
	var category models.Category
	err := r.owned(ctx, userID).Where("categories.name = ?", name).First(&category).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *models.Category) error {
	result := r.owned(ctx, category.UserID).
		Where("categories.id = ?", category.ID).
		Updates(map[string]interface{}{
			"name":       category.Name,
			"slug":       category.Slug,
			"updated_at": category.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(OwnedBy("categories", userID)).
		Where("categories.id = ?", id).
		Delete(&models.Category{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// List orders by name and includes tasks_count
func (r *CategoryRepositoryImpl) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.owned(ctx, userID).
		Select(tasksCountSelect).
		Order("categories.name ASC").
		Scopes(Paginate(offset, limit)).
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) ListAll(ctx context.Context, userID uuid.UUID) ([]*models.Category, error) {
	return r.List(ctx, userID, 0, 0)
}

func (r *CategoryRepositoryImpl) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.owned(ctx, userID).Count(&count).Error
	return count, err
}

func (r *CategoryRepositoryImpl) CountTasks(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Scopes(OwnedBy("tasks", userID)).
		Where("tasks.category_id = ?", id).
		Count(&count).Error
	return count, err
}
