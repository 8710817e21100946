package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"todolist-api/domain/dto"
	"todolist-api/domain/models"
	"todolist-api/domain/ports"
	"todolist-api/domain/repositories"
	"todolist-api/domain/services"
	"todolist-api/pkg/logger"
)

const msgCategoryNameTaken = "The name has already been taken."

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
	events       ports.EventPublisherPort
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, events ports.EventPublisherPort) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
		events:       events,
	}
}

func (s *CategoryServiceImpl) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.Category, int64, error) {
	total, err := s.categoryRepo.Count(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	categories, err := s.categoryRepo.List(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (s *CategoryServiceImpl) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error) {
	if err := s.ensureNameAvailable(ctx, userID, req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	category := &models.Category{
		UserID: userID,
		Name:   req.Name,
		Slug:   slug.Make(req.Name),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, services.NewValidationError("name", msgCategoryNameTaken)
		}
		logger.ErrorContext(ctx, "Failed to create category", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category created", "category_id", category.ID)
	publish(ctx, s.events, ports.EventCategoryCreated, userID, category.ID, map[string]any{"name": category.Name})

	return category, nil
}

func (s *CategoryServiceImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryServiceImpl) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.ensureNameAvailable(ctx, userID, req.Name, category.ID); err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Slug = slug.Make(req.Name)
	category.UpdatedAt = time.Now().UTC()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, services.NewValidationError("name", msgCategoryNameTaken)
		case errors.Is(err, repositories.ErrNotFound):
			return nil, services.ErrCategoryNotFound
		}
		logger.ErrorContext(ctx, "Failed to update category", "category_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category updated", "category_id", category.ID)
	publish(ctx, s.events, ports.EventCategoryUpdated, userID, category.ID, map[string]any{"name": category.Name})

	return category, nil
}

// Delete refuses while tasks still reference the category
func (s *CategoryServiceImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	category, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}

	count, err := s.categoryRepo.CountTasks(ctx, userID, category.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.WarnContext(ctx, "Category still has tasks", "category_id", id, "tasks", count)
		return services.ErrCategoryHasTasks
	}

	if err := s.categoryRepo.Delete(ctx, userID, category.ID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return services.ErrCategoryNotFound
		case errors.Is(err, repositories.ErrReferenced):
			return services.ErrCategoryHasTasks
		}
		logger.ErrorContext(ctx, "Failed to delete category", "category_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Category deleted", "category_id", id)
	publish(ctx, s.events, ports.EventCategoryDeleted, userID, category.ID, nil)
	return nil
}

// ensureNameAvailable checks per-user uniqueness, ignoring the row being renamed
func (s *CategoryServiceImpl) ensureNameAvailable(ctx context.Context, userID uuid.UUID, name string, self uuid.UUID) error {
	existing, err := s.categoryRepo.GetByName(ctx, userID, name)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID == self:
		return nil
	}
	return services.NewValidationError("name", msgCategoryNameTaken)
}
