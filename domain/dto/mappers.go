package dto

import (
	"todolist-api/domain/models"
	"todolist-api/pkg/datetime"
)

func UserToUserResponse(user *models.User, f *datetime.Formatter) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		EmailVerifiedAt: f.DateTimePtr(user.EmailVerifiedAt),
		CreatedAt:       f.DateTime(user.CreatedAt),
		UpdatedAt:       f.DateTime(user.UpdatedAt),
	}
}

func CategoryToCategoryResponse(category *models.Category, f *datetime.Formatter) CategoryResponse {
	return CategoryResponse{
		ID:         category.ID,
		UserID:     category.UserID,
		Name:       category.Name,
		Slug:       category.Slug,
		TasksCount: category.TasksCount,
		CreatedAt:  f.DateTime(category.CreatedAt),
		UpdatedAt:  f.DateTime(category.UpdatedAt),
	}
}

func CategoriesToCategoryResponses(categories []*models.Category, f *datetime.Formatter) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, CategoryToCategoryResponse(category, f))
	}
	return responses
}

func TaskToTaskResponse(task *models.Task, f *datetime.Formatter) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID,
		UserID:      task.UserID,
		CategoryID:  task.CategoryID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		DueDate:     f.DatePtr(task.DueDate),
		CreatedAt:   f.DateTime(task.CreatedAt),
		UpdatedAt:   f.DateTime(task.UpdatedAt),
	}
	if task.Category != nil {
		resp.Category = &CategorySummary{
			ID:   task.Category.ID,
			Name: task.Category.Name,
			Slug: task.Category.Slug,
		}
	}
	return resp
}

func TasksToTaskResponses(tasks []*models.Task, f *datetime.Formatter) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, TaskToTaskResponse(task, f))
	}
	return responses
}

func IssuedTokenToResponse(token string, expiresIn int64, expiresAt datetime.FormattedDate) TokenResponse {
	return TokenResponse{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: expiresIn,
		ExpiresAt: expiresAt,
	}
}
