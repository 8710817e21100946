package handlers

import (
	"todolist-api/domain/services"
	"todolist-api/pkg/config"
	"todolist-api/pkg/datetime"
)

// Services contains everything the handlers need
type Services struct {
	AuthService     services.AuthService
	CategoryService services.CategoryService
	TaskService     services.TaskService
	ExportService   services.ExportService
	Formatter       *datetime.Formatter
	Pagination      config.PaginationConfig
	Locale          string
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler     *AuthHandler
	CategoryHandler *CategoryHandler
	TaskHandler     *TaskHandler
	ExportHandler   *ExportHandler
	SystemHandler   *SystemHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:     NewAuthHandler(services.AuthService, services.Formatter),
		CategoryHandler: NewCategoryHandler(services.CategoryService, services.Formatter, services.Pagination),
		TaskHandler:     NewTaskHandler(services.TaskService, services.Formatter, services.Pagination),
		ExportHandler:   NewExportHandler(services.ExportService),
		SystemHandler:   NewSystemHandler(services.Formatter, services.Locale),
	}
}
