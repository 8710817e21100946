package routes

import (
	"github.com/gofiber/fiber/v2"

	"todolist-api/interfaces/api/handlers"
)

func SetupCategoryRoutes(api fiber.Router, h *handlers.Handlers, m *Middlewares) {
	categories := api.Group("/categories", m.Protected)

	categories.Get("/", h.CategoryHandler.List)
	categories.Post("/", h.CategoryHandler.Create)
	categories.Get("/:id", h.CategoryHandler.GetByID)
	categories.Put("/:id", h.CategoryHandler.Update)
	categories.Delete("/:id", h.CategoryHandler.Delete) // 400 while tasks reference it
}
