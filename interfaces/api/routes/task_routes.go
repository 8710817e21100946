package routes

import (
	"github.com/gofiber/fiber/v2"

	"todolist-api/interfaces/api/handlers"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, m *Middlewares) {
	tasks := api.Group("/tasks", m.Protected)

	tasks.Get("/", h.TaskHandler.List) // ?category_id&status&priority&search&page&per_page
	tasks.Post("/", h.TaskHandler.Create)
	tasks.Get("/:id", h.TaskHandler.GetByID)
	tasks.Put("/:id", h.TaskHandler.Update)
	tasks.Patch("/:id/status", h.TaskHandler.UpdateStatus)
	tasks.Delete("/:id", h.TaskHandler.Delete)
}
