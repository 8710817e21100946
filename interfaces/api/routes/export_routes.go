package routes

import (
	"github.com/gofiber/fiber/v2"

	"todolist-api/interfaces/api/handlers"
)

func SetupExportRoutes(api fiber.Router, h *handlers.Handlers, m *Middlewares) {
	exports := api.Group("/exports", m.Protected)
	exports.Post("/tasks", h.ExportHandler.ExportTasks)
}
