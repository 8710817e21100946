package routes

import (
	"github.com/gofiber/fiber/v2"

	"todolist-api/interfaces/api/handlers"
)

func SetupSystemRoutes(api fiber.Router, h *handlers.Handlers) {
	system := api.Group("/system")
	system.Get("/timezone", h.SystemHandler.Timezone)
}
