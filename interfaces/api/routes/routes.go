package routes

import (
	"github.com/gofiber/fiber/v2"

	"todolist-api/interfaces/api/handlers"
)

// Middlewares are the route-level guards built by the caller
type Middlewares struct {
	Protected   fiber.Handler
	AuthLimiter fiber.Handler
}

func SetupRoutes(app *fiber.App, h *handlers.Handlers, m *Middlewares, checks ...HealthCheck) {
	SetupHealthRoutes(app, checks)

	api := app.Group("/api/v1")

	SetupAuthRoutes(api, h, m)
	SetupCategoryRoutes(api, h, m)
	SetupTaskRoutes(api, h, m)
	SetupExportRoutes(api, h, m)
	SetupSystemRoutes(api, h)
}
