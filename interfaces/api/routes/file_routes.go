package routes

import (
	"github.com/gofiber/fiber/v2"
)

// SetupFileRoutes serves exports written by the local storage backend
func SetupFileRoutes(app *fiber.App, basePath string) {
	app.Static("/files", basePath, fiber.Static{
		Browse:   false,
		Download: true,
	})
}
