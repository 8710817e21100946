package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck probes one dependency. Details, when not nil, are reported
// next to the status.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) (any, error)
}

type checkResult struct {
	Status  string `json:"status"`
	Details any    `json:"details,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SetupHealthRoutes(app *fiber.App, checks []HealthCheck) {
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		code := fiber.StatusOK
		results := make(map[string]checkResult, len(checks))

		for _, check := range checks {
			ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
			details, err := check.Check(ctx)
			cancel()

			if err != nil {
				status = "degraded"
				code = fiber.StatusServiceUnavailable
				results[check.Name] = checkResult{Status: "error", Error: err.Error()}
				continue
			}
			results[check.Name] = checkResult{Status: "ok", Details: details}
		}

		return c.Status(code).JSON(fiber.Map{
			"status":  status,
			"message": "Server is running",
			"service": "Todolist API",
			"checks":  results,
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Todolist API",
			"version": "1.0.0",
			"docs":    "/api/v1",
			"health":  "/health",
		})
	})
}
