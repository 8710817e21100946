package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"todolist-api/interfaces/api/handlers"
	"todolist-api/interfaces/api/middleware"
	"todolist-api/interfaces/api/routes"
	"todolist-api/pkg/di"
	"todolist-api/pkg/logger"
)

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		// logger may not be configured yet
		panic("Failed to initialize container: " + err.Error())
	}

	cfg := container.GetConfig()

	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler(),
		AppName:               cfg.App.Name,
		BodyLimit:             1 * 1024 * 1024,
		EnablePrintRoutes:     cfg.IsDevelopment(),
		DisableStartupMessage: cfg.IsProduction(),
	})

	setupGracefulShutdown(app, container)

	// order matters: request id before the access log
	app.Use(recover.New())
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware(cfg.CORS))

	h := handlers.NewHandlers(container.GetHandlerServices())

	routes.SetupRoutes(app, h, &routes.Middlewares{
		Protected:   middleware.Protected(container.AuthService),
		AuthLimiter: middleware.AuthRateLimiter(cfg.RateLimit),
	}, container.HealthChecks()...)
	if cfg.Storage.Type != "s3" {
		routes.SetupFileRoutes(app, cfg.Storage.BasePath)
	}

	port := cfg.App.Port
	logger.Info("Server starting",
		"port", port,
		"env", cfg.App.Env,
		"app", cfg.App.Name,
		"timezone", cfg.App.Timezone,
	)
	logger.Info("Endpoints available",
		"health", "http://localhost:"+port+"/health",
		"api", "http://localhost:"+port+"/api/v1",
	)

	if err := app.Listen(":" + port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(app *fiber.App, container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		if err := app.Shutdown(); err != nil {
			logger.Error("Error shutting down server", "error", err)
		}
		if err := container.Cleanup(); err != nil {
			logger.Error("Error during cleanup", "error", err)
		}

		logger.Info("Shutdown complete")
		os.Exit(0)
	}()
}
