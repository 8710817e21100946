package main

import (
	"context"
	"os"

	"todolist-api/infrastructure/database"
	"todolist-api/pkg/di"
	"todolist-api/pkg/logger"
)

// Seeds the default user and sample data, then exits.
// Safe to run repeatedly.
func main() {
	container := di.NewContainer()
	if err := container.Initialize(); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
	defer container.Cleanup()

	if err := container.Seed(context.Background()); err != nil {
		logger.Error("Seeding failed", "error", err)
		container.Cleanup()
		os.Exit(1)
	}

	logger.Info("Seeding finished", "email", database.DefaultUserEmail)
}
