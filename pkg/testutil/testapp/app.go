// Package testapp assembles the full HTTP stack over a temporary SQLite
// database for end-to-end tests.
package testapp

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"todolist-api/application/serviceimpl"
	"todolist-api/infrastructure/database"
	"todolist-api/infrastructure/storage"
	"todolist-api/interfaces/api/handlers"
	"todolist-api/interfaces/api/middleware"
	"todolist-api/interfaces/api/routes"
	"todolist-api/pkg/config"
	"todolist-api/pkg/datetime"
	"todolist-api/pkg/testutil"
)

// Now is the fixed clock every test app runs on, 15/06/2025 10:00 in Sao Paulo
var Now = time.Date(2025, 6, 15, 10, 0, 0, 0, mustLocation("America/Sao_Paulo"))

type App struct {
	*fiber.App
	Events *testutil.RecordingPublisher
}

func New(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	clock := datetime.NewFixedClock(Now.Location(), Now)
	formatter := datetime.NewFormatter(clock, datetime.LocalePtBR)

	userRepo := database.NewUserRepository(db)
	categoryRepo := database.NewCategoryRepository(db)
	taskRepo := database.NewTaskRepository(db)
	revokedRepo := database.NewRevokedTokenRepository(db)
	events := &testutil.RecordingPublisher{}

	store, err := storage.NewLocalStorage(storage.LocalStorageConfig{BasePath: t.TempDir(), BaseURL: "http://localhost/files"})
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}

	authService := serviceimpl.NewAuthService(userRepo, revokedRepo, events, "test-secret", time.Hour)
	h := handlers.NewHandlers(&handlers.Services{
		AuthService:     authService,
		CategoryService: serviceimpl.NewCategoryService(categoryRepo, events),
		TaskService:     serviceimpl.NewTaskService(taskRepo, categoryRepo, events, clock),
		ExportService:   serviceimpl.NewExportService(userRepo, categoryRepo, taskRepo, store, formatter),
		Formatter:       formatter,
		Pagination:      config.PaginationConfig{DefaultPerPage: 3, MaxPerPage: 100},
		Locale:          datetime.LocalePtBR,
	})

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestIDMiddleware())
	routes.SetupRoutes(app, h, &routes.Middlewares{
		Protected:   middleware.Protected(authService),
		AuthLimiter: middleware.AuthRateLimiter(config.RateLimitConfig{AuthMax: 1000, AuthWindow: time.Minute}),
	})

	return &App{App: app, Events: events}
}

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
