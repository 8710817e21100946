package di

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"todolist-api/application/serviceimpl"
	"todolist-api/domain/ports"
	"todolist-api/domain/repositories"
	"todolist-api/domain/services"
	"todolist-api/infrastructure/database"
	"todolist-api/infrastructure/messaging"
	natspkg "todolist-api/infrastructure/nats"
	redispkg "todolist-api/infrastructure/redis"
	"todolist-api/infrastructure/storage"
	"todolist-api/interfaces/api/handlers"
	"todolist-api/interfaces/api/routes"
	"todolist-api/pkg/config"
	"todolist-api/pkg/datetime"
	"todolist-api/pkg/logger"
	"todolist-api/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config    *config.Config
	Clock     *datetime.Clock
	Formatter *datetime.Formatter

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // token blacklist (optional)
	NATSClient     *natspkg.Client  // domain events (optional)
	NATSSubscriber *natspkg.Subscriber
	Storage        ports.StoragePort
	EventScheduler scheduler.EventScheduler

	// Ports
	EventPublisher ports.EventPublisherPort
	TokenBlacklist ports.TokenBlacklistPort

	// Repositories
	UserRepository         repositories.UserRepository
	CategoryRepository     repositories.CategoryRepository
	TaskRepository         repositories.TaskRepository
	RevokedTokenRepository repositories.RevokedTokenRepository

	// Services
	AuthService         services.AuthService
	CategoryService     services.CategoryService
	TaskService         services.TaskService
	ExportService       services.ExportService
	TokenCleanupService services.TokenCleanupService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initClock(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	c.initPorts()

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	if c.Config.Seed.OnStart {
		if err := c.Seed(context.Background()); err != nil {
			return err
		}
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initClock() error {
	clock, err := datetime.NewClock(c.Config.App.Timezone)
	if err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.Config.App.Timezone, err)
	}
	c.Clock = clock
	c.Formatter = datetime.NewFormatter(clock, c.Config.App.Locale)
	logger.Info("Clock initialized", "timezone", c.Config.App.Timezone, "locale", c.Config.App.Locale)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := database.DatabaseConfig{
		Driver:     c.Config.Database.Driver,
		Host:       c.Config.Database.Host,
		Port:       c.Config.Database.Port,
		User:       c.Config.Database.User,
		Password:   c.Config.Database.Password,
		DBName:     c.Config.Database.DBName,
		SSLMode:    c.Config.Database.SSLMode,
		SQLitePath: c.Config.Database.SQLitePath,
		LogLevel:   c.Config.Database.LogLevel,
	}

	db, err := database.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "driver", c.Config.Database.Driver, "db", c.Config.Database.DBName)

	if err := database.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis is optional, revocations fall back to the database
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (using database blacklist)", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	}

	if c.Config.NATS.Enabled {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
		if err != nil {
			logger.Warn("NATS client initialization failed (events disabled)", "error", err)
		} else {
			c.NATSClient = natsClient
			logger.Info("NATS client initialized", "url", c.Config.NATS.URL)
			c.initEventSubscriber()
		}
	}

	return c.initStorage()
}

// initEventSubscriber logs every domain event seen on the bus
func (c *Container) initEventSubscriber() {
	subscriber := natspkg.NewSubscriber(c.NATSClient.Conn())
	subscriber.OnEvent(func(event *natspkg.Event) {
		logger.Debug("Domain event",
			"type", event.Type,
			"user_id", event.UserID,
			"entity_id", event.EntityID,
		)
	})

	if err := subscriber.Start(); err != nil {
		logger.Warn("Failed to start event subscriber", "error", err)
		return
	}
	c.NATSSubscriber = subscriber
	logger.Info("Event subscriber started", "subject", natspkg.SubjectAll)
}

func (c *Container) initStorage() error {
	switch c.Config.Storage.Type {
	case "s3":
		s3Config := storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
		}
		s3Storage, err := storage.NewS3Storage(s3Config)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		c.Storage = s3Storage
		logger.Info("S3 Storage initialized",
			"endpoint", c.Config.Storage.S3.Endpoint,
			"bucket", c.Config.Storage.S3.Bucket,
		)

	default:
		localStorage, err := storage.NewLocalStorage(storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
		logger.Info("Local Storage initialized", "path", c.Config.Storage.BasePath)
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = database.NewUserRepository(c.DB)
	c.CategoryRepository = database.NewCategoryRepository(c.DB)
	c.TaskRepository = database.NewTaskRepository(c.DB)
	c.RevokedTokenRepository = database.NewRevokedTokenRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initPorts() {
	if c.NATSClient != nil {
		c.EventPublisher = messaging.NewNATSEventPublisher(natspkg.NewPublisher(c.NATSClient))
		logger.Info("Event publisher initialized", "backend", "nats")
	} else {
		c.EventPublisher = messaging.NewNoopEventPublisher()
		logger.Info("Event publisher initialized", "backend", "noop")
	}

	if c.RedisClient != nil {
		c.TokenBlacklist = redispkg.NewTokenBlacklist(c.RedisClient)
		logger.Info("Token blacklist initialized", "backend", "redis")
	} else {
		c.TokenBlacklist = c.RevokedTokenRepository
		logger.Info("Token blacklist initialized", "backend", "database")
	}
}

func (c *Container) initServices() error {
	c.AuthService = serviceimpl.NewAuthService(
		c.UserRepository,
		c.TokenBlacklist,
		c.EventPublisher,
		c.Config.JWT.Secret,
		c.Config.JWT.TTL,
	)
	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository, c.EventPublisher)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.CategoryRepository, c.EventPublisher, c.Clock)
	c.ExportService = serviceimpl.NewExportService(
		c.UserRepository,
		c.CategoryRepository,
		c.TaskRepository,
		c.Storage,
		c.Formatter,
	)

	logger.Info("Services initialized")
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()
	c.TokenCleanupService = serviceimpl.NewTokenCleanupService(c.RevokedTokenRepository, c.EventScheduler)

	if err := c.TokenCleanupService.RegisterCleanupJob(); err != nil {
		logger.Warn("Failed to register token cleanup job", "error", err)
	}

	c.EventScheduler.Start()
	logger.Info("Event scheduler started", "jobs", len(c.EventScheduler.ListJobs()))
	return nil
}

// Seed inserts the default user, categories and sample tasks once
func (c *Container) Seed(ctx context.Context) error {
	if err := database.SeedDefaults(ctx, c.DB, c.Clock.Today()); err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.NATSSubscriber != nil {
		if err := c.NATSSubscriber.Stop(); err != nil {
			logger.Warn("Failed to stop event subscriber", "error", err)
		} else {
			logger.Info("Event subscriber stopped")
		}
	}

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
		logger.Info("Event scheduler stopped")
	}

	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		} else {
			logger.Info("NATS connection closed")
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

// HealthChecks probes the database and whichever optional backends are up
func (c *Container) HealthChecks() []routes.HealthCheck {
	checks := []routes.HealthCheck{{
		Name: "database",
		Check: func(ctx context.Context) (any, error) {
			sqlDB, err := c.DB.DB()
			if err != nil {
				return nil, err
			}
			return fiber.Map{"driver": c.Config.Database.Driver}, sqlDB.PingContext(ctx)
		},
	}}

	if c.RedisClient != nil {
		checks = append(checks, routes.HealthCheck{
			Name: "redis",
			Check: func(ctx context.Context) (any, error) {
				return nil, c.RedisClient.Ping(ctx)
			},
		})
	}

	if c.NATSClient != nil {
		checks = append(checks, routes.HealthCheck{
			Name: "nats",
			Check: func(ctx context.Context) (any, error) {
				if !c.NATSClient.IsConnected() {
					return nil, errors.New("not connected")
				}
				if err := c.NATSClient.Ping(); err != nil {
					return nil, err
				}
				return c.NATSClient.Status(ctx)
			},
		})
	}

	return checks
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		AuthService:     c.AuthService,
		CategoryService: c.CategoryService,
		TaskService:     c.TaskService,
		ExportService:   c.ExportService,
		Formatter:       c.Formatter,
		Pagination:      c.Config.Pagination,
		Locale:          c.Config.App.Locale,
	}
}
