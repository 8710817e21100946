package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"todolist-api/domain/models"
	"todolist-api/pkg/logger"
)

const (
	DefaultUserName     = "Administrador"
	DefaultUserEmail    = "admin@example.com"
	DefaultUserPassword = "password123"
)

var DefaultCategories = []string{"Trabalho", "Pessoal", "Estudos", "Casa", "Saúde", "Lazer"}

type seedTask struct {
	category    string
	title       string
	description string
	status      string
	priority    string
	dueInDays   int // 0 means no due date
}

var defaultTasks = []seedTask{
	{"Trabalho", "Preparar relatório mensal", "Consolidar os números do mês", models.TaskStatusPending, models.TaskPriorityHigh, 3},
	{"Trabalho", "Revisar pull requests", "", models.TaskStatusInProgress, models.TaskPriorityMedium, 1},
	{"Estudos", "Ler capítulo sobre concorrência", "Anotar dúvidas para a próxima aula", models.TaskStatusPending, models.TaskPriorityMedium, 7},
	{"Casa", "Pagar conta de luz", "", models.TaskStatusDone, models.TaskPriorityHigh, 0},
	{"Saúde", "Marcar consulta", "Clínico geral", models.TaskStatusPending, models.TaskPriorityLow, 14},
}

// SeedDefaults creates the default user with its categories and sample
// tasks. It does nothing when the default user already exists.
func SeedDefaults(ctx context.Context, db *gorm.DB, today time.Time) error {
	var existing models.User
	err := db.WithContext(ctx).Where("email = ?", DefaultUserEmail).First(&existing).Error
	if err == nil {
		logger.InfoContext(ctx, "Seed skipped, default user exists", "email", DefaultUserEmail)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up default user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		verifiedAt := time.Now().UTC()
		user := &models.User{
			Name:            DefaultUserName,
			Email:           DefaultUserEmail,
			Password:        string(hashed),
			EmailVerifiedAt: &verifiedAt,
		}
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create default user: %w", err)
		}

		categoryIDs := make(map[string]*models.Category, len(DefaultCategories))
		for _, name := range DefaultCategories {
			category := &models.Category{UserID: user.ID, Name: name, Slug: slug.Make(name)}
			if err := tx.Omit("User").Create(category).Error; err != nil {
				return fmt.Errorf("failed to create category %s: %w", name, err)
			}
			categoryIDs[name] = category
		}

		for _, st := range defaultTasks {
			task := &models.Task{
				UserID:     user.ID,
				CategoryID: categoryIDs[st.category].ID,
				Title:      st.title,
				Status:     st.status,
				Priority:   st.priority,
			}
			if st.description != "" {
				description := st.description
				task.Description = &description
			}
			if st.dueInDays > 0 {
				due := today.AddDate(0, 0, st.dueInDays)
				dueUTC := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
				task.DueDate = &dueUTC
			}
			if err := tx.Omit("Category", "User").Create(task).Error; err != nil {
				return fmt.Errorf("failed to create task %q: %w", st.title, err)
			}
		}

		logger.InfoContext(ctx, "Default data seeded",
			"email", DefaultUserEmail,
			"categories", len(DefaultCategories),
			"tasks", len(defaultTasks),
		)
		return nil
	})
}
