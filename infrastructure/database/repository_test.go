package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todolist-api/domain/models"
	"todolist-api/domain/repositories"
	"todolist-api/infrastructure/database"
	"todolist-api/pkg/testutil"
)

type fixture struct {
	db         *gorm.DB
	users      repositories.UserRepository
	categories repositories.CategoryRepository
	tasks      repositories.TaskRepository
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewTestDB(t)
	return &fixture{
		db:         db,
		users:      database.NewUserRepository(db),
		categories: database.NewCategoryRepository(db),
		tasks:      database.NewTaskRepository(db),
	}
}

func (f *fixture) user(t *testing.T, email string) *models.User {
	t.Helper()
	u := &models.User{Name: email, Email: email, Password: "x"}
	if err := f.users.Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func (f *fixture) category(t *testing.T, userID uuid.UUID, name string) *models.Category {
	t.Helper()
	c := &models.Category{UserID: userID, Name: name, Slug: name}
	if err := f.categories.Create(context.Background(), c); err != nil {
		t.Fatalf("create category: %v", err)
	}
	return c
}

func (f *fixture) task(t *testing.T, userID, categoryID uuid.UUID, title, status, priority string, createdAt time.Time) *models.Task {
	t.Helper()
	task := &models.Task{
		UserID:     userID,
		CategoryID: categoryID,
		Title:      title,
		Status:     status,
		Priority:   priority,
		CreatedAt:  createdAt,
	}
	if err := f.tasks.Create(context.Background(), task); err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

func TestCategoryOwnershipScope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice@example.com")
	bob := f.user(t, "bob@example.com")
	cat := f.category(t, alice.ID, "Trabalho")

	if _, err := f.categories.GetByID(ctx, bob.ID, cat.ID); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("bob GetByID err = %v, want ErrNotFound", err)
	}
	if err := f.categories.Delete(ctx, bob.ID, cat.ID); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("bob Delete err = %v, want ErrNotFound", err)
	}

	foreign := *cat
	foreign.UserID = bob.ID
	foreign.Name = "Hijacked"
	if err := f.categories.Update(ctx, &foreign); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("bob Update err = %v, want ErrNotFound", err)
	}

	got, err := f.categories.GetByID(ctx, alice.ID, cat.ID)
	if err != nil {
		t.Fatalf("alice GetByID: %v", err)
	}
	if got.Name != "Trabalho" {
		t.Errorf("name = %q, category was modified by another user", got.Name)
	}
}

func TestCategoryUniquePerUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice@example.com")
	bob := f.user(t, "bob@example.com")

	f.category(t, alice.ID, "Casa")
	f.category(t, bob.ID, "Casa")

	err := f.categories.Create(ctx, &models.Category{UserID: alice.ID, Name: "Casa", Slug: "casa"})
	if !errors.Is(err, repositories.ErrDuplicate) {
		t.Errorf("duplicate create err = %v, want ErrDuplicate", err)
	}
}

func TestCategoryListWithTasksCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice@example.com")
	bob := f.user(t, "bob@example.com")

	work := f.category(t, alice.ID, "Trabalho")
	f.category(t, alice.ID, "Casa")
	f.category(t, alice.ID, "Lazer")
	f.category(t, bob.ID, "Bob only")

	now := time.Now().UTC()
	f.task(t, alice.ID, work.ID, "a", models.TaskStatusPending, models.TaskPriorityLow, now)
	f.task(t, alice.ID, work.ID, "b", models.TaskStatusDone, models.TaskPriorityLow, now)

	page, err := f.categories.List(ctx, alice.ID, 0, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page) != 2 || page[0].Name != "Casa" || page[1].Name != "Lazer" {
		t.Fatalf("unexpected first page %v", names(page))
	}

	all, err := f.categories.ListAll(ctx, alice.ID)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListAll returned %d categories, want 3", len(all))
	}
	if all[2].Name != "Trabalho" || all[2].TasksCount != 2 {
		t.Errorf("Trabalho tasks_count = %d, want 2", all[2].TasksCount)
	}

	total, _ := f.categories.Count(ctx, alice.ID)
	if total != 3 {
		t.Errorf("Count = %d, want 3", total)
	}

	shown, err := f.categories.GetByID(ctx, alice.ID, work.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if shown.TasksCount != 2 {
		t.Errorf("GetByID tasks_count = %d, want 2", shown.TasksCount)
	}
}

func names(categories []*models.Category) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.Name)
	}
	return out
}

func TestTaskFiltersAndOrdering(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice@example.com")
	bob := f.user(t, "bob@example.com")
	work := f.category(t, alice.ID, "Trabalho")
	home := f.category(t, alice.ID, "Casa")
	bobs := f.category(t, bob.ID, "Trabalho")

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	oldest := f.task(t, alice.ID, work.ID, "Write report", models.TaskStatusPending, models.TaskPriorityHigh, base)
	f.task(t, alice.ID, home.ID, "Clean kitchen", models.TaskStatusDone, models.TaskPriorityLow, base.Add(time.Hour))
	newest := f.task(t, alice.ID, work.ID, "Review report draft", models.TaskStatusPending, models.TaskPriorityMedium, base.Add(2*time.Hour))
	f.task(t, bob.ID, bobs.ID, "Bob report", models.TaskStatusPending, models.TaskPriorityHigh, base)

	tests := []struct {
		name   string
		filter repositories.TaskFilter
		want   []uuid.UUID
	}{
		{"all newest first", repositories.TaskFilter{}, nil},
		{"status pending", repositories.TaskFilter{Status: models.TaskStatusPending}, []uuid.UUID{newest.ID, oldest.ID}},
		{"priority high", repositories.TaskFilter{Priority: models.TaskPriorityHigh}, []uuid.UUID{oldest.ID}},
		{"category", repositories.TaskFilter{CategoryID: &work.ID}, []uuid.UUID{newest.ID, oldest.ID}},
		{"search", repositories.TaskFilter{Search: "report"}, []uuid.UUID{newest.ID, oldest.ID}},
		{"other user's category", repositories.TaskFilter{CategoryID: &bobs.ID}, []uuid.UUID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := f.tasks.List(ctx, alice.ID, tt.filter, 0, 10)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			count, err := f.tasks.Count(ctx, alice.ID, tt.filter)
			if err != nil {
				t.Fatalf("Count: %v", err)
			}
			if int(count) != len(tasks) {
				t.Errorf("Count = %d, List returned %d", count, len(tasks))
			}
			for _, task := range tasks {
				if task.UserID != alice.ID {
					t.Errorf("task %s belongs to another user", task.ID)
				}
				if task.Category == nil {
					t.Errorf("task %s has no category loaded", task.ID)
				}
			}
			if tt.want == nil {
				if len(tasks) != 3 || tasks[0].ID != newest.ID || tasks[2].ID != oldest.ID {
					t.Errorf("unexpected ordering")
				}
				return
			}
			if len(tasks) != len(tt.want) {
				t.Fatalf("got %d tasks, want %d", len(tasks), len(tt.want))
			}
			for i, id := range tt.want {
				if tasks[i].ID != id {
					t.Errorf("tasks[%d] = %s, want %s", i, tasks[i].ID, id)
				}
			}
		})
	}
}

func TestTaskUpdateStatusOnlyTouchesStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice@example.com")
	bob := f.user(t, "bob@example.com")
	work := f.category(t, alice.ID, "Trabalho")
	task := f.task(t, alice.ID, work.ID, "Title", models.TaskStatusPending, models.TaskPriorityHigh, time.Now().UTC())

	if err := f.tasks.UpdateStatus(ctx, bob.ID, task.ID, models.TaskStatusDone); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("bob UpdateStatus err = %v, want ErrNotFound", err)
	}
	if err := f.tasks.UpdateStatus(ctx, alice.ID, task.ID, models.TaskStatusDone); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, err := f.tasks.GetByID(ctx, alice.ID, task.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != models.TaskStatusDone {
		t.Errorf("status = %q, want done", got.Status)
	}
	if got.Title != "Title" || got.Priority != models.TaskPriorityHigh || got.CategoryID != work.ID {
		t.Errorf("other fields changed: %+v", got)
	}
}

func TestTaskDueDateRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice@example.com")
	work := f.category(t, alice.ID, "Trabalho")

	due := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	task := &models.Task{UserID: alice.ID, CategoryID: work.ID, Title: "Due", Status: "pending", Priority: "medium", DueDate: &due}
	if err := f.tasks.Create(ctx, task); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := f.tasks.GetByID(ctx, alice.ID, task.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.DueDate == nil || got.DueDate.Format("2006-01-02") != "2025-12-31" {
		t.Errorf("due date = %v, want 2025-12-31", got.DueDate)
	}
}

func TestRevokedTokens(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := database.NewRevokedTokenRepository(f.db)
	userID := uuid.New()
	now := time.Now().UTC()

	if err := repo.Revoke(ctx, userID, "expired", now.Add(-time.Minute)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if err := repo.Revoke(ctx, userID, "live", now.Add(time.Hour)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if err := repo.Revoke(ctx, userID, "live", now.Add(time.Hour)); err != nil {
		t.Fatalf("second Revoke should be a no-op: %v", err)
	}

	revoked, err := repo.IsRevoked(ctx, "live")
	if err != nil || !revoked {
		t.Errorf("IsRevoked(live) = %v, %v", revoked, err)
	}

	purged, err := repo.PurgeExpired(ctx, now)
	if err != nil {
		t.Fatalf("PurgeExpired: %v", err)
	}
	if purged != 1 {
		t.Errorf("purged = %d, want 1", purged)
	}
	if revoked, _ := repo.IsRevoked(ctx, "expired"); revoked {
		t.Error("expired revocation should have been purged")
	}
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		if err := database.SeedDefaults(ctx, f.db, today); err != nil {
			t.Fatalf("SeedDefaults run %d: %v", i+1, err)
		}
	}

	user, err := f.users.GetByEmail(ctx, database.DefaultUserEmail)
	if err != nil {
		t.Fatalf("default user missing: %v", err)
	}
	count, _ := f.categories.Count(ctx, user.ID)
	if int(count) != len(database.DefaultCategories) {
		t.Errorf("categories = %d, want %d", count, len(database.DefaultCategories))
	}
}
