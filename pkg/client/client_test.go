package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"todolist-api/domain/dto"
	"todolist-api/pkg/client"
	"todolist-api/pkg/testutil/testapp"
)

func newServer(t *testing.T) *client.Client {
	t.Helper()
	server := httptest.NewServer(adaptor.FiberApp(testapp.New(t).App))
	t.Cleanup(server.Close)
	return client.New(server.URL + "/api/v1")
}

func strPtr(s string) *string { return &s }

func TestClientScenario(t *testing.T) {
	ctx := context.Background()
	c := newServer(t)

	auth, err := c.Register(ctx, &dto.RegisterRequest{
		Name: "Test", Email: "test@example.com", Password: "password123", PasswordConfirmation: "password123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if auth.Token == "" || c.Token() != auth.Token {
		t.Fatalf("token not kept: %q / %q", auth.Token, c.Token())
	}

	me, err := c.Me(ctx)
	if err != nil || me.Email != "test@example.com" {
		t.Fatalf("Me = %+v, %v", me, err)
	}

	category, err := c.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Trabalho"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	task, err := c.CreateTask(ctx, &dto.CreateTaskRequest{
		Title:      "X",
		CategoryID: category.ID.String(),
		Priority:   "high",
		Status:     "pending",
		DueDate:    strPtr("2025-12-31"),
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.DueDate == nil || task.DueDate.Formatted != "31/12/2025" {
		t.Errorf("due_date = %+v", task.DueDate)
	}

	done, err := c.UpdateTaskStatus(ctx, task.ID, "done")
	if err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}
	if done.Status != "done" || done.Title != "X" || done.Priority != "high" {
		t.Errorf("after status update: %+v", done)
	}

	page, err := c.ListTasks(ctx, client.TaskQuery{Status: "done"})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(page.Items) != 1 || page.Pagination.Total != 1 {
		t.Errorf("ListTasks = %d items, total %d", len(page.Items), page.Pagination.Total)
	}

	categories, err := c.ListCategories(ctx, 1, 10)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(categories.Items) != 1 || categories.Items[0].TasksCount != 1 {
		t.Errorf("ListCategories = %+v", categories.Items)
	}

	if err := c.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if c.Token() != "" {
		t.Error("token kept after logout")
	}
}

func TestClientErrors(t *testing.T) {
	ctx := context.Background()
	c := newServer(t)

	_, err := c.Me(ctx)
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("Me without token: %v", err)
	}

	if _, err := c.Register(ctx, &dto.RegisterRequest{Name: "A", Email: "bad", Password: "password123", PasswordConfirmation: "password123"}); !errors.As(err, &apiErr) {
		t.Fatalf("Register with bad email: %v", err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity || len(apiErr.Errors["email"]) == 0 {
		t.Errorf("validation error = %+v", apiErr)
	}

	if _, err := c.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"}); !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("Login unknown user: %v", err)
	}
}
