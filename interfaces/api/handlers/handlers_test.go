package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"todolist-api/pkg/testutil/testapp"
)

type envelope struct {
	Success    bool                `json:"success"`
	Data       json.RawMessage     `json:"data"`
	Message    string              `json:"message"`
	Errors     map[string][]string `json:"errors"`
	Pagination *struct {
		CurrentPage  int     `json:"current_page"`
		PerPage      int     `json:"per_page"`
		Total        int64   `json:"total"`
		LastPage     int     `json:"last_page"`
		HasMorePages bool    `json:"has_more_pages"`
		NextPageURL  *string `json:"next_page_url"`
	} `json:"pagination"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return testapp.New(t).App
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, "http://example.com"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
	}
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode data %s: %v", raw, err)
	}
	return v
}

type idResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Name   string `json:"name"`
}

func register(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	status, env := call(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":                  "Test",
		"email":                 email,
		"password":              "password123",
		"password_confirmation": "password123",
	})
	if status != http.StatusCreated {
		t.Fatalf("register %s: status %d, %+v", email, status, env)
	}
	return decode[struct {
		Token string `json:"token"`
	}](t, env.Data).Token
}

func createCategory(t *testing.T, app *fiber.App, token, name string) string {
	t.Helper()
	status, env := call(t, app, http.MethodPost, "/api/v1/categories", token, map[string]string{"name": name})
	if status != http.StatusCreated {
		t.Fatalf("create category %s: status %d, %+v", name, status, env)
	}
	return decode[idResponse](t, env.Data).ID
}

func createTask(t *testing.T, app *fiber.App, token string, body map[string]any) string {
	t.Helper()
	status, env := call(t, app, http.MethodPost, "/api/v1/tasks", token, body)
	if status != http.StatusCreated {
		t.Fatalf("create task: status %d, %+v", status, env)
	}
	return decode[idResponse](t, env.Data).ID
}

func TestTaskLifecycleScenario(t *testing.T) {
	app := newTestApp(t)
	token := register(t, app, "test@example.com")

	categoryID := createCategory(t, app, token, "Trabalho")
	taskID := createTask(t, app, token, map[string]any{
		"title":       "X",
		"category_id": categoryID,
		"priority":    "high",
		"status":      "pending",
		"due_date":    "2025-12-31",
	})

	status, env := call(t, app, http.MethodPatch, "/api/v1/tasks/"+taskID+"/status", token, map[string]string{"status": "done"})
	if status != http.StatusOK {
		t.Fatalf("status = %d, %+v", status, env)
	}
	if got := decode[idResponse](t, env.Data).Status; got != "done" {
		t.Errorf("data.status = %q, want done", got)
	}

	status, env = call(t, app, http.MethodGet, "/api/v1/tasks/"+taskID, token, nil)
	if status != http.StatusOK {
		t.Fatalf("show status = %d", status)
	}
	task := decode[struct {
		Title   string `json:"title"`
		DueDate struct {
			Formatted string `json:"formatted"`
			ISO       string `json:"iso"`
		} `json:"due_date"`
		Category struct {
			Name string `json:"name"`
		} `json:"category"`
	}](t, env.Data)
	if task.Title != "X" || task.Category.Name != "Trabalho" {
		t.Errorf("unexpected task %+v", task)
	}
	if task.DueDate.Formatted != "31/12/2025" || task.DueDate.ISO != "2025-12-31" {
		t.Errorf("due_date = %+v", task.DueDate)
	}
}

func TestAuthEndpoints(t *testing.T) {
	app := newTestApp(t)
	token := register(t, app, "ana@example.com")

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       any
		wantStatus int
		wantField  string
	}{
		{"me with token", http.MethodGet, "/api/v1/auth/me", token, nil, http.StatusOK, ""},
		{"me without token", http.MethodGet, "/api/v1/auth/me", "", nil, http.StatusUnauthorized, ""},
		{"me with garbage token", http.MethodGet, "/api/v1/auth/me", "not-a-jwt", nil, http.StatusUnauthorized, ""},
		{"duplicate email", http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"name": "Ana", "email": "ana@example.com", "password": "password123", "password_confirmation": "password123",
		}, http.StatusUnprocessableEntity, "email"},
		{"short password", http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"name": "Ana", "email": "other@example.com", "password": "123", "password_confirmation": "123",
		}, http.StatusUnprocessableEntity, "password"},
		{"numeric password", http.MethodPost, "/api/v1/auth/register", "", map[string]any{
			"name": "Ana", "email": "other@example.com", "password": 12345678, "password_confirmation": "12345678",
		}, http.StatusUnprocessableEntity, "password"},
		{"login ok", http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"email": "ana@example.com", "password": "password123",
		}, http.StatusOK, ""},
		{"login wrong password", http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"email": "ana@example.com", "password": "wrong",
		}, http.StatusUnauthorized, ""},
		{"login missing email", http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"password": "password123",
		}, http.StatusUnprocessableEntity, "email"},
		{"categories need auth", http.MethodGet, "/api/v1/categories", "", nil, http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := call(t, app, tt.method, tt.path, tt.token, tt.body)
			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%+v)", status, tt.wantStatus, env)
			}
			if env.Success != (status < 400) {
				t.Errorf("success = %v for status %d", env.Success, status)
			}
			if tt.wantField != "" && len(env.Errors[tt.wantField]) == 0 {
				t.Errorf("errors = %v, want entry for %q", env.Errors, tt.wantField)
			}
		})
	}
}

func TestLogoutAndRefreshRevokeToken(t *testing.T) {
	app := newTestApp(t)
	token := register(t, app, "ana@example.com")

	status, env := call(t, app, http.MethodPost, "/api/v1/auth/refresh", token, nil)
	if status != http.StatusOK {
		t.Fatalf("refresh status = %d", status)
	}
	refreshed := decode[struct {
		Token string `json:"token"`
	}](t, env.Data).Token

	if status, _ := call(t, app, http.MethodGet, "/api/v1/auth/me", token, nil); status != http.StatusUnauthorized {
		t.Errorf("old token after refresh: status = %d, want 401", status)
	}
	if status, _ := call(t, app, http.MethodPost, "/api/v1/auth/logout", refreshed, nil); status != http.StatusOK {
		t.Errorf("logout status = %d", status)
	}
	if status, _ := call(t, app, http.MethodGet, "/api/v1/auth/me", refreshed, nil); status != http.StatusUnauthorized {
		t.Errorf("token after logout: status = %d, want 401", status)
	}
}

func TestOwnershipIsolation(t *testing.T) {
	app := newTestApp(t)
	alice := register(t, app, "alice@example.com")
	bob := register(t, app, "bob@example.com")

	categoryID := createCategory(t, app, alice, "Trabalho")
	taskID := createTask(t, app, alice, map[string]any{"title": "Relatório", "category_id": categoryID})

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"show category", http.MethodGet, "/api/v1/categories/" + categoryID, nil, http.StatusNotFound},
		{"update category", http.MethodPut, "/api/v1/categories/" + categoryID, map[string]string{"name": "Mine"}, http.StatusNotFound},
		{"delete category", http.MethodDelete, "/api/v1/categories/" + categoryID, nil, http.StatusNotFound},
		{"show task", http.MethodGet, "/api/v1/tasks/" + taskID, nil, http.StatusNotFound},
		{"update task", http.MethodPut, "/api/v1/tasks/" + taskID, map[string]string{"title": "Mine"}, http.StatusNotFound},
		{"update status", http.MethodPatch, "/api/v1/tasks/" + taskID + "/status", map[string]string{"status": "done"}, http.StatusNotFound},
		{"delete task", http.MethodDelete, "/api/v1/tasks/" + taskID, nil, http.StatusNotFound},
		{"malformed id", http.MethodGet, "/api/v1/tasks/not-a-uuid", nil, http.StatusNotFound},
		{"foreign category on create", http.MethodPost, "/api/v1/tasks", map[string]string{"title": "Sneaky", "category_id": categoryID}, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if status, env := call(t, app, tt.method, tt.path, bob, tt.body); status != tt.want {
				t.Errorf("status = %d, want %d (%+v)", status, tt.want, env)
			}
		})
	}

	// Alice still sees her data untouched
	status, env := call(t, app, http.MethodGet, "/api/v1/tasks/"+taskID, alice, nil)
	if status != http.StatusOK || decode[idResponse](t, env.Data).Status != "pending" {
		t.Errorf("owner view: status %d, %+v", status, env)
	}

	_, env = call(t, app, http.MethodGet, "/api/v1/tasks", bob, nil)
	if env.Pagination == nil || env.Pagination.Total != 0 {
		t.Errorf("bob sees tasks: %+v", env.Pagination)
	}
}

func TestCategoryRules(t *testing.T) {
	app := newTestApp(t)
	alice := register(t, app, "alice@example.com")
	bob := register(t, app, "bob@example.com")

	categoryID := createCategory(t, app, alice, "Trabalho")
	createCategory(t, app, bob, "Trabalho")

	status, env := call(t, app, http.MethodPost, "/api/v1/categories", alice, map[string]string{"name": "Trabalho"})
	if status != http.StatusUnprocessableEntity || len(env.Errors["name"]) == 0 {
		t.Errorf("duplicate name: status %d, errors %v", status, env.Errors)
	}

	createTask(t, app, alice, map[string]any{"title": "T", "category_id": categoryID})

	status, env = call(t, app, http.MethodDelete, "/api/v1/categories/"+categoryID, alice, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("delete with tasks: status %d, %+v", status, env)
	}
	if env.Message != "Não é possível excluir categoria com tarefas associadas" {
		t.Errorf("message = %q", env.Message)
	}

	status, env = call(t, app, http.MethodGet, "/api/v1/categories/"+categoryID, alice, nil)
	if status != http.StatusOK {
		t.Fatalf("category gone after refused delete: %d", status)
	}
	if got := decode[struct {
		TasksCount int64 `json:"tasks_count"`
	}](t, env.Data).TasksCount; got != 1 {
		t.Errorf("tasks_count = %d, want 1", got)
	}

	empty := createCategory(t, app, alice, "Vazia")
	if status, _ := call(t, app, http.MethodDelete, "/api/v1/categories/"+empty, alice, nil); status != http.StatusOK {
		t.Errorf("delete empty category: status %d", status)
	}
}

func TestTaskListFiltersAndPagination(t *testing.T) {
	app := newTestApp(t)
	token := register(t, app, "ana@example.com")
	categoryID := createCategory(t, app, token, "Trabalho")

	for _, status := range []string{"pending", "pending", "done", "in_progress", "pending"} {
		createTask(t, app, token, map[string]any{"title": "Task " + status, "category_id": categoryID, "status": status})
	}

	status, env := call(t, app, http.MethodGet, "/api/v1/tasks", token, nil)
	if status != http.StatusOK || env.Pagination == nil {
		t.Fatalf("list: status %d, %+v", status, env)
	}
	if env.Pagination.Total != 5 || env.Pagination.PerPage != 3 || env.Pagination.LastPage != 2 || !env.Pagination.HasMorePages {
		t.Errorf("pagination = %+v", env.Pagination)
	}
	if env.Pagination.NextPageURL == nil || *env.Pagination.NextPageURL != "http://example.com/api/v1/tasks?page=2" {
		t.Errorf("next_page_url = %v", env.Pagination.NextPageURL)
	}
	if n := len(decode[[]idResponse](t, env.Data)); n != 3 {
		t.Errorf("page size = %d, want 3", n)
	}

	_, env = call(t, app, http.MethodGet, "/api/v1/tasks?status=pending&per_page=10", token, nil)
	pending := decode[[]idResponse](t, env.Data)
	if len(pending) != 3 {
		t.Fatalf("pending count = %d, want 3", len(pending))
	}
	for _, task := range pending {
		if task.Status != "pending" {
			t.Errorf("filter leaked status %q", task.Status)
		}
	}

	for _, query := range []string{"status=archived", "priority=urgent", "category_id=bogus"} {
		status, env = call(t, app, http.MethodGet, "/api/v1/tasks?"+query, token, nil)
		if status != http.StatusOK || env.Pagination == nil || env.Pagination.Total != 0 {
			t.Errorf("%s: status %d, %+v", query, status, env)
		}
		if n := len(decode[[]idResponse](t, env.Data)); n != 0 {
			t.Errorf("%s: got %d tasks, want none", query, n)
		}
	}

	status, env = call(t, app, http.MethodGet, "/api/v1/tasks?page=100000000000000001&per_page=100", token, nil)
	if status != http.StatusOK || env.Pagination == nil || env.Pagination.Total != 5 {
		t.Fatalf("huge page: status %d, %+v", status, env)
	}
	if n := len(decode[[]idResponse](t, env.Data)); n != 0 {
		t.Errorf("huge page returned %d tasks, want none", n)
	}
}

func TestTaskValidation(t *testing.T) {
	app := newTestApp(t)
	token := register(t, app, "ana@example.com")
	categoryID := createCategory(t, app, token, "Trabalho")
	taskID := createTask(t, app, token, map[string]any{"title": "T", "category_id": categoryID})

	tests := []struct {
		name      string
		method    string
		path      string
		body      any
		wantField string
	}{
		{"missing title", http.MethodPost, "/api/v1/tasks", map[string]any{"category_id": categoryID}, "title"},
		{"bad priority", http.MethodPost, "/api/v1/tasks", map[string]any{"title": "T", "category_id": categoryID, "priority": "urgent"}, "priority"},
		{"past due date", http.MethodPost, "/api/v1/tasks", map[string]any{"title": "T", "category_id": categoryID, "due_date": "2025-06-14"}, "due_date"},
		{"bad date format", http.MethodPost, "/api/v1/tasks", map[string]any{"title": "T", "category_id": categoryID, "due_date": "14/06/2025"}, "due_date"},
		{"missing status", http.MethodPatch, "/api/v1/tasks/" + taskID + "/status", map[string]any{}, "status"},
		{"bad status", http.MethodPatch, "/api/v1/tasks/" + taskID + "/status", map[string]any{"status": "archived"}, "status"},
		{"blank title on update", http.MethodPut, "/api/v1/tasks/" + taskID, map[string]any{"title": "  "}, "title"},
		{"non-string title", http.MethodPost, "/api/v1/tasks", map[string]any{"title": true, "category_id": categoryID}, "title"},
		{"non-string category name", http.MethodPost, "/api/v1/categories", map[string]any{"name": 123}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := call(t, app, tt.method, tt.path, token, tt.body)
			if status != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422 (%+v)", status, env)
			}
			if len(env.Errors[tt.wantField]) == 0 {
				t.Errorf("errors = %v, want entry for %q", env.Errors, tt.wantField)
			}
		})
	}

	// today in the configured zone is accepted
	createTask(t, app, token, map[string]any{"title": "Today", "category_id": categoryID, "due_date": "2025-06-15"})
}

func TestExportAndSystemEndpoints(t *testing.T) {
	app := newTestApp(t)
	token := register(t, app, "ana@example.com")
	categoryID := createCategory(t, app, token, "Trabalho")
	createTask(t, app, token, map[string]any{"title": "T", "category_id": categoryID})

	status, env := call(t, app, http.MethodPost, "/api/v1/exports/tasks", token, nil)
	if status != http.StatusCreated {
		t.Fatalf("export status = %d, %+v", status, env)
	}
	export := decode[struct {
		URL        string `json:"url"`
		TasksCount int    `json:"tasks_count"`
	}](t, env.Data)
	if export.TasksCount != 1 || export.URL == "" {
		t.Errorf("export = %+v", export)
	}

	status, env = call(t, app, http.MethodGet, "/api/v1/system/timezone", "", nil)
	if status != http.StatusOK {
		t.Fatalf("timezone status = %d", status)
	}
	if tz := decode[struct {
		Timezone string `json:"timezone"`
	}](t, env.Data).Timezone; tz != "America/Sao_Paulo" {
		t.Errorf("timezone = %q", tz)
	}

	status, env = call(t, app, http.MethodGet, "/api/v1/nope", "", nil)
	if status != http.StatusNotFound || env.Success {
		t.Errorf("unknown route: status %d, %+v", status, env)
	}
}
