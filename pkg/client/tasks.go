package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"todolist-api/domain/dto"
)

// TaskQuery holds the task list filters. Zero values are omitted.
type TaskQuery struct {
	CategoryID string
	Status     string
	Priority   string
	Search     string
	Page       int
	PerPage    int
}

func (c *Client) ListTasks(ctx context.Context, q TaskQuery) (*Page[dto.TaskResponse], error) {
	query := pageQuery(q.Page, q.PerPage)
	for key, value := range map[string]string{
		"category_id": q.CategoryID,
		"status":      q.Status,
		"priority":    q.Priority,
		"search":      q.Search,
	} {
		if value != "" {
			query.Set(key, value)
		}
	}
	return listPage[dto.TaskResponse](ctx, c, "/tasks", query)
}

func (c *Client) GetTask(ctx context.Context, id uuid.UUID) (*dto.TaskResponse, error) {
	var out dto.TaskResponse
	if _, err := c.do(ctx, http.MethodGet, "/tasks/"+id.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	var out dto.TaskResponse
	if _, err := c.do(ctx, http.MethodPost, "/tasks", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	var out dto.TaskResponse
	if _, err := c.do(ctx, http.MethodPut, "/tasks/"+id.String(), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTaskStatus(ctx context.Context, id uuid.UUID, status string) (*dto.TaskResponse, error) {
	var out dto.TaskResponse
	req := &dto.UpdateTaskStatusRequest{Status: status}
	if _, err := c.do(ctx, http.MethodPatch, "/tasks/"+id.String()+"/status", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTask(ctx context.Context, id uuid.UUID) error {
	_, err := c.do(ctx, http.MethodDelete, "/tasks/"+id.String(), nil, nil, nil)
	return err
}

// ExportTasks asks the server to write a JSON export of every task
func (c *Client) ExportTasks(ctx context.Context) (*dto.ExportResponse, error) {
	var out dto.ExportResponse
	if _, err := c.do(ctx, http.MethodPost, "/exports/tasks", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
