package store

import (
	"context"

	"github.com/google/uuid"

	"todolist-api/domain/dto"
	"todolist-api/pkg/client"
)

// fetchPerPage is the page size used when mirroring a whole list
const fetchPerPage = 100

// tracker holds the loading flag and the last error of a store
type tracker struct {
	Loading bool
	Err     error
}

func (t *tracker) begin() {
	t.Loading = true
	t.Err = nil
}

func (t *tracker) end(err error) error {
	t.Loading = false
	t.Err = err
	return err
}

func (t *tracker) ClearError() {
	t.Err = nil
}

type AuthStore struct {
	tracker
	State  AuthState
	client *client.Client
}

func NewAuthStore(c *client.Client) *AuthStore {
	return &AuthStore{client: c}
}

func (s *AuthStore) Register(ctx context.Context, req *dto.RegisterRequest) error {
	s.begin()
	resp, err := s.client.Register(ctx, req)
	if err == nil {
		s.State = s.State.SetSession(resp.Token, &resp.User)
	}
	return s.end(err)
}

func (s *AuthStore) Login(ctx context.Context, req *dto.LoginRequest) error {
	s.begin()
	resp, err := s.client.Login(ctx, req)
	if err == nil {
		s.State = s.State.SetSession(resp.Token, &resp.User)
	}
	return s.end(err)
}

// Logout always clears the local session, even if the server call failed
func (s *AuthStore) Logout(ctx context.Context) error {
	s.begin()
	err := s.client.Logout(ctx)
	s.State = s.State.ClearSession()
	return s.end(err)
}

// FetchUser restores the session user for a token set on the client
func (s *AuthStore) FetchUser(ctx context.Context) error {
	s.begin()
	user, err := s.client.Me(ctx)
	if err != nil {
		s.State = s.State.ClearSession()
		return s.end(err)
	}
	s.State = s.State.SetSession(s.client.Token(), user)
	return s.end(nil)
}

type CategoryStore struct {
	tracker
	State  CategoryState
	client *client.Client
}

func NewCategoryStore(c *client.Client) *CategoryStore {
	return &CategoryStore{client: c}
}

// Fetch loads every page of the caller's categories
func (s *CategoryStore) Fetch(ctx context.Context) error {
	s.begin()
	var all []dto.CategoryResponse
	for page := 1; ; page++ {
		resp, err := s.client.ListCategories(ctx, page, fetchPerPage)
		if err != nil {
			return s.end(err)
		}
		all = append(all, resp.Items...)
		if !resp.Pagination.HasMorePages {
			break
		}
	}
	s.State = s.State.CategoriesLoaded(all)
	return s.end(nil)
}

func (s *CategoryStore) Create(ctx context.Context, name string) (*dto.CategoryResponse, error) {
	s.begin()
	category, err := s.client.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: name})
	if err != nil {
		return nil, s.end(err)
	}
	s.State = s.State.CategoryAdded(*category)
	return category, s.end(nil)
}

func (s *CategoryStore) Update(ctx context.Context, id uuid.UUID, name string) (*dto.CategoryResponse, error) {
	s.begin()
	category, err := s.client.UpdateCategory(ctx, id, &dto.UpdateCategoryRequest{Name: name})
	if err != nil {
		return nil, s.end(err)
	}
	s.State = s.State.CategoryReplaced(*category)
	return category, s.end(nil)
}

func (s *CategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.begin()
	if err := s.client.DeleteCategory(ctx, id); err != nil {
		return s.end(err)
	}
	s.State = s.State.CategoryRemoved(id)
	return s.end(nil)
}

type TaskStore struct {
	tracker
	State  TaskState
	client *client.Client
}

func NewTaskStore(c *client.Client) *TaskStore {
	return &TaskStore{client: c}
}

// Fetch loads every page of the caller's tasks matching the filters.
// Page and PerPage in filters are ignored.
func (s *TaskStore) Fetch(ctx context.Context, filters client.TaskQuery) error {
	s.begin()
	filters.PerPage = fetchPerPage
	var all []dto.TaskResponse
	for page := 1; ; page++ {
		filters.Page = page
		resp, err := s.client.ListTasks(ctx, filters)
		if err != nil {
			return s.end(err)
		}
		all = append(all, resp.Items...)
		if !resp.Pagination.HasMorePages {
			break
		}
	}
	s.State = s.State.TasksLoaded(all)
	return s.end(nil)
}

func (s *TaskStore) Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	s.begin()
	task, err := s.client.CreateTask(ctx, req)
	if err != nil {
		return nil, s.end(err)
	}
	s.State = s.State.TaskAdded(*task)
	return task, s.end(nil)
}

func (s *TaskStore) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	s.begin()
	task, err := s.client.UpdateTask(ctx, id, req)
	if err != nil {
		return nil, s.end(err)
	}
	s.State = s.State.TaskReplaced(*task)
	return task, s.end(nil)
}

func (s *TaskStore) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.TaskResponse, error) {
	s.begin()
	task, err := s.client.UpdateTaskStatus(ctx, id, status)
	if err != nil {
		return nil, s.end(err)
	}
	s.State = s.State.TaskReplaced(*task)
	return task, s.end(nil)
}

func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.begin()
	if err := s.client.DeleteTask(ctx, id); err != nil {
		return s.end(err)
	}
	s.State = s.State.TaskRemoved(id)
	return s.end(nil)
}
