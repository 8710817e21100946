// Package store keeps client-side copies of the list endpoints.
//
// The *State types are plain values whose reducers return a new state and
// never touch the network. The *Store types pair a state with a client:
// each action performs the remote write first and then applies the
// matching reducer.
package store

import (
	"github.com/google/uuid"

	"todolist-api/domain/dto"
)

// AuthState is the current session
type AuthState struct {
	Token string
	User  *dto.UserResponse
}

func (s AuthState) SetSession(token string, user *dto.UserResponse) AuthState {
	return AuthState{Token: token, User: user}
}

func (s AuthState) ClearSession() AuthState {
	return AuthState{}
}

func (s AuthState) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

type CategoryState struct {
	Categories []dto.CategoryResponse
}

func (s CategoryState) CategoriesLoaded(categories []dto.CategoryResponse) CategoryState {
	return CategoryState{Categories: append([]dto.CategoryResponse(nil), categories...)}
}

func (s CategoryState) CategoryAdded(category dto.CategoryResponse) CategoryState {
	next := make([]dto.CategoryResponse, 0, len(s.Categories)+1)
	next = append(next, s.Categories...)
	return CategoryState{Categories: append(next, category)}
}

// CategoryReplaced swaps the entry with the same id; unknown ids are ignored
func (s CategoryState) CategoryReplaced(category dto.CategoryResponse) CategoryState {
	next := make([]dto.CategoryResponse, len(s.Categories))
	for i, c := range s.Categories {
		if c.ID == category.ID {
			c = category
		}
		next[i] = c
	}
	return CategoryState{Categories: next}
}

func (s CategoryState) CategoryRemoved(id uuid.UUID) CategoryState {
	next := make([]dto.CategoryResponse, 0, len(s.Categories))
	for _, c := range s.Categories {
		if c.ID != id {
			next = append(next, c)
		}
	}
	return CategoryState{Categories: next}
}

func (s CategoryState) Count() int {
	return len(s.Categories)
}

// WithTasks lists the categories that have at least one task
func (s CategoryState) WithTasks() []dto.CategoryResponse {
	var out []dto.CategoryResponse
	for _, c := range s.Categories {
		if c.TasksCount > 0 {
			out = append(out, c)
		}
	}
	return out
}

type TaskState struct {
	Tasks []dto.TaskResponse
}

func (s TaskState) TasksLoaded(tasks []dto.TaskResponse) TaskState {
	return TaskState{Tasks: append([]dto.TaskResponse(nil), tasks...)}
}

func (s TaskState) TaskAdded(task dto.TaskResponse) TaskState {
	next := make([]dto.TaskResponse, 0, len(s.Tasks)+1)
	next = append(next, s.Tasks...)
	return TaskState{Tasks: append(next, task)}
}

func (s TaskState) TaskReplaced(task dto.TaskResponse) TaskState {
	next := make([]dto.TaskResponse, len(s.Tasks))
	for i, t := range s.Tasks {
		if t.ID == task.ID {
			t = task
		}
		next[i] = t
	}
	return TaskState{Tasks: next}
}

func (s TaskState) TaskRemoved(id uuid.UUID) TaskState {
	next := make([]dto.TaskResponse, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	return TaskState{Tasks: next}
}

func (s TaskState) Count() int {
	return len(s.Tasks)
}

func (s TaskState) ByStatus(status string) []dto.TaskResponse {
	return s.filter(func(t dto.TaskResponse) bool { return t.Status == status })
}

func (s TaskState) HighPriority() []dto.TaskResponse {
	return s.filter(func(t dto.TaskResponse) bool { return t.Priority == "high" })
}

func (s TaskState) filter(keep func(dto.TaskResponse) bool) []dto.TaskResponse {
	var out []dto.TaskResponse
	for _, t := range s.Tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
