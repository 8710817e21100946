package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventCategoryCreated = "category.created"
	EventCategoryUpdated = "category.updated"
	EventCategoryDeleted = "category.deleted"

	EventTaskCreated       = "task.created"
	EventTaskUpdated       = "task.updated"
	EventTaskStatusChanged = "task.status_changed"
	EventTaskDeleted       = "task.deleted"

	EventUserRegistered = "user.registered"
)

// DomainEvent is published after a successful write
type DomainEvent struct {
	ID         uuid.UUID      `json:"id"`
	Type       string         `json:"type"`
	UserID     uuid.UUID      `json:"user_id"`
	EntityID   uuid.UUID      `json:"entity_id"`
	Data       map[string]any `json:"data,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

func NewDomainEvent(eventType string, userID, entityID uuid.UUID, data map[string]any) *DomainEvent {
	return &DomainEvent{
		ID:         uuid.New(),
		Type:       eventType,
		UserID:     userID,
		EntityID:   entityID,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}

// EventPublisherPort delivers domain events. Publishing is best effort:
// callers log failures and never fail the request because of them.
type EventPublisherPort interface {
	Publish(ctx context.Context, event *DomainEvent) error
}
