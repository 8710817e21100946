package serviceimpl

import (
	"context"

	"github.com/google/uuid"

	"todolist-api/domain/ports"
	"todolist-api/pkg/logger"
)

// publish sends a domain event. Failures are logged and never surface to
// the caller, the write has already been committed.
func publish(ctx context.Context, publisher ports.EventPublisherPort, eventType string, userID, entityID uuid.UUID, data map[string]any) {
	if publisher == nil {
		return
	}
	event := ports.NewDomainEvent(eventType, userID, entityID, data)
	if err := publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "type", eventType, "entity_id", entityID, "error", err)
	}
}
