package messaging

import (
	"context"

	"todolist-api/domain/ports"
	"todolist-api/pkg/logger"
)

// NoopEventPublisher is used when NATS is disabled. Events are only logged
// at debug level.
type NoopEventPublisher struct{}

func NewNoopEventPublisher() ports.EventPublisherPort {
	return NoopEventPublisher{}
}

func (NoopEventPublisher) Publish(ctx context.Context, event *ports.DomainEvent) error {
	logger.DebugContext(ctx, "Event dropped, publisher disabled", "type", event.Type, "entity_id", event.EntityID)
	return nil
}
