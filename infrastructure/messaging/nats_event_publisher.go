package messaging

import (
	"context"
	"fmt"

	"todolist-api/domain/ports"
	natspkg "todolist-api/infrastructure/nats"
)

// NATSEventPublisher implements EventPublisherPort on top of JetStream
type NATSEventPublisher struct {
	publisher *natspkg.Publisher
}

func NewNATSEventPublisher(publisher *natspkg.Publisher) ports.EventPublisherPort {
	return &NATSEventPublisher{publisher: publisher}
}

func (p *NATSEventPublisher) Publish(ctx context.Context, event *ports.DomainEvent) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}
	return p.publisher.PublishEvent(ctx, ToNATSEvent(event))
}

// ToNATSEvent converts a domain event to its wire form
func ToNATSEvent(event *ports.DomainEvent) *natspkg.Event {
	return &natspkg.Event{
		ID:         event.ID.String(),
		Type:       event.Type,
		UserID:     event.UserID.String(),
		EntityID:   event.EntityID.String(),
		Data:       event.Data,
		OccurredAt: event.OccurredAt,
	}
}
