package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	"todolist-api/pkg/logger"
)

// Publisher writes domain events to the JetStream event stream
type Publisher struct {
	client *Client
}

func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

// PublishEvent publishes the event on its subject. The event id doubles as
// the JetStream message id so retries are deduplicated by the server.
func (p *Publisher) PublishEvent(ctx context.Context, event *Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := SubjectFor(event.Type)
	ack, err := p.client.js.Publish(ctx, subject, data, jetstream.WithMsgID(event.ID))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.DebugContext(ctx, "Event published",
		"subject", subject,
		"event_id", event.ID,
		"stream", ack.Stream,
		"sequence", ack.Sequence,
	)
	return nil
}
