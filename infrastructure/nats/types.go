package nats

import (
	"strings"
	"time"
)

const (
	StreamName    = "TODOLIST_EVENTS"
	SubjectPrefix = "todolist"

	// SubjectAll matches every domain event subject
	SubjectAll = SubjectPrefix + ".>"

	streamMaxAge = 7 * 24 * time.Hour
)

// Event is the wire form of a domain event.
// Keep the JSON keys stable, consumers outside this repo decode them.
type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	UserID     string         `json:"user_id"`
	EntityID   string         `json:"entity_id"`
	Data       map[string]any `json:"data,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// SubjectFor maps an event type such as "task.created" to its subject
func SubjectFor(eventType string) string {
	return SubjectPrefix + "." + strings.TrimSpace(eventType)
}

// StreamStatus is a snapshot of the event stream
type StreamStatus struct {
	Name     string `json:"name"`
	Messages uint64 `json:"messages"`
	Bytes    uint64 `json:"bytes"`
	FirstSeq uint64 `json:"first_seq"`
	LastSeq  uint64 `json:"last_seq"`
}
