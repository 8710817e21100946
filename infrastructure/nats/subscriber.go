package nats

import (
	"encoding/json"
	"sync"

	"github.com/nats-io/nats.go"

	"todolist-api/pkg/logger"
)

type EventHandler func(event *Event)

// Subscriber listens to domain events with a core NATS subscription.
// It sees events as they are published; replay goes through the stream.
type Subscriber struct {
	conn       *nats.Conn
	sub        *nats.Subscription
	handlers   []EventHandler
	handlersMu sync.RWMutex
	running    bool
	runningMu  sync.Mutex
}

func NewSubscriber(conn *nats.Conn) *Subscriber {
	return &Subscriber{
		conn:     conn,
		handlers: make([]EventHandler, 0),
	}
}

func (s *Subscriber) OnEvent(handler EventHandler) {
	s.handlersMu.Lock()
	defer s.handlersMu.Unlock()
	s.handlers = append(s.handlers, handler)
}

func (s *Subscriber) Start() error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	if s.running {
		return nil
	}

	sub, err := s.conn.Subscribe(SubjectAll, s.handleMessage)
	if err != nil {
		return err
	}
	s.sub = sub
	s.running = true

	logger.Info("NATS subscriber started", "subject", SubjectAll)
	return nil
}

func (s *Subscriber) handleMessage(msg *nats.Msg) {
	event, err := decodeEvent(msg.Data)
	if err != nil {
		logger.Error("Failed to parse event", "subject", msg.Subject, "error", err)
		return
	}
	s.dispatch(event)
}

func (s *Subscriber) dispatch(event *Event) {
	s.handlersMu.RLock()
	handlers := s.handlers
	s.handlersMu.RUnlock()

	for _, handler := range handlers {
		func(h EventHandler) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Event handler panicked", "type", event.Type, "error", r)
				}
			}()
			h(event)
		}(handler)
	}
}

func decodeEvent(data []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *Subscriber) Stop() error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false

	if s.sub != nil {
		if err := s.sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", "error", err)
		}
	}

	logger.Info("NATS subscriber stopped")
	return nil
}

func (s *Subscriber) IsRunning() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	return s.running
}
