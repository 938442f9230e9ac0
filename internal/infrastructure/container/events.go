package container

import (
	"sync"

	"go.uber.org/zap"

	"github.com/vatika/v1/internal/domain/shared"
)

// EventDispatcher is a synchronous in-process domain event dispatcher
type EventDispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler
	logger   *zap.Logger
}

// NewEventDispatcher creates a new event dispatcher
func NewEventDispatcher(logger *zap.Logger) *EventDispatcher {
	return &EventDispatcher{
		handlers: make(map[string][]shared.EventHandler),
		logger:   logger.Named("events"),
	}
}

var _ shared.EventDispatcher = (*EventDispatcher)(nil)

// Register subscribes a handler to an event name
func (d *EventDispatcher) Register(eventName string, handler shared.EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers[eventName] = append(d.handlers[eventName], handler)
}

// Dispatch delivers an event to every registered handler. Handler
// failures are logged; remaining handlers still run.
func (d *EventDispatcher) Dispatch(event shared.DomainEvent) error {
	d.mu.RLock()
	handlers := d.handlers[event.EventName()]
	d.mu.RUnlock()

	if len(handlers) == 0 {
		d.logger.Debug("No handlers registered for event",
			zap.String("event", event.EventName()),
		)
		return nil
	}

	for _, handler := range handlers {
		if err := handler(event); err != nil {
			d.logger.Error("Failed to handle event",
				zap.String("event", event.EventName()),
				zap.Error(err),
			)
		}
	}

	return nil
}
