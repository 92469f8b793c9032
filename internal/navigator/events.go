package navigator

import (
	"fmt"
	"sync"
)

// EventBus is a simple interface for publishing navigator events
type EventBus interface {
	Publish(event interface{})
	Subscribe(eventType string, handler func(interface{}))
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (n *NullBus) Publish(event interface{})                            {}
func (n *NullBus) Subscribe(eventType string, handler func(interface{})) {}

// Bus is a small synchronous event bus for navigator notifications
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners for its type.
// Delivery is synchronous: the controller is single-owner state driven by
// one command at a time, so listeners run inline in command order.
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := b.listeners[eventType(event)]
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// eventType extracts the type name from an event
func eventType(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
