// Package events carries cross-service domain events so the message pipeline
// and the notification side stay independently testable instead of calling
// each other directly.
package events

import "sync"

type Topic string

const (
	TopicMessageReceived Topic = "message.received"
	TopicRideRequested   Topic = "ride.requested"
)

// MessageReceived is published when an inbound message lands in a chat.
type MessageReceived struct {
	ChatID      string
	RecipientID string
	SenderID    string
	SenderName  string
	Text        string
}

// RideRequested is published when a rider asks to join a ride.
type RideRequested struct {
	RideID        string
	DriverID      string
	RiderID       string
	RiderName     string
	Destination   string
	DepartureTime string
}

type Handler func(event interface{})

// Bus is a synchronous in-process publish/subscribe fan-out. Handlers run on
// the publisher's goroutine; a handler that blocks delays the publisher.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Topic][]Handler
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Topic][]Handler),
	}
}

func (b *Bus) Subscribe(topic Topic, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[topic] = append(b.handlers[topic], h)
}

func (b *Bus) Publish(topic Topic, event interface{}) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[topic]))
	copy(handlers, b.handlers[topic])
	b.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}
