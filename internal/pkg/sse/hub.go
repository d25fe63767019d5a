package sse

import (
	"sync"
)

// Event represents an SSE event to be sent to subscribers
type Event struct {
	OperatorID string
	Event      string
	Data       interface{}
}

// Hub manages SSE subscribers and event broadcasting
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a new subscriber for an operator and returns the event channel and cleanup function
func (h *Hub) Subscribe(operatorID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.subscribers[operatorID] == nil {
		h.subscribers[operatorID] = make(map[chan Event]struct{})
	}
	h.subscribers[operatorID][ch] = struct{}{}

	// Return channel and cleanup function
	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[operatorID], ch)
		close(ch)
		if len(h.subscribers[operatorID]) == 0 {
			delete(h.subscribers, operatorID)
		}
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of a specific operator
func (h *Hub) Publish(operatorID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[operatorID]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}

// PublishToMany sends an event to multiple operators
func (h *Hub) PublishToMany(operatorIDs []string, event Event) {
	for _, operatorID := range operatorIDs {
		eventCopy := event
		eventCopy.OperatorID = operatorID
		h.Publish(operatorID, eventCopy)
	}
}

// SubscriberCount returns the number of active subscribers for an operator
func (h *Hub) SubscriberCount(operatorID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[operatorID]; ok {
		return len(subs)
	}
	return 0
}

// TotalSubscribers returns the total number of active subscribers across all operators
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}
