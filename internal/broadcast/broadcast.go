// Package broadcast fans a freshly persisted AppState out to every store
// instance living in the same process, so they all converge on the same
// state right after any one of them writes. Delivery is synchronous and
// in-process only; nothing survives a restart (stores recover via the
// persistence adapter instead).
package broadcast

import (
	"sync"

	"github.com/florentv/irontrack/internal/models"
)

type Handler func(models.AppState)

type Broadcaster struct {
	mu       sync.Mutex
	nextID   int
	handlers []subscription
}

type subscription struct {
	id int
	fn Handler
}

func New() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe registers a handler and returns its unsubscribe function.
// Handlers fire in registration order.
func (b *Broadcaster) Subscribe(fn Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.handlers = append(b.handlers, subscription{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.handlers {
			if sub.id == id {
				b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers state to every current subscriber before returning.
func (b *Broadcaster) Publish(state models.AppState) {
	b.mu.Lock()
	handlers := make([]subscription, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.Unlock()

	for _, sub := range handlers {
		sub.fn(state)
	}
}
