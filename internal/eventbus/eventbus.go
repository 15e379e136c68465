package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"scrollsync/internal/domain"
)

// Well-known targets that are not elements
const (
	DocumentTarget = "document"
	WindowTarget   = "window"
)

// ListenerID identifies one subscription for later removal
type ListenerID uint64

// EventHandler is a function that handles input events
type EventHandler func(domain.Event)

// EventBus is the interface for the event bus
type EventBus interface {
	Subscribe(target string, eventType domain.EventType, handler EventHandler) ListenerID
	Unsubscribe(id ListenerID) bool
	Dispatch(path []string, event domain.Event)
	ListenerCount() int
}

type listener struct {
	id        ListenerID
	target    string
	eventType domain.EventType
	handler   EventHandler
}

type key struct {
	target    string
	eventType domain.EventType
}

// bus is the concrete implementation of EventBus. Dispatch is synchronous:
// handlers run on the caller's goroutine, in subscription order, for each
// target of the propagation path in turn.
type bus struct {
	mu       sync.RWMutex
	nextID   ListenerID
	handlers map[key][]*listener
	byID     map[ListenerID]*listener
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[key][]*listener),
		byID:     make(map[ListenerID]*listener),
	}
}

// Subscribe registers handler for events of eventType reaching target
func (b *bus) Subscribe(target string, eventType domain.EventType, handler EventHandler) ListenerID {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	l := &listener{id: b.nextID, target: target, eventType: eventType, handler: handler}
	k := key{target, eventType}
	b.handlers[k] = append(b.handlers[k], l)
	b.byID[l.id] = l
	return l.id
}

// Unsubscribe removes a listener. It returns false if the id is unknown or
// was already removed.
func (b *bus) Unsubscribe(id ListenerID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	l, ok := b.byID[id]
	if !ok {
		return false
	}
	delete(b.byID, id)

	k := key{l.target, l.eventType}
	handlers := b.handlers[k]
	for i, h := range handlers {
		if h.id == id {
			// Copy so an in-flight dispatch keeps its own snapshot
			next := make([]*listener, 0, len(handlers)-1)
			next = append(next, handlers[:i]...)
			next = append(next, handlers[i+1:]...)
			if len(next) == 0 {
				delete(b.handlers, k)
			} else {
				b.handlers[k] = next
			}
			break
		}
	}
	return true
}

// Dispatch delivers event to every target of path, nearest first
func (b *bus) Dispatch(path []string, event domain.Event) {
	for _, target := range path {
		b.mu.RLock()
		handlers := b.handlers[key{target, event.Type()}]
		b.mu.RUnlock()

		for _, l := range handlers {
			// Listeners removed by an earlier handler in this turn do not fire
			if !b.active(l.id) {
				continue
			}
			b.call(l, event)
		}
	}
}

// ListenerCount returns the number of live subscriptions
func (b *bus) ListenerCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.byID)
}

func (b *bus) active(id ListenerID) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.byID[id]
	return ok
}

func (b *bus) call(l *listener, event domain.Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s on %s: %v\nStack: %s", event.Type(), l.target, r, debug.Stack())
		}
	}()
	l.handler(event)
}
