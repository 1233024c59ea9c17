package viewport

import "sync"

// Emitter fans a resize notification out to every subscribed handler.
// It is safe for concurrent use.
type Emitter struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func()
}

// Subscribe registers handler and returns a func that removes it.
// The returned func may be called any number of times.
func (e *Emitter) Subscribe(handler func()) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.handlers == nil {
		e.handlers = make(map[int]func())
	}
	id := e.nextID
	e.nextID++
	e.handlers[id] = handler

	return sync.OnceFunc(func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.handlers, id)
	})
}

// Emit calls every handler registered at the time of the call.
// Handlers run on the caller's goroutine, outside the emitter lock, so they
// may subscribe or unsubscribe freely.
func (e *Emitter) Emit() {
	e.mu.Lock()
	snapshot := make([]func(), 0, len(e.handlers))
	for _, h := range e.handlers {
		snapshot = append(snapshot, h)
	}
	e.mu.Unlock()

	for _, h := range snapshot {
		h()
	}
}

// Len returns the number of live subscriptions.
func (e *Emitter) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers)
}

// Clear drops every subscription.
func (e *Emitter) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = nil
}
