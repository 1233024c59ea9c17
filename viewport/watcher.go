package viewport

import (
	"context"
	"sync"

	"viewport-watch/log"
)

// Source is the host window a Watcher observes.
type Source interface {
	// Width returns the current viewport width.
	Width() int
	// Subscribe registers handler for resize notifications. The returned
	// func removes the registration.
	Subscribe(handler func()) (unsubscribe func())
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithBreakpoint sets the width at or below which the viewport is narrow.
// The value is not validated: zero or negative breakpoints are accepted.
func WithBreakpoint(breakpoint int) Option {
	return func(w *Watcher) {
		w.breakpoint = breakpoint
	}
}

// Watcher tracks whether a Source's width is at or below a breakpoint.
//
// A Watcher starts detached. Attach subscribes it to the source and Detach
// removes the subscription; at most one subscription exists at a time.
type Watcher struct {
	source     Source
	breakpoint int

	mu          sync.Mutex
	narrow      bool
	unsubscribe func()

	listeners map[int]func(bool)
	nextID    int
}

// New creates a Watcher for source and computes the initial narrow value
// from the source's current width. It does not subscribe to resizes.
func New(source Source, opts ...Option) *Watcher {
	w := &Watcher{
		source:     source,
		breakpoint: DefaultBreakpoint,
		listeners:  make(map[int]func(bool)),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.narrow = source.Width() <= w.breakpoint
	return w
}

// Breakpoint returns the watcher's threshold.
func (w *Watcher) Breakpoint() int {
	return w.breakpoint
}

// IsNarrow reports the last computed value.
func (w *Watcher) IsNarrow() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.narrow
}

// Attached reports whether the watcher is subscribed to its source.
func (w *Watcher) Attached() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.unsubscribe != nil
}

// Attach subscribes the watcher to resize notifications. Calling Attach on an
// attached watcher does nothing.
func (w *Watcher) Attach() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.unsubscribe != nil {
		log.WatchTrace("attach ignored: already attached (breakpoint=%d)", w.breakpoint)
		return
	}
	w.unsubscribe = w.source.Subscribe(w.onResize)
	log.WatchTrace("attached (breakpoint=%d narrow=%t)", w.breakpoint, w.narrow)
}

// Detach removes the resize subscription. It is safe to call on a detached
// watcher. Once Detach returns, resize notifications no longer change the
// narrow value.
func (w *Watcher) Detach() {
	w.mu.Lock()
	unsubscribe := w.unsubscribe
	w.unsubscribe = nil
	w.mu.Unlock()

	if unsubscribe == nil {
		return
	}
	unsubscribe()
	log.WatchTrace("detached (breakpoint=%d)", w.breakpoint)
}

// Run attaches the watcher and blocks until ctx is done, then detaches.
func (w *Watcher) Run(ctx context.Context) {
	w.Attach()
	defer w.Detach()
	<-ctx.Done()
}

// OnChange registers fn to be called with the new value whenever the narrow
// value changes. Calls happen on the goroutine delivering the resize.
func (w *Watcher) OnChange(fn func(narrow bool)) (unsubscribe func()) {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn
	w.mu.Unlock()

	return sync.OnceFunc(func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.listeners, id)
	})
}

// onResize recomputes the narrow value. Notifications that arrive after
// Detach are dropped.
func (w *Watcher) onResize() {
	width := w.source.Width()

	w.mu.Lock()
	if w.unsubscribe == nil {
		w.mu.Unlock()
		log.WatchTrace("resize dropped: detached (width=%d)", width)
		return
	}
	narrow := width <= w.breakpoint
	changed := narrow != w.narrow
	w.narrow = narrow

	var notify []func(bool)
	if changed {
		notify = make([]func(bool), 0, len(w.listeners))
		for _, fn := range w.listeners {
			notify = append(notify, fn)
		}
	}
	w.mu.Unlock()

	log.GetResizeStats().RecordResize(width, changed)
	log.WatchTrace("resize width=%d breakpoint=%d narrow=%t changed=%t", width, w.breakpoint, narrow, changed)

	for _, fn := range notify {
		fn(narrow)
	}
}
