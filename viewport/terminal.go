package viewport

import (
	"os"
	"sync"
	"time"

	"viewport-watch/log"
)

// DefaultPollInterval is how often a Terminal polls for size changes on
// platforms without a resize signal.
const DefaultPollInterval = 500 * time.Millisecond

// Terminal is a Source backed by a terminal file descriptor.
type Terminal struct {
	file         *os.File
	fallback     int
	pollInterval time.Duration

	mu      sync.Mutex
	last    int
	stop    chan struct{}
	emitter Emitter
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithPollInterval sets the polling interval used where no resize signal exists.
func WithPollInterval(d time.Duration) TerminalOption {
	return func(t *Terminal) {
		if d > 0 {
			t.pollInterval = d
		}
	}
}

// WithFallbackWidth sets the width reported before any successful size query.
func WithFallbackWidth(width int) TerminalOption {
	return func(t *Terminal) {
		t.fallback = width
	}
}

// NewTerminal returns a Source reporting the width of the terminal attached to f.
func NewTerminal(f *os.File, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		file:         f,
		fallback:     FallbackWidth,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Width returns the terminal width in columns. If the size cannot be queried
// it returns the last known width, or the fallback width if there is none.
func (t *Terminal) Width() int {
	width, err := t.querySize()

	t.mu.Lock()
	defer t.mu.Unlock()

	if err != nil || width <= 0 {
		if t.last > 0 {
			log.WarningLog.Printf("failed to get terminal size, keeping last width %d: %v", t.last, err)
			return t.last
		}
		log.WarningLog.Printf("failed to get terminal size, using fallback width %d: %v", t.fallback, err)
		return t.fallback
	}
	t.last = width
	return width
}

// Subscribe registers handler for terminal resizes. The platform listener
// runs while at least one handler is registered.
func (t *Terminal) Subscribe(handler func()) (unsubscribe func()) {
	t.mu.Lock()
	remove := t.emitter.Subscribe(handler)
	var stop chan struct{}
	if t.stop == nil {
		stop = make(chan struct{})
		t.stop = stop
	}
	t.mu.Unlock()

	if stop != nil {
		t.listen(stop)
	}

	return sync.OnceFunc(func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		remove()
		if t.emitter.Len() == 0 && t.stop != nil {
			close(t.stop)
			t.stop = nil
		}
	})
}

// Subscribers returns the number of registered handlers.
func (t *Terminal) Subscribers() int {
	return t.emitter.Len()
}

// Close stops the listener and drops every handler.
func (t *Terminal) Close() {
	t.emitter.Clear()
	t.stopListening()
}

func (t *Terminal) stopListening() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}
