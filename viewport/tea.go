package viewport

import (
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Window is a Source fed by a Bubble Tea program. The model forwards every
// tea.WindowSizeMsg to Resize, which notifies subscribers synchronously on
// the program's update loop.
type Window struct {
	mu      sync.Mutex
	width   int
	height  int
	emitter Emitter
}

// NewWindow returns a Window reporting width until the first Resize.
func NewWindow(width int) *Window {
	return &Window{width: width}
}

// Width returns the last width received.
func (w *Window) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

// Height returns the last height received.
func (w *Window) Height() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}

// Subscribe registers handler for window size messages.
func (w *Window) Subscribe(handler func()) (unsubscribe func()) {
	return w.emitter.Subscribe(handler)
}

// Subscribers returns the number of registered handlers.
func (w *Window) Subscribers() int {
	return w.emitter.Len()
}

// Resize records the new size and notifies subscribers.
func (w *Window) Resize(msg tea.WindowSizeMsg) {
	w.mu.Lock()
	w.width = msg.Width
	w.height = msg.Height
	w.mu.Unlock()

	w.emitter.Emit()
}

// SizeCmd queries the size of the terminal attached to f and reports it as a
// tea.WindowSizeMsg. It returns nil if f is not a terminal.
func SizeCmd(f *os.File) tea.Cmd {
	return func() tea.Msg {
		width, height, err := term.GetSize(int(f.Fd()))
		if err != nil {
			return nil
		}
		return tea.WindowSizeMsg{Width: width, Height: height}
	}
}

// InitialWidth returns the current width of the terminal attached to f, or
// FallbackWidth when f is not a terminal.
func InitialWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return FallbackWidth
	}
	return width
}
