//go:build windows

package viewport

import (
	"time"

	"golang.org/x/term"
)

// querySize returns the console width.
func (t *Terminal) querySize() (int, error) {
	width, _, err := term.GetSize(int(t.file.Fd()))
	return width, err
}

// listen monitors terminal size changes using polling on Windows.
func (t *Terminal) listen(stop <-chan struct{}) {
	ticker := time.NewTicker(t.pollInterval)

	go func() {
		defer ticker.Stop()

		lastWidth := t.Width()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if width := t.Width(); width != lastWidth {
					lastWidth = width
					t.emitter.Emit()
				}
			}
		}
	}()
}
