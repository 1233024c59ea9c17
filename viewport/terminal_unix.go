//go:build !windows

package viewport

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// querySize returns the terminal width using the TIOCGWINSZ ioctl.
func (t *Terminal) querySize() (int, error) {
	ws, err := unix.IoctlGetWinsize(int(t.file.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, err
	}
	return int(ws.Col), nil
}

// listen emits on every SIGWINCH until stop is closed. The signal is
// registered before listen returns so no resize is missed after Subscribe.
func (t *Terminal) listen(stop <-chan struct{}) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)

	go func() {
		defer signal.Stop(ch)
		for {
			select {
			case <-stop:
				return
			case <-ch:
				t.emitter.Emit()
			}
		}
	}()
}
