// Package log provides logging utilities including a debug mode with watcher tracing.
// Enable debug mode by setting VW_DEBUG=1 environment variable.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Debug mode configuration
var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "viewport-watch-debug.log")

// InitDebug initializes debug logging if VW_DEBUG=1 is set.
// Initialize calls it, so main does not need to.
func InitDebug() {
	if os.Getenv("VW_DEBUG") != "1" {
		// Initialize DebugLog as a no-op logger to prevent nil pointer panics
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f

	DebugLog.Println("Debug mode enabled")
	DebugLog.Printf("Debug log: %s", debugLogFileName)
}

// CloseDebug closes the debug log file.
func CloseDebug() {
	if debugLogFile != nil {
		LogStats()
		_ = debugLogFile.Close()
		debugLogFile = nil
		fmt.Println("wrote debug logs to " + debugLogFileName)
	}
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// WatchTrace logs watcher lifecycle and resize events.
func WatchTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[WATCH] "+format, v...)
	}
}

// ResizeStats counts resize notifications and breakpoint crossings for the
// debug summary written on CloseDebug.
type ResizeStats struct {
	mu          sync.Mutex
	resizes     int64
	transitions int64
	lastWidth   int
	lastAt      time.Time
}

var stats = &ResizeStats{}

// GetResizeStats returns the global resize statistics.
func GetResizeStats() *ResizeStats {
	return stats
}

// RecordResize records one processed resize notification.
func (s *ResizeStats) RecordResize(width int, crossed bool) {
	if !DebugEnabled {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.resizes++
	if crossed {
		s.transitions++
	}
	s.lastWidth = width
	s.lastAt = time.Now()
}

// Counts returns the number of resizes and transitions recorded so far.
func (s *ResizeStats) Counts() (resizes, transitions int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resizes, s.transitions
}

// String returns a summary of the recorded statistics.
func (s *ResizeStats) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resizes == 0 {
		return "no resize events recorded"
	}
	return fmt.Sprintf("resizes=%d transitions=%d last_width=%d last_at=%s",
		s.resizes, s.transitions, s.lastWidth, s.lastAt.Format(time.RFC3339))
}

// Reset clears all recorded statistics.
func (s *ResizeStats) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resizes = 0
	s.transitions = 0
	s.lastWidth = 0
	s.lastAt = time.Time{}
}

// LogStats logs the current resize statistics.
func LogStats() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[STATS] %s", stats)
	}
}
