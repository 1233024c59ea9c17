// Package viewport tracks whether the terminal is at or below a width breakpoint.
//
// A Watcher reads the width of a Source once at construction and again on
// every resize notification the Source delivers while the watcher is
// attached. Sources exist for a real terminal (SIGWINCH on Unix, polling on
// Windows) and for Bubble Tea programs (tea.WindowSizeMsg).
package viewport

// Width breakpoints
const (
	// DefaultBreakpoint is the width, in columns, at or below which the
	// viewport counts as narrow when no breakpoint is configured.
	DefaultBreakpoint = 80

	// FallbackWidth is reported by a Terminal whose size cannot be queried.
	FallbackWidth = 80
)
