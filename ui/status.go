package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Status is what the status view shows.
type Status struct {
	Width       int
	Height      int
	Breakpoint  int
	Narrow      bool
	Transitions int
	// Help is rendered below the status when non-empty.
	Help string
}

// RenderStatus renders the status view. A narrow viewport gets a single
// unboxed column; a wide one gets a card with everything on one row.
// Every line is cut to s.Width so the view never wraps.
func RenderStatus(s Status) string {
	badge := StateBadge(s.Narrow)
	width := TextStyles.Primary.Render(fmt.Sprintf("width %d", s.Width))
	breakpoint := TextStyles.Muted.Render(fmt.Sprintf("breakpoint %d", s.Breakpoint))
	transitions := TextStyles.Muted.Render(fmt.Sprintf("transitions %d", s.Transitions))

	var body string
	if s.Narrow {
		body = lipgloss.JoinVertical(lipgloss.Left, badge, width, breakpoint, transitions)
	} else {
		row := lipgloss.JoinHorizontal(lipgloss.Center,
			badge, "  ", width, "  ", breakpoint, "  ", transitions)
		body = CardStyle().Render(row)
	}

	if s.Help != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", s.Help)
	}
	return truncateLines(body, s.Width)
}

// RenderLine renders a single status line for non-interactive output.
func RenderLine(width, breakpoint int, narrow bool) string {
	return fmt.Sprintf("%s %s", StateBadge(narrow),
		TextStyles.Muted.Render(fmt.Sprintf("width=%d breakpoint=%d", width, breakpoint)))
}

func truncateLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = truncate.String(line, uint(width))
	}
	return strings.Join(lines, "\n")
}
