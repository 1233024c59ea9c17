package ui

import "github.com/charmbracelet/lipgloss"

// Semantic Color Palette
// Narrow and wide each have a distinct color and label, so the state reads
// without color too.
var (
	// Narrow marks a viewport at or below the breakpoint.
	// Color: Amber, Label: "NARROW"
	Narrow = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	// Wide marks a viewport above the breakpoint.
	// Color: Green, Label: "WIDE"
	Wide = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}
)

// UI chrome colors - structural elements
var (
	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
)

// State labels
const (
	LabelNarrow = "NARROW"
	LabelWide   = "WIDE"
)

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary lipgloss.Style
	Muted   lipgloss.Style
}{
	Primary: lipgloss.NewStyle().Foreground(TextPrimary),
	Muted:   lipgloss.NewStyle().Foreground(TextMuted),
}

// BadgeStyle creates a styled badge with the given color
func BadgeStyle(color lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(color).
		Bold(true).
		Padding(0, 1)
}

// StateBadge returns the NARROW or WIDE badge.
func StateBadge(narrow bool) string {
	if narrow {
		return BadgeStyle(Narrow).Render(LabelNarrow)
	}
	return BadgeStyle(Wide).Render(LabelWide)
}

// CardStyle creates a style for card-like containers
func CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
}
