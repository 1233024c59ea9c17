package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestRenderStatusWide(t *testing.T) {
	out := RenderStatus(Status{Width: 140, Height: 40, Breakpoint: 80, Narrow: false, Transitions: 2})

	assert.Contains(t, out, LabelWide)
	assert.NotContains(t, out, LabelNarrow)
	assert.Contains(t, out, "width 140")
	assert.Contains(t, out, "breakpoint 80")
	assert.Contains(t, out, "transitions 2")
	assert.Contains(t, out, "╭", "wide layout is boxed")
}

func TestRenderStatusNarrow(t *testing.T) {
	out := RenderStatus(Status{Width: 60, Height: 20, Breakpoint: 80, Narrow: true})

	assert.Contains(t, out, LabelNarrow)
	assert.NotContains(t, out, "╭", "narrow layout is not boxed")

	lines := strings.Split(out, "\n")
	assert.GreaterOrEqual(t, len(lines), 4, "narrow layout stacks one item per line")
}

func TestRenderStatusTruncatesToWidth(t *testing.T) {
	for _, width := range []int{10, 25, 40} {
		out := RenderStatus(Status{Width: width, Breakpoint: 5, Narrow: false, Help: "q quit • ? more"})
		for _, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), width, "line %q exceeds width %d", line, width)
		}
	}
}

func TestRenderStatusHelp(t *testing.T) {
	out := RenderStatus(Status{Width: 120, Breakpoint: 80, Help: "q quit"})
	lines := strings.Split(out, "\n")
	assert.Equal(t, "q quit", strings.TrimRight(lines[len(lines)-1], " "))

	out = RenderStatus(Status{Width: 120, Breakpoint: 80})
	assert.NotContains(t, out, "q quit")
}

func TestRenderLine(t *testing.T) {
	assert.Contains(t, RenderLine(70, 80, true), LabelNarrow)
	assert.Contains(t, RenderLine(70, 80, true), "width=70 breakpoint=80")
	assert.Contains(t, RenderLine(100, 80, false), LabelWide)
}
