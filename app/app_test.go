package app

import (
	"context"
	"os"
	"testing"

	"viewport-watch/config"
	"viewport-watch/testing/harness"
	"viewport-watch/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newTestHome(breakpoint, initialWidth int) *home {
	cfg := config.DefaultConfig()
	cfg.Breakpoint = breakpoint
	return newHome(context.Background(), cfg, initialWidth)
}

func TestHomeInitialState(t *testing.T) {
	m := newTestHome(80, 500)
	assert.False(t, m.watcher.IsNarrow(), "initial value comes from the width at construction")
	assert.False(t, m.watcher.Attached(), "model is not active before Init")

	h := harness.New(t, m, 120, 40)
	assert.Nil(t, h.InitCmd())
	assert.True(t, m.watcher.Attached())
	assert.Equal(t, 1, m.window.Subscribers())
	h.AssertViewContains(ui.LabelWide)
	h.AssertViewContains("width 120")
	h.AssertViewContains("breakpoint 80")
}

func TestHomeResizeAcrossBreakpoint(t *testing.T) {
	m := newTestHome(80, 120)
	h := harness.New(t, m, 120, 40)

	h.Resize(70, 30)
	assert.True(t, m.watcher.IsNarrow())
	h.AssertViewContains(ui.LabelNarrow)
	h.AssertViewContains("transitions 1")

	// The boundary is inclusive.
	h.Resize(80, 30)
	assert.True(t, m.watcher.IsNarrow())
	h.AssertViewContains("transitions 1")

	h.Resize(81, 30)
	assert.False(t, m.watcher.IsNarrow())
	h.AssertViewContains(ui.LabelWide)
	h.AssertViewContains("transitions 2")
}

func TestHomeQuitDetaches(t *testing.T) {
	tests := []struct {
		name string
		send func(h *harness.Harness) tea.Cmd
	}{
		{name: "q", send: func(h *harness.Harness) tea.Cmd { return h.SendKey("q") }},
		{name: "ctrl+c", send: func(h *harness.Harness) tea.Cmd { return h.SendSpecialKey(tea.KeyCtrlC) }},
		{name: "esc", send: func(h *harness.Harness) tea.Cmd { return h.SendSpecialKey(tea.KeyEsc) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestHome(80, 120)
			h := harness.New(t, m, 120, 40)

			cmd := tt.send(h)
			require.True(t, harness.Quits(cmd))
			assert.False(t, m.watcher.Attached())
			assert.Equal(t, 0, m.window.Subscribers())

			// A resize delivered after the model went inactive has no effect.
			h.Resize(40, 20)
			assert.False(t, m.watcher.IsNarrow())
			assert.Equal(t, 0, m.transitions)
		})
	}
}

func TestHomeDeactivateIsSafeTwice(t *testing.T) {
	m := newTestHome(80, 120)
	harness.New(t, m, 120, 40)

	assert.NotPanics(t, func() {
		m.deactivate()
		m.deactivate()
	})
	assert.False(t, m.watcher.Attached())
}

func TestHomeHelpToggle(t *testing.T) {
	m := newTestHome(80, 120)
	h := harness.New(t, m, 120, 40)
	require.False(t, m.help.ShowAll)

	cmd := h.SendKey("?")
	assert.False(t, harness.Quits(cmd))
	assert.True(t, m.help.ShowAll)
	h.AssertViewContains("toggle help")

	h.SendKey("?")
	assert.False(t, m.help.ShowAll)
}

func TestHomeIgnoresOtherKeys(t *testing.T) {
	m := newTestHome(80, 120)
	h := harness.New(t, m, 120, 40)

	cmd := h.SendKey("x")
	assert.Nil(t, cmd)
	assert.True(t, m.watcher.Attached())
}
