// Package harness provides test utilities for Bubble Tea models.
// It drives a model through the same lifecycle a tea.Program would: Init,
// an initial window size, then input and resize messages.
package harness

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a tea.Model for testing
type Harness struct {
	t       *testing.T
	model   tea.Model
	width   int
	height  int
	initCmd tea.Cmd
}

// New initializes model and sends it the given window size.
func New(t *testing.T, model tea.Model, width, height int) *Harness {
	t.Helper()
	h := &Harness{
		t:      t,
		model:  model,
		width:  width,
		height: height,
	}
	h.initCmd = model.Init()
	h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
	return h
}

// InitCmd returns the command the model's Init produced.
func (h *Harness) InitCmd() tea.Cmd {
	return h.initCmd
}

// Model returns the current model.
func (h *Harness) Model() tea.Model {
	return h.model
}

// SendMsg sends a tea.Msg to the model and updates it
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// SendKey sends a key press message
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (Enter, Ctrl+C, etc.)
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Resize simulates a terminal resize
func (h *Harness) Resize(width, height int) tea.Cmd {
	h.width = width
	h.height = height
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// Width returns the last width sent to the model.
func (h *Harness) Width() int {
	return h.width
}

// View returns the current rendered view
func (h *Harness) View() string {
	return h.model.View()
}

// AssertViewContains fails the test if the view does not contain substr.
func (h *Harness) AssertViewContains(substr string) {
	h.t.Helper()
	if view := h.View(); !strings.Contains(view, substr) {
		h.t.Errorf("view does not contain %q\nview:\n%s", substr, view)
	}
}

// AssertViewNotContains fails the test if the view contains substr.
func (h *Harness) AssertViewNotContains(substr string) {
	h.t.Helper()
	if view := h.View(); strings.Contains(view, substr) {
		h.t.Errorf("view unexpectedly contains %q\nview:\n%s", substr, view)
	}
}

// Quits reports whether cmd asks the program to quit.
func Quits(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
