package app

import (
	"context"
	"os"

	"viewport-watch/config"
	"viewport-watch/log"
	"viewport-watch/ui"
	"viewport-watch/viewport"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config) error {
	h := newHome(ctx, cfg, viewport.InitialWidth(os.Stdout))
	// The program may exit without a quit key (context cancel, kill).
	defer h.deactivate()

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(h, opts...)
	_, err := p.Run()
	return err
}

type home struct {
	ctx context.Context

	// appConfig stores persistent application configuration
	appConfig *config.Config

	// window is fed every tea.WindowSizeMsg the program receives.
	window *viewport.Window
	// watcher classifies window as narrow or wide. It is attached while the
	// model is active.
	watcher *viewport.Watcher
	// unobserve removes the watcher's change callback.
	unobserve func()

	// transitions counts narrow/wide changes since start.
	transitions int

	keys keyMap
	help help.Model
}

func newHome(ctx context.Context, cfg *config.Config, width int) *home {
	window := viewport.NewWindow(width)
	h := &home{
		ctx:       ctx,
		appConfig: cfg,
		window:    window,
		watcher:   viewport.New(window, viewport.WithBreakpoint(cfg.Breakpoint)),
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	h.unobserve = h.watcher.OnChange(h.onNarrowChange)
	return h
}

func (m *home) onNarrowChange(narrow bool) {
	m.transitions++
	state := "wide"
	if narrow {
		state = "narrow"
	}
	log.InfoLog.Printf("viewport is now %s (width=%d breakpoint=%d)", state, m.window.Width(), m.watcher.Breakpoint())
}

// Init marks the model active: the watcher starts following resizes.
func (m *home) Init() tea.Cmd {
	m.watcher.Attach()
	return nil
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.window.Resize(msg)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.handleQuit()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	m.deactivate()
	return m, tea.Quit
}

// deactivate detaches the watcher. It is safe to call more than once.
func (m *home) deactivate() {
	m.watcher.Detach()
	m.unobserve()
}

func (m *home) View() string {
	return ui.RenderStatus(ui.Status{
		Width:       m.window.Width(),
		Height:      m.window.Height(),
		Breakpoint:  m.watcher.Breakpoint(),
		Narrow:      m.watcher.IsNarrow(),
		Transitions: m.transitions,
		Help:        m.help.View(m.keys),
	})
}
