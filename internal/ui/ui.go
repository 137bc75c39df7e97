// Package ui hosts the nav core inside a bubbletea program. The
// program loop is the event source and driver: key and resize events
// are mapped to core messages, each input drains the core's
// follow-up-message chain before the next render, and the render pass
// writes its derived state (field-count high-water mark, selected
// field name, clamped value scroll) back into the core.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"jlview/internal/nav"
	"jlview/internal/settings"
	"jlview/internal/store"
	"jlview/internal/util/logx"
)

// maxChain bounds the follow-up-message chain per input. The two
// chains the core produces (find retrigger, find Enter) have length
// two; the cap only guards against a future accidental cycle.
const maxChain = 8

type Model struct {
	nav    nav.State
	styles Styles

	// view-only scroll offsets; the core tracks selections, the view
	// keeps them visible
	mainOffset   int
	detailOffset int
}

func New(st *store.Store, cfg settings.Settings) *Model {
	return &Model{
		nav:    nav.NewState(st, cfg, 80, 24),
		styles: NewStyles(),
	}
}

// Run starts the viewer and blocks until the user quits.
func Run(st *store.Store, cfg settings.Settings) error {
	p := tea.NewProgram(New(st, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.drain(nav.Resized{Width: msg.Width, Height: msg.Height})
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if nm := toNavMsg(msg); nm != nil {
			m.drain(nm)
		}
	}
	if m.nav.Screen == nav.Done {
		return m, tea.Quit
	}
	return m, nil
}

// drain feeds one message into the core and keeps going while the
// core returns follow-ups.
func (m *Model) drain(msg nav.Msg) {
	for i := 0; msg != nil && i < maxChain; i++ {
		m.nav, msg = m.nav.Update(msg)
	}
	if msg != nil {
		logx.Warnf("message chain cut off at %d steps", maxChain)
	}
}

func (m *Model) View() string {
	switch m.nav.Screen {
	case nav.Main:
		return m.viewMain()
	case nav.ObjectDetails:
		return m.viewDetails()
	case nav.ValueDetails:
		return m.viewValue()
	default:
		return ""
	}
}
