package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"jlview/internal/nav"
)

// toNavMsg translates a terminal key event into a core message.
// Returns nil for keys the core has no meaning for. Context (find
// mode, active screen) is the core's business, not the keymap's: a
// printable rune always becomes CharInput and is simply ignored by
// screens that don't type.
func toNavMsg(msg tea.KeyMsg) nav.Msg {
	switch msg.Type {
	case tea.KeyHome:
		return nav.First{}
	case tea.KeyEnd:
		return nav.Last{}
	case tea.KeyUp:
		return nav.ScrollUp{}
	case tea.KeyDown:
		return nav.ScrollDown{}
	case tea.KeyPgUp:
		return nav.PageUp{}
	case tea.KeyPgDown:
		return nav.PageDown{}
	case tea.KeyLeft:
		return nav.ScrollLeft{}
	case tea.KeyRight:
		return nav.ScrollRight{}
	case tea.KeyEnter:
		return nav.Enter{}
	case tea.KeyEsc:
		return nav.Exit{}
	case tea.KeyBackspace:
		return nav.Backspace{}
	case tea.KeyCtrlF:
		return nav.OpenFind{}
	case tea.KeyCtrlS:
		return nav.SaveSettings{}
	case tea.KeySpace:
		return nav.CharInput{Ch: ' '}
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return nil
		}
		r := msg.Runes[0]
		if r == '/' {
			// The find trigger. While already finding, the core
			// reissues it as a literal character.
			return nav.OpenFind{}
		}
		return nav.CharInput{Ch: r}
	}
	return nil
}
