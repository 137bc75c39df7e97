package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Key      lipgloss.Style
	Punct    lipgloss.Style
	Value    lipgloss.Style
	Selected lipgloss.Style
	Cursor   string

	Title      lipgloss.Style
	Status     lipgloss.Style
	StatusErr  lipgloss.Style
	FindPrompt lipgloss.Style
	FindMiss   lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		Punct:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Selected: lipgloss.NewStyle().Underline(true),
		Cursor:   "> ",

		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		StatusErr:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		FindPrompt: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		FindMiss:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
