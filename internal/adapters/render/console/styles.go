package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	partner    lipgloss.Style
	self       lipgloss.Style
	detail     lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	active     lipgloss.Style
	badge      lipgloss.Style
	invitation lipgloss.Style
	clock      lipgloss.Style
	barBracket lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		partner:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		self:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		active:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		badge:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		invitation: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		clock:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
