package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	header    lipgloss.Style
	subheader lipgloss.Style
	label     lipgloss.Style
	selected  lipgloss.Style
	normal    lipgloss.Style
	dim       lipgloss.Style
	category  lipgloss.Style
	errText   lipgloss.Style
	status    lipgloss.Style
	modal     lipgloss.Style
	help      lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		subheader: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		normal:    lipgloss.NewStyle(),
		dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		category:  lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
		errText:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 2),
		help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
