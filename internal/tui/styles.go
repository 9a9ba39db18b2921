package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared with the card and week views.
var (
	pink     = lipgloss.Color("212")
	rose     = lipgloss.Color("204")
	lavender = lipgloss.Color("183")
	plum     = lipgloss.Color("54")
	muted    = lipgloss.Color("245")
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(pink).
			Padding(0, 2).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lavender).
				Background(plum).
				Padding(0, 2)

	tabGapStyle = lipgloss.NewStyle().Foreground(muted)

	warningStyle = lipgloss.NewStyle().
			Foreground(rose).
			Italic(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)
