package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/models"
	"github.com/julianstephens/nila/internal/tui/components/toast"
	"github.com/julianstephens/nila/internal/tui/components/week"
	"github.com/julianstephens/nila/internal/tui/handlers"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.session {
	case constants.StateDeck:
		content = m.card.View()
	case constants.StateFavorites:
		content = docStyle.Render(m.favorites.View())
	case constants.StateStreak:
		content = m.week.View()
	case constants.StateProfile:
		content = m.viewProfile()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		toast.View(m.state.Toast()),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, s := range handlers.Tabs {
		if i > 0 {
			tabs = append(tabs, tabGapStyle.Render(" "))
		}
		if m.session == s {
			tabs = append(tabs, activeTabStyle.Render(handlers.TabTitle(s)))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(handlers.TabTitle(s)))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	flame := week.Flame(m.state.CurrentRun())
	if gap := m.width - lipgloss.Width(bar) - lipgloss.Width(flame) - 1; gap > 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, bar, lipgloss.NewStyle().Width(gap).Render(""), flame)
	}
	return bar
}

func (m Model) viewProfile() string {
	if m.form == nil {
		return ""
	}
	view := m.form.View()
	if m.profileForm != nil && (models.Profile{Email: m.profileForm.Email}).EmailWarning() {
		view = lipgloss.JoinVertical(lipgloss.Left, view, warningStyle.Render(constants.MsgInvalidEmail))
	}
	return docStyle.Render(view)
}
