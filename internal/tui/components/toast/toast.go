// Package toast draws the transient status message and schedules its
// dismissal.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nila/internal/app"
	"github.com/julianstephens/nila/internal/constants"
)

// DismissMsg asks the parent to hide the toast identified by Token.
type DismissMsg struct {
	Token uint64
}

var style = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Bold(true).
	Padding(0, 2)

// Schedule returns a command that emits DismissMsg for token after the toast
// duration.
func Schedule(token uint64) tea.Cmd {
	return tea.Tick(constants.ToastDuration, func(time.Time) tea.Msg {
		return DismissMsg{Token: token}
	})
}

// View renders t, or nothing when it is hidden.
func View(t app.Toast) string {
	if !t.Visible || t.Message == "" {
		return ""
	}
	return style.Render(t.Message)
}
