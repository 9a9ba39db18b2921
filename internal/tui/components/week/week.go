// Package week renders the streak view: one dot per day of the current
// Monday-first week and the running day count.
package week

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nila/internal/utils"
)

type MarkTodayMsg struct{}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(5).
			Align(lipgloss.Center)

	todayLabelStyle = labelStyle.
			Foreground(lipgloss.Color("255")).
			Bold(true)

	markedDot   = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Width(5).Align(lipgloss.Center).Render("●")
	unmarkedDot = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Width(5).Align(lipgloss.Center).Render("○")

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("208")).
			Bold(true).
			Padding(0, 2).
			MarginTop(1)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			MarginTop(1)
)

// Week is the data drawn by the view.
type Week struct {
	Today  time.Time
	Days   []time.Time
	Marked []bool
	Run    int
}

type KeyMap struct {
	Mark key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Mark: key.NewBinding(
			key.WithKeys("m", " "),
			key.WithHelp("m", "mark today"),
		),
	}
}

type Model struct {
	Keys   KeyMap
	week   Week
	width  int
	height int
}

func New() Model {
	return Model{Keys: DefaultKeyMap()}
}

func (m *Model) SetWeek(w Week) {
	m.week = w
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.Keys.Mark) {
		return m, func() tea.Msg { return MarkTodayMsg{} }
	}
	return m, nil
}

// markedToday reports whether today's dot is filled.
func (m Model) markedToday() bool {
	todayKey := utils.DateKey(m.week.Today)
	for i, day := range m.week.Days {
		if utils.DateKey(day) == todayKey && i < len(m.week.Marked) {
			return m.week.Marked[i]
		}
	}
	return false
}

func (m Model) View() string {
	labels := utils.WeekdayLabels()
	todayKey := utils.DateKey(m.week.Today)

	var header, dots []string
	for i, day := range m.week.Days {
		label := labels[i%len(labels)]
		if utils.DateKey(day) == todayKey {
			header = append(header, todayLabelStyle.Render(label))
		} else {
			header = append(header, labelStyle.Render(label))
		}
		if i < len(m.week.Marked) && m.week.Marked[i] {
			dots = append(dots, markedDot)
		} else {
			dots = append(dots, unmarkedDot)
		}
	}

	action := buttonStyle.Render("Mark today (m)")
	if m.markedToday() {
		action = doneStyle.Render("Marked for today")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("This week"),
		lipgloss.JoinHorizontal(lipgloss.Top, header...),
		lipgloss.JoinHorizontal(lipgloss.Top, dots...),
		"",
		Flame(m.week.Run),
		action,
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Flame renders the running streak counter.
func Flame(run int) string {
	unit := "days"
	if run == 1 {
		unit = "day"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Render(fmt.Sprintf("🔥 %d %s", run, unit))
}
