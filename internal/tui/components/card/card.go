// Package card renders the deck page: the current phrase with its favorite
// state, the page indicator and the paging controls.
package card

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Messages emitted for the parent to apply to app state.
type (
	PreviousMsg       struct{}
	NextMsg           struct{}
	ShuffleMsg        struct{}
	ToggleFavoriteMsg struct{}
	ShareMsg          struct{}
)

// maxDots is the largest deck drawn as a row of dots; larger decks show
// "i / n".
const maxDots = 20

var (
	phraseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Padding(2, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Align(lipgloss.Center)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("219")).
			Bold(true).
			MarginBottom(1)

	favoriteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	controlStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 2)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Padding(0, 2)
	activeDot     = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Render("●")
	inactiveDot   = mutedStyle.Render("○")
)

// Page is everything the card view draws.
type Page struct {
	Phrase      string
	Index       int
	Total       int
	Favorite    bool
	CanPrevious bool
	CanNext     bool
}

type KeyMap struct {
	Previous key.Binding
	Next     key.Binding
	Shuffle  key.Binding
	Favorite key.Binding
	Share    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "shuffle"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
	}
}

type Model struct {
	Keys   KeyMap
	page   Page
	width  int
	height int
}

func New() Model {
	return Model{Keys: DefaultKeyMap()}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetPage(p Page) {
	m.page = p
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.Keys.Previous):
		if m.page.CanPrevious {
			return m, emit(PreviousMsg{})
		}
	case key.Matches(keyMsg, m.Keys.Next):
		if m.page.CanNext {
			return m, emit(NextMsg{})
		}
	case key.Matches(keyMsg, m.Keys.Shuffle):
		return m, emit(ShuffleMsg{})
	case key.Matches(keyMsg, m.Keys.Favorite):
		return m, emit(ToggleFavoriteMsg{})
	case key.Matches(keyMsg, m.Keys.Share):
		return m, emit(ShareMsg{})
	}
	return m, nil
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m Model) View() string {
	width := 56
	if m.width > 0 && m.width-8 < width {
		width = max(m.width-8, 20)
	}

	heart := mutedStyle.Render("♡")
	if m.page.Favorite {
		heart = favoriteStyle.Render("♥")
	}

	prev := disabledStyle.Render("‹ prev")
	if m.page.CanPrevious {
		prev = controlStyle.Render("‹ prev")
	}
	next := disabledStyle.Render("next ›")
	if m.page.CanNext {
		next = controlStyle.Render("next ›")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		headingStyle.Render("I Am"),
		phraseStyle.Width(width).Render(m.page.Phrase),
		"",
		heart,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, prev, Indicator(m.page.Index, m.page.Total), next),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Indicator renders the page position as dots, or as "i / n" for long decks.
func Indicator(index, total int) string {
	if total <= 0 {
		return ""
	}
	if total > maxDots {
		return mutedStyle.Render(fmt.Sprintf("%d / %d", index+1, total))
	}
	dots := make([]string, total)
	for i := range dots {
		dots[i] = inactiveDot
		if i == index {
			dots[i] = activeDot
		}
	}
	return strings.Join(dots, " ")
}
