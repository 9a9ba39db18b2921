package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/nila/internal/app"
	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/tui/components/card"
	"github.com/julianstephens/nila/internal/tui/components/favlist"
	"github.com/julianstephens/nila/internal/tui/components/week"
	"github.com/julianstephens/nila/internal/tui/handlers"
)

// chromeHeight is the rows taken by the tab bar, toast line and help.
const chromeHeight = 4

type Model struct {
	state       *app.State
	session     constants.SessionState
	keys        KeyMap
	help        help.Model
	card        card.Model
	favorites   favlist.Model
	week        week.Model
	form        *huh.Form
	profileForm *handlers.ProfileFormModel
	quitting    bool
	width       int
	height      int
}

func NewModel(st *app.State) Model {
	m := Model{
		state:     st,
		session:   constants.StateDeck,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		card:      card.New(),
		favorites: favlist.New(0, 0),
		week:      week.New(),
	}
	m.refresh()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.session {
	case constants.StateDeck:
		k := m.card.Keys
		keys = append(keys, k.Previous, k.Next, k.Favorite, k.Share)
	case constants.StateStreak:
		keys = append(keys, m.week.Keys.Mark)
	case constants.StateProfile:
		keys = []key.Binding{m.keys.Back}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	views := []key.Binding{m.keys.Deck, m.keys.Favorites, m.keys.Streak, m.keys.Profile}

	var actions []key.Binding
	switch m.session {
	case constants.StateDeck:
		k := m.card.Keys
		actions = []key.Binding{k.Previous, k.Next, k.Shuffle, k.Favorite, k.Share}
	case constants.StateStreak:
		actions = []key.Binding{m.week.Keys.Mark}
	case constants.StateProfile:
		actions = []key.Binding{m.keys.Back}
	}

	return [][]key.Binding{global, views, actions}
}

// clockTickMsg re-reads the clock so the week view follows midnight.
type clockTickMsg time.Time

func tickClock() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(constants.AppName), tickClock())
}

// Session returns the active view.
func (m Model) Session() constants.SessionState {
	return m.session
}

// refresh copies app state into the view components.
func (m *Model) refresh() {
	d := m.state.Deck()
	m.card.SetPage(card.Page{
		Phrase:      d.Current(),
		Index:       d.Index(),
		Total:       d.Len(),
		Favorite:    m.state.CurrentIsFavorite(),
		CanPrevious: d.CanPrevious(),
		CanNext:     d.CanNext(),
	})
	m.favorites.SetFavorites(m.state.FavoriteIndices(), d.Phrases())
	m.week.SetWeek(week.Week{
		Today:  m.state.Today(),
		Days:   m.state.WeekWindow(),
		Marked: m.state.WeekStatus(),
		Run:    m.state.CurrentRun(),
	})
}

func (m *Model) resize() {
	h := max(m.height-chromeHeight, 0)
	m.card.SetSize(m.width, h)
	m.week.SetSize(m.width, h)
	fw, fh := docStyle.GetFrameSize()
	m.favorites.SetSize(max(m.width-fw, 0), max(h-fh, 0))
}
