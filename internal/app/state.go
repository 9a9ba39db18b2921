// Package app holds the explicit application state shared by the TUI and
// the CLI: the deck, favorites, streak, profile and toast, plus the settings
// they depend on.
package app

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/favorites"
	"github.com/julianstephens/nila/internal/logger"
	"github.com/julianstephens/nila/internal/models"
	"github.com/julianstephens/nila/internal/persist"
	"github.com/julianstephens/nila/internal/profile"
	"github.com/julianstephens/nila/internal/share"
	"github.com/julianstephens/nila/internal/streak"
	"github.com/julianstephens/nila/internal/utils"
)

// Options configures a State.
type Options struct {
	Backend  persist.Backend
	Phrases  []string
	Settings models.Settings
	// Now defaults to time.Now.
	Now func() time.Time
	// Renderer draws share cards; nil shares text only.
	Renderer share.Renderer
	// Exporter delivers share payloads; nil makes sharing unavailable.
	Exporter *share.Exporter
	// Rand drives Shuffle; nil uses the global source.
	Rand *rand.Rand
}

// State is the single owner of everything the views read and mutate.
type State struct {
	deck      *models.Deck
	favorites *favorites.Model
	streak    *streak.Model
	profiles  *profile.Store
	profile   models.Profile
	toast     Toast

	settings models.Settings
	loc      *time.Location
	now      func() time.Time
	renderer share.Renderer
	exporter *share.Exporter
	rng      *rand.Rand
}

// New builds the deck and loads every persisted slot.
func New(opts Options) (*State, error) {
	phrases := opts.Phrases
	if phrases == nil {
		phrases = constants.DefaultPhrases
	}
	deck, err := models.NewDeck(phrases)
	if err != nil {
		return nil, err
	}
	if opts.Backend == nil {
		return nil, fmt.Errorf("app state requires a storage backend")
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	settings := opts.Settings
	models.ApplyDefaultSettings(&settings)
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		logger.Warn("Unknown timezone, using local time", "timezone", settings.Timezone, "error", err)
		loc = time.Local
	}

	s := &State{
		deck:      deck,
		favorites: favorites.New(opts.Backend),
		streak:    streak.New(opts.Backend),
		settings:  settings,
		loc:       loc,
		now:       now,
		renderer:  opts.Renderer,
		exporter:  opts.Exporter,
		rng:       opts.Rand,
	}
	s.profiles = profile.NewStore(opts.Backend, s.Today)

	s.favorites.Load(deck.Len())
	s.streak.Load()
	s.profile = s.profiles.Load()

	logger.Debug("Loaded app state",
		"phrases", deck.Len(),
		"favorites", s.favorites.Len(),
		"streak_days", len(s.streak.Keys()),
	)
	return s, nil
}

// Today returns the current time in the configured timezone.
func (s *State) Today() time.Time {
	return s.now().In(s.loc)
}

// Settings returns the settings the state was built with.
func (s *State) Settings() models.Settings { return s.settings }

// Deck

func (s *State) Deck() *models.Deck { return s.deck }

func (s *State) Previous() { s.deck.Previous() }

func (s *State) Next() { s.deck.Next() }

func (s *State) Shuffle() { s.deck.Shuffle(s.rng) }

func (s *State) JumpTo(index int) { s.deck.JumpTo(index) }

// Favorites

// IsFavorite reports whether the phrase at index is favorited.
func (s *State) IsFavorite(index int) bool { return s.favorites.IsFavorite(index) }

// CurrentIsFavorite reports whether the visible phrase is favorited.
func (s *State) CurrentIsFavorite() bool { return s.favorites.IsFavorite(s.deck.Index()) }

// ToggleFavorite flips the visible phrase and shows the resulting toast.
func (s *State) ToggleFavorite() string {
	return s.ToggleFavoriteAt(s.deck.Index())
}

// ToggleFavoriteAt flips the phrase at index, which must be in the deck.
func (s *State) ToggleFavoriteAt(index int) string {
	if _, ok := s.deck.Phrase(index); !ok {
		return ""
	}
	msg := s.favorites.Toggle(index)
	s.toast.Show(msg)
	return msg
}

// FavoriteIndices returns favorited positions in ascending order.
func (s *State) FavoriteIndices() []int { return s.favorites.Indices() }

// Streak

// WeekWindow returns today's Monday-first week.
func (s *State) WeekWindow() []time.Time { return s.streak.WeekWindow(s.Today()) }

// IsMarked reports whether date is marked.
func (s *State) IsMarked(date time.Time) bool { return s.streak.IsMarked(date) }

// WeekStatus returns the marks for today's week.
func (s *State) WeekStatus() []bool { return s.streak.WeekStatus(s.Today()) }

// CurrentRun returns the length of the streak ending today or yesterday.
func (s *State) CurrentRun() int { return s.streak.CurrentRun(s.Today()) }

// StreakKeys returns every marked date key.
func (s *State) StreakKeys() []string { return s.streak.Keys() }

// MarkToday marks today and shows a toast the first time only.
func (s *State) MarkToday() (string, bool) {
	msg, changed := s.streak.MarkToday(s.Today())
	if changed {
		s.toast.Show(msg)
	}
	return msg, changed
}

// Profile

// Profile returns the current profile fields.
func (s *State) Profile() models.Profile { return s.profile }

// SetName updates and persists the name.
func (s *State) SetName(name string) {
	s.profile.Name = name
	s.persistProfile(s.profiles.SetName(name))
}

// SetEmail updates and persists the email, valid or not.
func (s *State) SetEmail(email string) {
	s.profile.Email = email
	s.persistProfile(s.profiles.SetEmail(email))
}

// SetDateOfBirth updates and persists the date of birth.
func (s *State) SetDateOfBirth(dob time.Time) {
	s.profile.DateOfBirth = dob
	s.persistProfile(s.profiles.SetDateOfBirth(dob))
}

func (s *State) persistProfile(err error) {
	if err != nil {
		logger.Warn("Failed to persist profile", "error", err)
	}
}

// Share

// Share builds the payload for the phrase at index, hands it to the
// exporter and shows the outcome as a toast.
func (s *State) Share(index int) share.Result {
	phrase, ok := s.deck.Phrase(index)
	if !ok || s.exporter == nil {
		s.toast.Show(constants.MsgShareUnavailable)
		return share.Result{}
	}
	payload := share.BuildPayload(phrase, s.settings.PixelDensity, s.renderer)
	res := s.exporter.Export(payload)
	s.toast.Show(res.Message())
	return res
}

// ShareCurrent shares the visible phrase.
func (s *State) ShareCurrent() share.Result { return s.Share(s.deck.Index()) }

// Toast

// Toast returns a copy of the toast state.
func (s *State) Toast() Toast { return s.toast }

// ShowToast displays msg and returns its token.
func (s *State) ShowToast(msg string) uint64 { return s.toast.Show(msg) }

// DismissToast hides the toast if token is still current.
func (s *State) DismissToast(token uint64) bool { return s.toast.Dismiss(token) }
