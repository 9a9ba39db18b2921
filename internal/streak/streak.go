// Package streak records the calendar days the user checked in.
package streak

import (
	"time"

	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/logger"
	"github.com/julianstephens/nila/internal/persist"
	"github.com/julianstephens/nila/internal/utils"
)

// Model is the set of marked date keys (YYYY-MM-DD, local calendar).
type Model struct {
	slot *persist.Slot[string]
	set  persist.Set[string]
}

// New returns an empty model bound to backend. Call Load before use.
func New(backend persist.Backend) *Model {
	return &Model{
		slot: persist.NewSlot[string](backend, constants.KeyStreakMarkedDates),
		set:  persist.Set[string]{},
	}
}

// Load reads persisted date keys. Keys that are not canonical dates are
// dropped.
func (m *Model) Load() {
	loaded := m.slot.Load()
	m.set = loaded.Filter(utils.ValidDateKey)
	if dropped := loaded.Len() - m.set.Len(); dropped > 0 {
		logger.Debug("Dropped malformed streak keys", "count", dropped)
	}
}

// WeekWindow returns the Monday-first week containing today.
func (m *Model) WeekWindow(today time.Time) []time.Time {
	return utils.WeekWindow(today)
}

// IsMarked reports whether date's calendar day is marked.
func (m *Model) IsMarked(date time.Time) bool {
	return m.set.Contains(utils.DateKey(date))
}

// MarkToday marks today's calendar day. Marking is idempotent: the set is
// written and a message returned only the first time.
func (m *Model) MarkToday(today time.Time) (string, bool) {
	if !m.set.Add(utils.DateKey(today)) {
		return "", false
	}
	m.slot.Save(m.set)
	return constants.MsgStreakMarked, true
}

// Keys returns every marked date key in chronological order.
func (m *Model) Keys() []string {
	return m.set.Sorted()
}

// WeekStatus returns, for each day of today's week, whether it is marked.
func (m *Model) WeekStatus(today time.Time) []bool {
	window := m.WeekWindow(today)
	status := make([]bool, len(window))
	for i, day := range window {
		status[i] = m.IsMarked(day)
	}
	return status
}

// CurrentRun counts consecutive marked days ending today, or ending
// yesterday when today has not been marked yet.
func (m *Model) CurrentRun(today time.Time) int {
	day := utils.StartOfDay(today)
	if !m.IsMarked(day) {
		day = day.AddDate(0, 0, -1)
	}
	run := 0
	for m.IsMarked(day) {
		run++
		day = day.AddDate(0, 0, -1)
	}
	return run
}
