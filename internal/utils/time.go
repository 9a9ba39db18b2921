package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/nila/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// DateKey returns the canonical streak key (YYYY-MM-DD) for t in t's own
// location. The key is zero-padded and sorts chronologically as a string.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDateKey parses a canonical date key into midnight of that day in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	if t.Format(constants.DateFormat) != key {
		return time.Time{}, fmt.Errorf("invalid date key %q: not canonical", key)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ValidDateKey reports whether key is a well-formed canonical date key.
func ValidDateKey(key string) bool {
	_, err := ParseDateKey(key, time.UTC)
	return err == nil
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) - int(constants.WeekStart) + constants.DaysPerWeek) % constants.DaysPerWeek
	return day.AddDate(0, 0, -offset)
}

// WeekWindow returns the seven consecutive days of the Monday-first week
// containing today. Days are built with AddDate so DST shifts never skip or
// repeat a calendar day.
func WeekWindow(today time.Time) []time.Time {
	start := StartOfWeek(today)
	days := make([]time.Time, constants.DaysPerWeek)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// WeekdayLabels returns short weekday names ordered from WeekStart.
func WeekdayLabels() []string {
	labels := make([]string, constants.DaysPerWeek)
	for i := range labels {
		wd := time.Weekday((int(constants.WeekStart) + i) % constants.DaysPerWeek)
		labels[i] = wd.String()[:3]
	}
	return labels
}
