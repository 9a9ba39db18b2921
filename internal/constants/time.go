package constants

import "time"

const (
	// DateFormat is the canonical date key format used for streak tracking (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// WeekStart is the first day of a streak week
	WeekStart = time.Monday

	// DaysPerWeek is the length of the streak week window
	DaysPerWeek = 7

	// ToastDuration is how long a toast stays visible before auto-dismissal
	ToastDuration = 1500 * time.Millisecond
)
