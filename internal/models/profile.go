package models

import (
	"strings"
	"time"
)

// Profile holds the user-entered details. Fields are persisted independently.
type Profile struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	DateOfBirth time.Time `json:"date_of_birth"`
}

// IsValidEmail is an advisory check: after dropping empty pieces, the text
// must split on '@' into exactly two parts and the second must contain a '.'.
func IsValidEmail(text string) bool {
	parts := strings.FieldsFunc(text, func(r rune) bool { return r == '@' })
	if len(parts) != 2 {
		return false
	}
	return strings.Contains(parts[1], ".")
}

// EmailWarning reports whether the email field should show the invalid-email
// hint. Empty input never warns.
func (p Profile) EmailWarning() bool {
	return p.Email != "" && !IsValidEmail(p.Email)
}
