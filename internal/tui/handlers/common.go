package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/models"
)

// ProfileFormModel holds the text bound to the profile form inputs.
type ProfileFormModel struct {
	Name  string
	Email string
	DOB   string
}

// NewProfileFormModel seeds the form from p.
func NewProfileFormModel(p models.Profile) *ProfileFormModel {
	return &ProfileFormModel{
		Name:  p.Name,
		Email: p.Email,
		DOB:   p.DateOfBirth.Format(constants.DateFormat),
	}
}

// NewProfileForm creates the profile form. Inputs write straight into fm so
// the caller can persist each edit as it is typed.
func NewProfileForm(fm *ProfileFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Your name").
				Value(&fm.Name),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&fm.Email),
			huh.NewInput().
				Title("Date of birth").
				Description("YYYY-MM-DD").
				Value(&fm.DOB).
				Validate(ValidateDOB),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(false)
}

// ValidateDOB accepts any date in canonical YYYY-MM-DD form.
func ValidateDOB(s string) error {
	if _, err := time.Parse(constants.DateFormat, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

// ParseDOB parses s as a calendar date in loc.
func ParseDOB(s string, loc *time.Location) (time.Time, bool) {
	if ValidateDOB(s) != nil {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(constants.DateFormat, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
