package models

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/utils"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
// Unknown keys are ignored.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingShareDir:
			settings.ShareDir = value
		case constants.SettingPixelDensity:
			density, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", constants.SettingPixelDensity, err)
			}
			settings.PixelDensity = density
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingTimezone:     settings.Timezone,
		constants.SettingShareDir:     settings.ShareDir,
		constants.SettingPixelDensity: strconv.FormatFloat(settings.PixelDensity, 'f', -1, 64),
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.PixelDensity <= 0 {
		settings.PixelDensity = constants.DefaultPixelDensity
	}
}

// ValidateSetting checks a single key/value pair before it is stored.
func ValidateSetting(key, value string) error {
	switch key {
	case constants.SettingTimezone:
		if !utils.ValidateTimezone(value) {
			return fmt.Errorf("invalid timezone %q", value)
		}
		return nil
	case constants.SettingShareDir:
		return nil
	case constants.SettingPixelDensity:
		density, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s must be a number: %w", key, err)
		}
		if density <= 0 || density > constants.MaxPixelDensity {
			return fmt.Errorf("%s must be in (0, %g]", key, constants.MaxPixelDensity)
		}
		return nil
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
}
