package constants

const (
	// General Settings
	SettingTimezone     = "timezone"
	SettingShareDir     = "share_dir"
	SettingPixelDensity = "pixel_density"

	// Default Settings Values
	DefaultTimezone     = "Local" // Use system local timezone by default
	DefaultShareDirName = "shares"
	DefaultPixelDensity = 2.0
	MaxPixelDensity     = 4.0
)
