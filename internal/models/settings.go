package models

// Settings represents application-wide settings
type Settings struct {
	Timezone     string  `json:"timezone"`      // IANA timezone name, or "Local" for the system timezone
	ShareDir     string  `json:"share_dir"`     // directory share cards are written to; empty means <configdir>/shares
	PixelDensity float64 `json:"pixel_density"` // scale applied to the 540x960 share card
}

// IsComplete reports whether every setting with a default has a value.
func (s Settings) IsComplete() bool {
	return s.Timezone != "" && s.PixelDensity > 0
}
