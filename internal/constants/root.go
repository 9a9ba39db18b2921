package constants

// SessionState represents the current state of the TUI application
type SessionState int

// ShareKind identifies the variant carried by a share item
type ShareKind string

const (
	AppName           = "nila"
	DefaultConfigPath = "~/.config/nila/nila.db"
	ConfigEnvVar      = "NILA_CONFIG"
	Version           = "v0.1.0"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "nila-"
	BackupFileSuffix = ".db"

	// Lock constants
	LockfileName = "nila.lock"

	// Durable storage slots
	KeyFavoriteIndices   = "favoriteIndices"
	KeyStreakMarkedDates = "streakMarkedDates"
	KeyProfileName       = "profile_name"
	KeyProfileEmail      = "profile_email"
	KeyProfileDOB        = "profile_dob"

	// Share constants
	ShareCardWidth             = 540 // logical points, 9:16 portrait
	ShareCardHeight            = 960
	ShareFilePrefix            = "nila-card-"
	ShareFileSuffix            = ".png"
	ShareKindText    ShareKind = "text"
	ShareKindImage   ShareKind = "image"
	ShareCardHeading           = "I Am"
)

// Session States
const (
	StateDeck SessionState = iota
	StateFavorites
	StateStreak
	StateProfile
)
