package constants

// Toast messages shown after a user intent
const (
	MsgFavoriteAdded    = "Added to favorites"
	MsgFavoriteRemoved  = "Removed from favorites"
	MsgStreakMarked     = "Streak marked for today"
	MsgShareCopied      = "Copied to clipboard"
	MsgShareSaved       = "Card saved to %s"
	MsgShareUnavailable = "Share unavailable"
	MsgInvalidEmail     = "Please enter a valid email."
)

// DefaultPhrases is the deck used when no phrase file is supplied.
var DefaultPhrases = []string{
	"I am full of infinite hope.",
	"I am grounded, calm, and present.",
	"I am worthy of love and peace.",
	"I am growing into my best self.",
	"I am resilient and capable.",
	"I am grateful for this moment.",
	"I am open to joy and abundance.",
	"I am confident in my path.",
	"I am kind to myself and others.",
	"I am learning and evolving every day.",
	"I am strong in mind, body, and spirit.",
	"I am exactly where I need to be.",
}

// MsgProfileSaved is shown when the profile form is submitted.
const MsgProfileSaved = "Profile saved"
