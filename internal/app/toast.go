package app

// Toast is a transient status message. Every Show issues a new token; a
// dismissal only takes effect when it carries the current token, so a timer
// scheduled for an older toast never hides a newer one.
type Toast struct {
	Message string
	Visible bool
	Token   uint64
}

// Show replaces the current toast and returns its token.
func (t *Toast) Show(msg string) uint64 {
	t.Token++
	t.Message = msg
	t.Visible = true
	return t.Token
}

// Dismiss hides the toast if token is still current and reports whether it
// did.
func (t *Toast) Dismiss(token uint64) bool {
	if !t.Visible || token != t.Token {
		return false
	}
	t.Visible = false
	t.Message = ""
	return true
}
