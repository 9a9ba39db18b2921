package app

import "testing"

func TestToastSupersession(t *testing.T) {
	var toast Toast

	first := toast.Show("Added to favorites")
	second := toast.Show("Streak marked for today")

	// The first toast's timer fires while the second is showing.
	if toast.Dismiss(first) {
		t.Error("stale token must not dismiss a newer toast")
	}
	if !toast.Visible || toast.Message != "Streak marked for today" {
		t.Errorf("newer toast was hidden: %+v", toast)
	}

	if !toast.Dismiss(second) {
		t.Error("current token should dismiss")
	}
	if toast.Visible || toast.Message != "" {
		t.Errorf("toast still visible: %+v", toast)
	}

	if toast.Dismiss(second) {
		t.Error("dismissing twice should report false")
	}
}

func TestToastTokensIncrease(t *testing.T) {
	var toast Toast
	a := toast.Show("a")
	b := toast.Show("a")
	if b <= a {
		t.Errorf("tokens should increase, got %d then %d", a, b)
	}
}
