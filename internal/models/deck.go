package models

import (
	"errors"
	"math/rand/v2"
)

// ErrEmptyDeck is returned when a deck is built from no phrases.
var ErrEmptyDeck = errors.New("deck needs at least one phrase")

// Deck is the fixed ordered list of phrases plus the paging cursor.
// The cursor always satisfies 0 <= current < Len(); moves clamp, never wrap.
type Deck struct {
	phrases []string
	current int
}

// NewDeck builds a deck positioned on the first phrase. The phrase slice is
// copied so later changes by the caller don't leak in.
func NewDeck(phrases []string) (*Deck, error) {
	if len(phrases) == 0 {
		return nil, ErrEmptyDeck
	}
	return &Deck{phrases: append([]string(nil), phrases...)}, nil
}

// Len returns the number of phrases.
func (d *Deck) Len() int { return len(d.phrases) }

// Index returns the cursor position.
func (d *Deck) Index() int { return d.current }

// Current returns the phrase under the cursor.
func (d *Deck) Current() string { return d.phrases[d.current] }

// Phrase returns the phrase at i and whether i is in range.
func (d *Deck) Phrase(i int) (string, bool) {
	if i < 0 || i >= len(d.phrases) {
		return "", false
	}
	return d.phrases[i], true
}

// Phrases returns a copy of all phrases in deck order.
func (d *Deck) Phrases() []string {
	return append([]string(nil), d.phrases...)
}

// CanPrevious reports whether Previous would move the cursor.
func (d *Deck) CanPrevious() bool { return d.current > 0 }

// CanNext reports whether Next would move the cursor.
func (d *Deck) CanNext() bool { return d.current < len(d.phrases)-1 }

// Previous moves the cursor back one phrase, stopping at the first.
func (d *Deck) Previous() {
	d.current = max(0, d.current-1)
}

// Next moves the cursor forward one phrase, stopping at the last.
func (d *Deck) Next() {
	d.current = min(len(d.phrases)-1, d.current+1)
}

// Shuffle moves the cursor to a uniformly random phrase. The current phrase
// may be chosen again. A nil rng uses the package-level source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	if rng == nil {
		d.current = rand.IntN(len(d.phrases))
		return
	}
	d.current = rng.IntN(len(d.phrases))
}

// JumpTo places the cursor at i, clamped into range.
func (d *Deck) JumpTo(i int) {
	d.current = min(max(0, i), len(d.phrases)-1)
}
