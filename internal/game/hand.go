package game

import "github.com/lox/blackjack/internal/deck"

// MaxScore is the highest score that doesn't bust.
const MaxScore = 21

// CardAdder decides how a card's points enter a hand. Players and the dealer
// count aces differently and the difference changes when the dealer busts,
// so the two rules are kept as separate strategies.
type CardAdder interface {
	AddCard(h *Hand, v deck.Value)
}

// DynamicSoftAce is the player rule. The first ace is held as a soft ace and
// only valued when the score is read; every later ace counts 1 immediately.
type DynamicSoftAce struct{}

// AddCard implements CardAdder.
func (DynamicSoftAce) AddCard(h *Hand, v deck.Value) {
	if !v.IsAce() {
		h.base += int(v)
		return
	}
	if h.softAce {
		h.base++
		return
	}
	h.softAce = true
}

// FixedAceMode is the dealer rule. An ace is worth 11 under Soft17 and 1
// under Hard17, fixed at the moment it is drawn and never demoted.
type FixedAceMode struct {
	Mode DealerMode
}

// AddCard implements CardAdder.
func (f FixedAceMode) AddCard(h *Hand, v deck.Value) {
	if !v.IsAce() {
		h.base += int(v)
		return
	}
	if f.Mode == Soft17 {
		h.base += int(deck.Ace)
	} else {
		h.base++
	}
}

// Hand accumulates points for a player or the dealer.
type Hand struct {
	base    int  // non-ace points plus hard aces
	softAce bool // one ace held back to be valued as 11 or 1
	cards   []deck.Value
	adder   CardAdder
}

// NewHand returns an empty hand using adder to count cards. A nil adder
// means the player rule.
func NewHand(adder CardAdder) *Hand {
	if adder == nil {
		adder = DynamicSoftAce{}
	}
	return &Hand{adder: adder}
}

// AddCard adds a drawn card to the hand.
func (h *Hand) AddCard(v deck.Value) {
	if h.adder == nil {
		h.adder = DynamicSoftAce{}
	}
	h.cards = append(h.cards, v)
	h.adder.AddCard(h, v)
}

// Score returns the hand's effective score. A soft ace counts 11 unless that
// would bust the hand, in which case it counts 1.
func (h *Hand) Score() int {
	if !h.softAce {
		return h.base
	}
	if h.base+11 <= MaxScore {
		return h.base + 11
	}
	return h.base + 1
}

// IsFinished reports whether the hand has reached 21 or gone past it.
func (h *Hand) IsFinished() bool {
	return h.Score() >= MaxScore
}

// IsBust reports whether the score exceeds 21.
func (h *Hand) IsBust() bool {
	return h.Score() > MaxScore
}

// IsBlackjack reports a two-card 21.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Score() == MaxScore
}

// HasSoftAce reports whether an ace is being held as the soft ace.
func (h *Hand) HasSoftAce() bool {
	return h.softAce
}

// Base returns the accumulated points excluding the soft ace.
func (h *Hand) Base() int {
	return h.base
}

// Cards returns a copy of the cards added so far.
func (h *Hand) Cards() []deck.Value {
	out := make([]deck.Value, len(h.cards))
	copy(out, h.cards)
	return out
}
