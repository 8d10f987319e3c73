package game

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// DealerStandOn is the score at which the dealer stops drawing.
const DealerStandOn = 17

// DealerMode selects how the dealer counts aces.
type DealerMode int

const (
	Soft17 DealerMode = iota // aces count 11
	Hard17                   // aces count 1
)

// String returns the mode name used in config files and flags.
func (m DealerMode) String() string {
	switch m {
	case Soft17:
		return "soft17"
	case Hard17:
		return "hard17"
	default:
		return fmt.Sprintf("DealerMode(%d)", int(m))
	}
}

// ParseDealerMode parses "soft17" or "hard17" (case-insensitive).
func ParseDealerMode(s string) (DealerMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "soft17", "soft":
		return Soft17, nil
	case "hard17", "hard":
		return Hard17, nil
	default:
		return 0, fmt.Errorf("invalid dealer mode %q (want soft17 or hard17)", s)
	}
}

// DealerState is the dealer's position in auto-play.
type DealerState int

const (
	DealerDrawing DealerState = iota
	DealerStanding
)

func (s DealerState) String() string {
	if s == DealerStanding {
		return "standing"
	}
	return "drawing"
}

// Drawer supplies cards. *deck.WeightedDeck is the production Drawer.
type Drawer interface {
	Draw() (deck.Value, error)
}

// Dealer is the house hand. It draws by a fixed rule and never asks anyone.
type Dealer struct {
	*Hand
	Mode  DealerMode
	State DealerState
}

// NewDealer creates an empty dealer hand counting aces according to mode.
func NewDealer(mode DealerMode) *Dealer {
	return &Dealer{
		Hand: NewHand(FixedAceMode{Mode: mode}),
		Mode: mode,
	}
}

// ShouldDraw reports whether the dealer's points are still below 17.
func (d *Dealer) ShouldDraw() bool {
	return d.State == DealerDrawing && d.Score() < DealerStandOn
}

// Play draws until the dealer reaches 17 or more and then stands. The dealer
// may end above 21.
func (d *Dealer) Play(drawer Drawer) error {
	for d.ShouldDraw() {
		v, err := drawer.Draw()
		if err != nil {
			return fmt.Errorf("dealer draw: %w", err)
		}
		d.AddCard(v)
	}
	d.State = DealerStanding
	return nil
}
