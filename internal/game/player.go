package game

import "github.com/lox/blackjack/internal/deck"

// PlayerEntry is what the input side collects for each player before a round.
type PlayerEntry struct {
	Name  string
	Stake float64
}

// Player is a seat in the round: a hand plus the money riding on it.
type Player struct {
	*Hand
	Seat    int
	Name    string
	Stake   float64 // bet as entered
	Money   float64 // changed only at payout or bust
	Stood   bool
	Outcome Outcome
}

// NewPlayer creates a player with an empty hand.
func NewPlayer(seat int, entry PlayerEntry) *Player {
	return &Player{
		Hand:  NewHand(DynamicSoftAce{}),
		Seat:  seat,
		Name:  entry.Name,
		Stake: entry.Stake,
		Money: entry.Stake,
	}
}

// CanDraw reports whether the player may still be offered a card.
func (p *Player) CanDraw() bool {
	return !p.Stood && !p.IsFinished()
}

// View returns the read-only state a Decider sees.
func (p *Player) View(dealerCards []deck.Value) PlayerView {
	return PlayerView{
		Seat:        p.Seat,
		Name:        p.Name,
		Money:       p.Money,
		Score:       p.Score(),
		SoftAce:     p.HasSoftAce(),
		Cards:       p.Cards(),
		DealerCards: dealerCards,
	}
}

// PlayerView is an immutable snapshot handed to deciders. Deciders never
// mutate game state; the engine applies their answer.
type PlayerView struct {
	Seat        int
	Name        string
	Money       float64
	Score       int
	SoftAce     bool
	Cards       []deck.Value
	DealerCards []deck.Value
}
