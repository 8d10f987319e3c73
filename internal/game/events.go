package game

import (
	"context"

	"github.com/lox/blackjack/internal/deck"
)

// Outcome is how a player's hand ended.
type Outcome int

const (
	OutcomePending    Outcome = iota
	OutcomeBust               // went over 21, money forced to 0
	OutcomeDealerBust         // survived a dealer bust, paid x2.0
	OutcomeWin                // beat the dealer, paid x2.5
	OutcomeLoss               // dealer score equal or higher, no payout
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBust:
		return "bust"
	case OutcomeDealerBust:
		return "dealer_bust"
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "pending"
	}
}

// Payout multipliers applied to a surviving player's money.
const (
	DealerBustMultiplier = 2.0
	WinMultiplier        = 2.5
)

// Decider answers whether a player wants another card. Human input and bots
// both implement it; an error aborts the round.
type Decider interface {
	ShouldDraw(ctx context.Context, view PlayerView) (bool, error)
}

// DeciderFunc adapts a function to Decider.
type DeciderFunc func(ctx context.Context, view PlayerView) (bool, error)

// ShouldDraw implements Decider.
func (f DeciderFunc) ShouldDraw(ctx context.Context, view PlayerView) (bool, error) {
	return f(ctx, view)
}

// EventType identifies a round event.
type EventType string

const (
	EventStartingHand EventType = "starting_hand"
	EventDraw         EventType = "draw"
	EventStand        EventType = "stand"
	EventBust         EventType = "bust"
	EventDealerStand  EventType = "dealer_stand"
	EventDealerBust   EventType = "dealer_bust"
	EventPayout       EventType = "payout"
)

// Event is something the display side should tell the table about.
type Event interface {
	Type() EventType
}

// StartingHandEvent announces a player's score after the deal.
type StartingHandEvent struct {
	Player    string
	Cards     []deck.Value
	Score     int
	Blackjack bool
}

func (StartingHandEvent) Type() EventType { return EventStartingHand }

// DrawEvent reports a card drawn by a player who is still in.
type DrawEvent struct {
	Player string
	Card   deck.Value
	Score  int
}

func (DrawEvent) Type() EventType { return EventDraw }

// StandEvent reports a player declining further cards.
type StandEvent struct {
	Player string
	Score  int
}

func (StandEvent) Type() EventType { return EventStand }

// BustEvent reports a player going over 21. Lost is the money forfeited.
type BustEvent struct {
	Player string
	Card   deck.Value
	Score  int
	Lost   float64
}

func (BustEvent) Type() EventType { return EventBust }

// DealerStandEvent reports the dealer standing at Score.
type DealerStandEvent struct {
	Cards []deck.Value
	Score int
}

func (DealerStandEvent) Type() EventType { return EventDealerStand }

// DealerBustEvent reports the dealer finishing above 21.
type DealerBustEvent struct {
	Cards []deck.Value
	Score int
}

func (DealerBustEvent) Type() EventType { return EventDealerBust }

// PayoutEvent reports the resolution for a player who did not bust. Amount
// is the money before the multiplier, which is what the player won or lost.
type PayoutEvent struct {
	Player      string
	Outcome     Outcome
	Score       int
	DealerScore int
	Amount      float64
	Money       float64
}

func (PayoutEvent) Type() EventType { return EventPayout }

// Reporter receives round events in the order they happen.
type Reporter interface {
	Report(e Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(e Event)

// Report implements Reporter.
func (f ReporterFunc) Report(e Event) { f(e) }

// NopReporter discards events.
type NopReporter struct{}

// Report implements Reporter.
func (NopReporter) Report(Event) {}

// EventRecorder keeps every event it is given, in order.
type EventRecorder struct {
	Events []Event
}

// Report implements Reporter.
func (r *EventRecorder) Report(e Event) {
	r.Events = append(r.Events, e)
}

// OfType returns the recorded events of type t.
func (r *EventRecorder) OfType(t EventType) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}
