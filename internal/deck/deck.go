package deck

import (
	"errors"
	"fmt"

	"github.com/lox/blackjack/internal/randutil"
)

// ErrExhausted is returned when a draw is attempted on a deck with no cards
// left. A single round can never reach it with the standard setup, so callers
// treat it as a fatal logic error rather than something to recover from.
var ErrExhausted = errors.New("deck exhausted")

// Entry is a card value and how many of it remain in the deck.
type Entry struct {
	Value     Value
	Remaining int
}

// WeightedDeck draws card values without replacement, weighted by how many
// copies of each value are left. Entries keep the order they were added in
// and the walk in Draw depends on that order.
type WeightedDeck struct {
	entries []Entry
	total   int
	rng     randutil.Source
}

// New creates an empty deck drawing from rng.
func New(rng randutil.Source) *WeightedDeck {
	if rng == nil {
		panic("rng is required for deck creation")
	}
	return &WeightedDeck{rng: rng}
}

// NewStandard creates a deck equivalent to a single 52-card deck: four of
// each value 2..9 and Ace, sixteen tens (10, J, Q, K).
func NewStandard(rng randutil.Source) *WeightedDeck {
	d := New(rng)
	for v := MinValue; v <= 9; v++ {
		d.AddEntry(v, 4)
	}
	return d.AddEntry(10, 4*4).AddEntry(Ace, 4)
}

// AddEntry appends value with the given weight. It is only meant to be used
// while building a deck.
func (d *WeightedDeck) AddEntry(value Value, weight int) *WeightedDeck {
	if weight < 0 {
		panic(fmt.Sprintf("negative weight %d for card %s", weight, value))
	}
	d.entries = append(d.entries, Entry{Value: value, Remaining: weight})
	d.total += weight
	return d
}

// Draw samples a value proportionally to the remaining counts and removes
// one copy of it from the deck.
func (d *WeightedDeck) Draw() (Value, error) {
	if d.total <= 0 {
		return 0, ErrExhausted
	}

	n := d.rng.IntN(d.total)
	for i := range d.entries {
		e := &d.entries[i]
		if n < e.Remaining {
			e.Remaining--
			d.total--
			return e.Value, nil
		}
		n -= e.Remaining
	}

	// Only reachable if total and the entry counts disagree.
	return 0, fmt.Errorf("deck weights corrupted: total %d does not match entries", d.total)
}

// TotalWeight returns the number of cards left.
func (d *WeightedDeck) TotalWeight() int {
	return d.total
}

// Remaining returns how many cards of value v are left.
func (d *WeightedDeck) Remaining(v Value) int {
	count := 0
	for _, e := range d.entries {
		if e.Value == v {
			count += e.Remaining
		}
	}
	return count
}

// Entries returns a copy of the deck's entries in insertion order.
func (d *WeightedDeck) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Len returns the number of distinct entries.
func (d *WeightedDeck) Len() int {
	return len(d.entries)
}
