package game

import (
	"fmt"

	"github.com/lox/blackjack/internal/deck"
)

// ScriptedDrawer hands out a fixed sequence of cards and then reports the
// deck as exhausted. It lets tests and replays pin down every card of a round.
type ScriptedDrawer struct {
	cards []deck.Value
	next  int
}

// NewScriptedDrawer returns a drawer dealing cards in order.
func NewScriptedDrawer(cards ...deck.Value) *ScriptedDrawer {
	return &ScriptedDrawer{cards: cards}
}

// MustScript parses a card list such as "10,6,A" into a drawer, panicking on
// bad input.
func MustScript(s string) *ScriptedDrawer {
	cards, err := deck.ParseValues(s)
	if err != nil {
		panic(fmt.Sprintf("bad card script %q: %v", s, err))
	}
	return NewScriptedDrawer(cards...)
}

// Draw implements Drawer.
func (s *ScriptedDrawer) Draw() (deck.Value, error) {
	if s.next >= len(s.cards) {
		return 0, deck.ErrExhausted
	}
	v := s.cards[s.next]
	s.next++
	return v, nil
}

// Remaining returns the number of undealt scripted cards.
func (s *ScriptedDrawer) Remaining() int {
	return len(s.cards) - s.next
}
