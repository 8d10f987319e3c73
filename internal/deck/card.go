package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the point value a card carries into a hand. Suits don't matter in
// blackjack and every picture card counts as ten, so the deck only tracks
// values 2..10 plus Ace.
type Value int

// Ace is stored as 11; whether it scores 11 or 1 is decided by the hand.
const Ace Value = 11

// Lowest and highest card values.
const (
	MinValue Value = 2
	MaxValue Value = Ace
)

// IsAce reports whether v is an Ace.
func (v Value) IsAce() bool {
	return v == Ace
}

// Valid reports whether v is a value a deck can hold.
func (v Value) Valid() bool {
	return v >= MinValue && v <= MaxValue
}

// String returns "A" for aces and the decimal value otherwise.
func (v Value) String() string {
	if v == Ace {
		return "A"
	}
	return strconv.Itoa(int(v))
}

// ParseValue parses a single card value. Picture cards and "T" map to 10.
func ParseValue(s string) (Value, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A", "ACE", "11":
		return Ace, nil
	case "T", "J", "Q", "K":
		return 10, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid card value %q", s)
	}
	v := Value(n)
	if !v.Valid() || v == Ace {
		return 0, fmt.Errorf("card value %d out of range", n)
	}
	return v, nil
}

// ParseValues parses a comma or space separated list such as "10,6,A".
func ParseValues(s string) ([]Value, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})

	values := make([]Value, 0, len(fields))
	for _, f := range fields {
		v, err := ParseValue(f)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// FormatValues renders values the way status lines show them, e.g. "[10 6 A]".
func FormatValues(values []Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
