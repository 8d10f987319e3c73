package game

import (
	"errors"
	"testing"

	"github.com/lox/blackjack/internal/deck"
)

func TestFixedAceMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode DealerMode
		want int
	}{
		{Soft17, 17},
		{Hard17, 7},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			d := NewDealer(tt.mode)
			d.AddCard(6)
			d.AddCard(deck.Ace)
			if d.Score() != tt.want {
				t.Errorf("6 then ace under %s = %d, want %d", tt.mode, d.Score(), tt.want)
			}
			if d.HasSoftAce() {
				t.Error("dealer never holds a soft ace")
			}
		})
	}
}

func TestDealerSoft17AceCanBust(t *testing.T) {
	t.Parallel()

	// The player rule would demote this ace; the dealer rule does not.
	d := NewDealer(Soft17)
	d.AddCard(10)
	d.AddCard(5)
	d.AddCard(deck.Ace)
	if d.Score() != 26 {
		t.Errorf("dealer 10,5,A under soft17 = %d, want 26", d.Score())
	}
}

func TestDealerPlayStopsAtSeventeen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mode      DealerMode
		start     []deck.Value
		script    string
		score     int
		leftover  int
		cardCount int
	}{
		{"exactly 17", Soft17, []deck.Value{10}, "7,5", 17, 1, 2},
		{"16 draws again", Soft17, []deck.Value{10}, "6,2,9", 18, 1, 3},
		{"busts past 21", Soft17, []deck.Value{10}, "6,10,2", 26, 1, 3},
		{"soft17 ace stands", Soft17, []deck.Value{6}, "A,9", 17, 1, 2},
		{"hard17 ace keeps drawing", Hard17, []deck.Value{6}, "A,10,9", 17, 1, 3},
		{"already at 17 draws nothing", Soft17, []deck.Value{10, 7}, "4", 17, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDealer(tt.mode)
			for _, c := range tt.start {
				d.AddCard(c)
			}

			drawer := MustScript(tt.script)
			if err := d.Play(drawer); err != nil {
				t.Fatalf("Play() error = %v", err)
			}
			if d.Score() != tt.score {
				t.Errorf("score = %d, want %d", d.Score(), tt.score)
			}
			if drawer.Remaining() != tt.leftover {
				t.Errorf("dealer should stop at first score >= 17, %d cards left, want %d", drawer.Remaining(), tt.leftover)
			}
			if len(d.Cards()) != tt.cardCount {
				t.Errorf("dealer holds %d cards, want %d", len(d.Cards()), tt.cardCount)
			}
			if d.State != DealerStanding {
				t.Errorf("state = %s, want standing", d.State)
			}
			if d.ShouldDraw() {
				t.Error("standing dealer should not draw")
			}
		})
	}
}

func TestDealerPlayPropagatesExhaustion(t *testing.T) {
	t.Parallel()

	d := NewDealer(Soft17)
	err := d.Play(NewScriptedDrawer(2, 3))
	if !errors.Is(err, deck.ErrExhausted) {
		t.Errorf("expected ErrExhausted, got %v", err)
	}
}

func TestParseDealerMode(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]DealerMode{"soft17": Soft17, "HARD17": Hard17, " soft ": Soft17} {
		got, err := ParseDealerMode(input)
		if err != nil {
			t.Errorf("ParseDealerMode(%q) error = %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseDealerMode(%q) = %s, want %s", input, got, want)
		}
	}

	if _, err := ParseDealerMode("s17"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
