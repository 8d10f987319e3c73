package console

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

func plainPrinter() (*Printer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrinter(out, WithColorProfile(termenv.Ascii)), out
}

func TestPrinterFormat(t *testing.T) {
	p, _ := plainPrinter()

	tests := []struct {
		name  string
		event game.Event
		want  string
	}{
		{
			name:  "starting hand",
			event: game.StartingHandEvent{Player: "Alice", Cards: []deck.Value{10, 5}, Score: 15},
			want:  "Alice you start off with 15 [10 5].",
		},
		{
			name:  "blackjack",
			event: game.StartingHandEvent{Player: "Alice", Cards: []deck.Value{deck.Ace, 10}, Score: 21, Blackjack: true},
			want:  "Alice you start off with 21 [A 10]. Blackjack!",
		},
		{
			name:  "draw",
			event: game.DrawEvent{Player: "Bob", Card: 4, Score: 19},
			want:  "Bob drew 4 and now has 19 points.",
		},
		{
			name:  "stand",
			event: game.StandEvent{Player: "Bob", Score: 19},
			want:  "Bob stands on 19.",
		},
		{
			name:  "bust",
			event: game.BustEvent{Player: "Bob", Card: 10, Score: 26, Lost: 12.5},
			want:  "Unfortunately Bob drew 10, busted with 26 points and lost 12.5!",
		},
		{
			name:  "dealer stands",
			event: game.DealerStandEvent{Cards: []deck.Value{10, 9}, Score: 19},
			want:  "The dealer stands on 19 [10 9].",
		},
		{
			name:  "dealer busts",
			event: game.DealerBustEvent{Cards: []deck.Value{10, 6, 10}, Score: 26},
			want:  "The dealer busted with 26 [10 6 10]!",
		},
		{
			name:  "dealer bust payout",
			event: game.PayoutEvent{Player: "Alice", Outcome: game.OutcomeDealerBust, Score: 20, DealerScore: 26, Amount: 100, Money: 200},
			want:  "Congratulations Alice, the dealer busted and you won 100!",
		},
		{
			name:  "win payout",
			event: game.PayoutEvent{Player: "Alice", Outcome: game.OutcomeWin, Score: 20, DealerScore: 18, Amount: 10, Money: 25},
			want:  "Congratulations Alice, you beat the dealer 20 to 18 and won 15!",
		},
		{
			name:  "loss",
			event: game.PayoutEvent{Player: "Alice", Outcome: game.OutcomeLoss, Score: 18, DealerScore: 19, Amount: 10, Money: 10},
			want:  "Unfortunately the dealer has 19 points against your 18, Alice. You lost 10.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Format(tt.event))
		})
	}
}

func TestPrinterReportWritesLines(t *testing.T) {
	p, out := plainPrinter()

	var reporter game.Reporter = p
	reporter.Report(game.StandEvent{Player: "Alice", Score: 17})
	reporter.Report(game.DealerStandEvent{Cards: []deck.Value{10, 7}, Score: 17})

	assert.Equal(t, "Alice stands on 17.\nThe dealer stands on 17 [10 7].\n", out.String())
}

func TestPrinterSummary(t *testing.T) {
	p, out := plainPrinter()

	p.Summary(&game.RoundResult{
		DealerMode:  game.Soft17,
		DealerScore: 19,
		DealerCards: []deck.Value{10, 9},
		Players: []game.PlayerResult{
			{Name: "Alice", Stake: 10, Money: 25, Score: 20, Cards: []deck.Value{10, 10}, Outcome: game.OutcomeWin},
			{Name: "Bob", Stake: 5, Money: 0, Score: 24, Cards: []deck.Value{10, 4, 10}, Outcome: game.OutcomeBust},
		},
	})

	s := out.String()
	assert.Contains(t, s, "Alice")
	assert.Contains(t, s, "win")
	assert.Contains(t, s, "15")
	assert.Contains(t, s, "Bob")
	assert.Contains(t, s, "bust")
	assert.Contains(t, s, "-5")
	assert.Contains(t, s, "soft17")
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "100", FormatMoney(100))
	assert.Equal(t, "1.53", FormatMoney(1.53))
	assert.Equal(t, "0", FormatMoney(0))
}
